package usecase

import (
	"context"
	"errors"
	"testing"

	"prop-match/internal/domain/location"
)

type mockRegionRepo struct {
	states map[string]location.State
	err    error
	calls  int
}

func (m *mockRegionRepo) StateForRegion(_ context.Context, region string) (location.State, error) {
	m.calls++
	if m.err != nil {
		return location.StateUnspecified, m.err
	}
	return m.states[region], nil
}

func TestStateResolver_DelegatesToRepository(t *testing.T) {
	repo := &mockRegionRepo{states: map[string]location.State{"Richmond": location.Victoria}}
	r := NewCachedStateResolver(repo, nil)

	st, err := r.StateForRegion(context.Background(), "Richmond")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st != location.Victoria {
		t.Fatalf("expected Victoria, got %v", st)
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.calls)
	}
}

func TestStateResolver_UnknownRegionIsNotAnError(t *testing.T) {
	r := NewCachedStateResolver(&mockRegionRepo{states: map[string]location.State{}}, nil)

	st, err := r.StateForRegion(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st != location.StateUnspecified {
		t.Fatalf("expected unspecified, got %v", st)
	}
}

func TestStateResolver_RepositoryErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	r := NewCachedStateResolver(&mockRegionRepo{err: boom}, nil)

	_, err := r.StateForRegion(context.Background(), "Richmond")
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

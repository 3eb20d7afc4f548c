package matching

import (
	"context"
	"errors"
	"testing"

	"prop-match/internal/domain/job"
	"prop-match/internal/domain/location"
	"prop-match/internal/domain/professional"

	"github.com/google/uuid"
)

type mapResolver struct {
	states map[string]location.State
	err    error
}

func (m mapResolver) StateForRegion(_ context.Context, region string) (location.State, error) {
	if m.err != nil {
		return location.StateUnspecified, m.err
	}
	return m.states[region], nil
}

func jobWithDetail(d job.Detail) *job.Job {
	return &job.Job{ID: 1, Detail: &d}
}

func TestScore_RegionMatchWinsOverStateMatch(t *testing.T) {
	s := NewScorer(mapResolver{})
	j := jobWithDetail(job.Detail{
		Regions: []string{"Richmond"},
		States:  []location.State{location.Victoria},
	})
	p := professional.Professional{
		ID:      uuid.New(),
		Regions: []string{"Richmond"},
		States:  []location.State{location.Victoria},
	}

	got, err := s.Score(context.Background(), j, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 80 {
		t.Fatalf("expected 80 (region branch only), got %d", got)
	}
}

func TestScore_StateMatch(t *testing.T) {
	s := NewScorer(mapResolver{})
	j := jobWithDetail(job.Detail{States: []location.State{location.Queensland}})
	p := professional.Professional{States: []location.State{location.Queensland, location.Victoria}}

	got, err := s.Score(context.Background(), j, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestScore_JobRegionToProfessionalStateFallback(t *testing.T) {
	s := NewScorer(mapResolver{states: map[string]location.State{"Richmond": location.Victoria}})
	j := jobWithDetail(job.Detail{Regions: []string{"Richmond"}})
	p := professional.Professional{States: []location.State{location.Victoria}}

	got, err := s.Score(context.Background(), j, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestScore_ProfessionalRegionToJobStateFallback(t *testing.T) {
	s := NewScorer(mapResolver{states: map[string]location.State{"Fremantle": location.WesternAustralia}})
	j := jobWithDetail(job.Detail{States: []location.State{location.WesternAustralia}})
	p := professional.Professional{Regions: []string{"Fremantle"}}

	got, err := s.Score(context.Background(), j, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestScore_UnknownRegionGivesNoSignal(t *testing.T) {
	s := NewScorer(mapResolver{states: map[string]location.State{}})
	j := jobWithDetail(job.Detail{Regions: []string{"Atlantis"}})
	p := professional.Professional{States: []location.State{location.Victoria}}

	got, err := s.Score(context.Background(), j, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScore_NoGeographyContributesZero(t *testing.T) {
	s := NewScorer(mapResolver{})
	j := jobWithDetail(job.Detail{})
	p := professional.Professional{Regions: []string{"Richmond"}, States: []location.State{location.Victoria}}

	got, err := s.Score(context.Background(), j, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for absent job geography, got %d", got)
	}
}

func TestScore_VerificationAndABNAreAdditive(t *testing.T) {
	s := NewScorer(mapResolver{})
	j := jobWithDetail(job.Detail{Regions: []string{"Richmond"}})

	bare := professional.Professional{Regions: []string{"Richmond"}}
	full := professional.Professional{Regions: []string{"Richmond"}, Verified: true, ABN: "51824753556"}

	bareScore, err := s.Score(context.Background(), j, bare)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	fullScore, err := s.Score(context.Background(), j, full)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if fullScore-bareScore != 15 {
		t.Fatalf("expected verification+ABN delta 15, got %d", fullScore-bareScore)
	}
	if fullScore != 95 {
		t.Fatalf("expected 95, got %d", fullScore)
	}
}

func TestScore_BonusesApplyWithoutGeography(t *testing.T) {
	s := NewScorer(mapResolver{})
	j := jobWithDetail(job.Detail{})
	p := professional.Professional{Verified: true, ABN: "51824753556"}

	got, err := s.Score(context.Background(), j, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
}

func TestScore_ResolverErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	s := NewScorer(mapResolver{err: boom})
	j := jobWithDetail(job.Detail{Regions: []string{"Richmond"}})
	p := professional.Professional{States: []location.State{location.Victoria}}

	_, err := s.Score(context.Background(), j, p)
	if !errors.Is(err, boom) {
		t.Fatalf("expected resolver error, got %v", err)
	}
}

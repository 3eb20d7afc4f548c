package usecase

import (
	"context"
	"errors"
	"testing"

	"prop-match/internal/database"
	"prop-match/internal/domain/job"
	"prop-match/internal/domain/location"
	"prop-match/internal/domain/matching"
	"prop-match/internal/domain/professional"
	"prop-match/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	j   *job.Job
	err error

	updatedDetailID int64
	updatedIDs      []uuid.UUID
	updateErr       error
}

func (m *mockJobRepo) FindByID(_ context.Context, id int64) (*job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.j == nil || m.j.ID != id {
		return nil, repository.ErrJobNotFound
	}
	return m.j, nil
}

func (m *mockJobRepo) FindByIDForUpdate(_ context.Context, _ database.Tx, id int64) (*job.Job, error) {
	return m.FindByID(context.Background(), id)
}

func (m *mockJobRepo) UpdateSuggestedProfessionals(_ context.Context, _ database.Tx, detailID int64, ids []uuid.UUID) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedDetailID = detailID
	m.updatedIDs = ids
	return nil
}

type mockProfessionalRepo struct {
	items []professional.Professional
	err   error

	gotCategoryIDs []int
}

func (m *mockProfessionalRepo) FindByCategoryIDs(_ context.Context, categoryIDs []int) ([]professional.Professional, error) {
	m.gotCategoryIDs = categoryIDs
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

type stubResolver struct {
	states map[string]location.State
}

func (s stubResolver) StateForRegion(_ context.Context, region string) (location.State, error) {
	return s.states[region], nil
}

func newTestRanking(jobs *mockJobRepo, pros *mockProfessionalRepo, resolver matching.StateResolver) *Ranking {
	return NewRankingUsecase(jobs, pros, matching.NewScorer(resolver), nil)
}

func TestRankingShortlist_JobNotFound(t *testing.T) {
	uc := newTestRanking(&mockJobRepo{}, &mockProfessionalRepo{}, stubResolver{})
	_, err := uc.Shortlist(context.Background(), 42)
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestRankingShortlist_NoSelectedProfessionals(t *testing.T) {
	j := &job.Job{ID: 1, Detail: &job.Detail{}}
	uc := newTestRanking(&mockJobRepo{j: j}, &mockProfessionalRepo{}, stubResolver{})

	_, err := uc.Shortlist(context.Background(), 1)
	if !errors.Is(err, ErrNoSelectedProfessionals) {
		t.Fatalf("expected ErrNoSelectedProfessionals, got %v", err)
	}
}

func TestRankingShortlist_UnknownCategoryName(t *testing.T) {
	j := &job.Job{ID: 1, Detail: &job.Detail{SelectedProfessionals: []string{"Advocate", "Plumber"}}}
	uc := newTestRanking(&mockJobRepo{j: j}, &mockProfessionalRepo{}, stubResolver{})

	_, err := uc.Shortlist(context.Background(), 1)
	if !errors.Is(err, professional.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestRankingShortlist_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	j := &job.Job{ID: 1, Detail: &job.Detail{SelectedProfessionals: []string{"Advocate"}}}
	uc := newTestRanking(&mockJobRepo{j: j}, &mockProfessionalRepo{err: boom}, stubResolver{})

	_, err := uc.Shortlist(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestRankingShortlist_EndToEnd(t *testing.T) {
	advocateA := professional.Professional{
		ID:       uuid.New(),
		Category: professional.CategoryAdvocate,
		Verified: true,
		ABN:      "51824753556",
		Regions:  []string{"Richmond"},
	}
	advocateB := professional.Professional{
		ID:       uuid.New(),
		Category: professional.CategoryAdvocate,
		Regions:  []string{"Geelong"},
	}

	j := &job.Job{ID: 7, Detail: &job.Detail{
		SelectedProfessionals: []string{"Advocate", "Broker"},
		Regions:               []string{"Richmond"},
	}}

	pros := &mockProfessionalRepo{items: []professional.Professional{advocateA, advocateB}}
	uc := newTestRanking(&mockJobRepo{j: j}, pros, stubResolver{})

	got, err := uc.Shortlist(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(pros.gotCategoryIDs) != 2 {
		t.Fatalf("expected 2 category ids requested, got %v", pros.gotCategoryIDs)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 category groups, got %d", len(got))
	}

	advocates := got[0]
	if advocates.Category != "Advocate" {
		t.Fatalf("expected Advocate group first, got %s", advocates.Category)
	}
	if len(advocates.Candidates) != 2 {
		t.Fatalf("expected 2 advocates, got %d", len(advocates.Candidates))
	}
	if advocates.Candidates[0].Professional.ID != advocateA.ID || advocates.Candidates[0].Score != 95 {
		t.Fatalf("expected A first with score 95, got %v score %d",
			advocates.Candidates[0].Professional.ID, advocates.Candidates[0].Score)
	}
	if advocates.Candidates[1].Professional.ID != advocateB.ID || advocates.Candidates[1].Score != 0 {
		t.Fatalf("expected B second with score 0, got score %d", advocates.Candidates[1].Score)
	}

	brokers := got[1]
	if brokers.Category != "Broker" || len(brokers.Candidates) != 0 {
		t.Fatalf("expected empty Broker group, got %+v", brokers)
	}
}

func TestRankingShortlist_TruncatesPerCategory(t *testing.T) {
	items := make([]professional.Professional, 0, 8)
	for i := 0; i < 8; i++ {
		p := professional.Professional{
			ID:       uuid.New(),
			Category: professional.CategoryBroker,
			Regions:  []string{"Richmond"},
		}
		if i%2 == 0 {
			p.Verified = true
		}
		items = append(items, p)
	}

	j := &job.Job{ID: 3, Detail: &job.Detail{
		SelectedProfessionals: []string{"Broker"},
		Regions:               []string{"Richmond"},
	}}

	uc := newTestRanking(&mockJobRepo{j: j}, &mockProfessionalRepo{items: items}, stubResolver{})
	got, err := uc.Shortlist(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if len(got[0].Candidates) != matching.ShortlistSize {
		t.Fatalf("expected %d candidates, got %d", matching.ShortlistSize, len(got[0].Candidates))
	}
	for i := 1; i < len(got[0].Candidates); i++ {
		if got[0].Candidates[i].Score > got[0].Candidates[i-1].Score {
			t.Fatalf("scores increase at position %d", i)
		}
	}
}

package matching

import (
	"testing"

	"prop-match/internal/domain/professional"

	"github.com/google/uuid"
)

func candidate(cat professional.Category, score int) ScoredCandidate {
	return ScoredCandidate{
		Professional: professional.Professional{ID: uuid.New(), Category: cat},
		Score:        score,
	}
}

func TestRankByCategory_TruncatesToShortlistSize(t *testing.T) {
	cands := []ScoredCandidate{
		candidate(professional.CategoryAdvocate, 10),
		candidate(professional.CategoryAdvocate, 95),
		candidate(professional.CategoryAdvocate, 30),
		candidate(professional.CategoryAdvocate, 80),
		candidate(professional.CategoryAdvocate, 50),
		candidate(professional.CategoryAdvocate, 60),
		candidate(professional.CategoryAdvocate, 5),
	}

	ranked := RankByCategory(cands)
	group := ranked[professional.CategoryAdvocate]
	if len(group) != ShortlistSize {
		t.Fatalf("expected %d candidates, got %d", ShortlistSize, len(group))
	}

	wantScores := []int{95, 80, 60, 50, 30}
	for i, want := range wantScores {
		if group[i].Score != want {
			t.Fatalf("position %d: expected score %d, got %d", i, want, group[i].Score)
		}
	}
}

func TestRankByCategory_ScoresNonIncreasing(t *testing.T) {
	cands := []ScoredCandidate{
		candidate(professional.CategoryBroker, 15),
		candidate(professional.CategoryBroker, 95),
		candidate(professional.CategoryBroker, 95),
		candidate(professional.CategoryBroker, 40),
	}

	group := RankByCategory(cands)[professional.CategoryBroker]
	for i := 1; i < len(group); i++ {
		if group[i].Score > group[i-1].Score {
			t.Fatalf("scores increase at position %d: %d > %d", i, group[i].Score, group[i-1].Score)
		}
	}
}

func TestRankByCategory_TiesKeepInputOrder(t *testing.T) {
	first := candidate(professional.CategoryConveyancer, 50)
	second := candidate(professional.CategoryConveyancer, 50)
	third := candidate(professional.CategoryConveyancer, 50)

	group := RankByCategory([]ScoredCandidate{first, second, third})[professional.CategoryConveyancer]
	if len(group) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(group))
	}
	ids := []uuid.UUID{first.Professional.ID, second.Professional.ID, third.Professional.ID}
	for i, want := range ids {
		if group[i].Professional.ID != want {
			t.Fatalf("tie order broken at position %d", i)
		}
	}
}

func TestRankByCategory_GroupsByCategory(t *testing.T) {
	cands := []ScoredCandidate{
		candidate(professional.CategoryAdvocate, 10),
		candidate(professional.CategoryBroker, 20),
		candidate(professional.CategoryAdvocate, 30),
	}

	ranked := RankByCategory(cands)
	if len(ranked[professional.CategoryAdvocate]) != 2 {
		t.Fatalf("expected 2 advocates, got %d", len(ranked[professional.CategoryAdvocate]))
	}
	if len(ranked[professional.CategoryBroker]) != 1 {
		t.Fatalf("expected 1 broker, got %d", len(ranked[professional.CategoryBroker]))
	}
	if _, ok := ranked[professional.CategoryConveyancer]; ok {
		t.Fatalf("unexpected conveyancer group")
	}
}

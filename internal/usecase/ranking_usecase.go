package usecase

import (
	"context"
	"errors"
	"fmt"

	"prop-match/internal/domain/matching"
	"prop-match/internal/domain/professional"
	"prop-match/internal/infrastructure/cache"
	"prop-match/internal/repository"

	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound             = errors.New("job not found")
	ErrNoSelectedProfessionals = errors.New("job has no selected professional categories")
	ErrInternal                = errors.New("internal error")
)

// scoreWorkers bounds concurrent scoring. Scoring is pure per candidate; the
// limit only caps resolver lookups fanning out to storage.
const scoreWorkers = 8

type RankedCandidate struct {
	Professional professional.Professional `json:"professional"`
	Score        int                       `json:"score"`
}

type CategoryShortlist struct {
	Category   string            `json:"category"`
	Candidates []RankedCandidate `json:"candidates"`
}

type RankingUsecase interface {
	Shortlist(ctx context.Context, jobID int64) ([]CategoryShortlist, error)
}

type Ranking struct {
	jobs          repository.JobRepository
	professionals repository.ProfessionalRepository
	scorer        *matching.Scorer
	cache         *cache.Redis
}

func NewRankingUsecase(jobs repository.JobRepository, professionals repository.ProfessionalRepository, scorer *matching.Scorer, c *cache.Redis) *Ranking {
	return &Ranking{jobs: jobs, professionals: professionals, scorer: scorer, cache: c}
}

// Shortlist scores every candidate in the categories the customer selected,
// then returns the top candidates per category in score order. Category order
// in the result is the enum declaration order.
func (u *Ranking) Shortlist(ctx context.Context, jobID int64) ([]CategoryShortlist, error) {
	key := cache.ShortlistKey(jobID)

	var cached []CategoryShortlist
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if j.Detail == nil || len(j.Detail.SelectedProfessionals) == 0 {
		return nil, ErrNoSelectedProfessionals
	}

	wanted := make([]professional.Category, 0, len(j.Detail.SelectedProfessionals))
	ids := make([]int, 0, len(j.Detail.SelectedProfessionals))
	for _, name := range j.Detail.SelectedProfessionals {
		cat, err := professional.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("selected professionals: %w", err)
		}
		wanted = append(wanted, cat)
		ids = append(ids, int(cat))
	}

	pool, err := u.professionals.FindByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	scored := make([]matching.ScoredCandidate, len(pool))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i, p := range pool {
		g.Go(func() error {
			score, err := u.scorer.Score(gctx, j, p)
			if err != nil {
				return err
			}
			scored[i] = matching.ScoredCandidate{Professional: p, Score: score}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := matching.RankByCategory(scored)

	out := make([]CategoryShortlist, 0, len(wanted))
	for _, cat := range professional.Categories() {
		if !containsCategory(wanted, cat) {
			continue
		}
		group := ranked[cat]
		entry := CategoryShortlist{Category: cat.String(), Candidates: make([]RankedCandidate, 0, len(group))}
		for _, c := range group {
			entry.Candidates = append(entry.Candidates, RankedCandidate{Professional: c.Professional, Score: c.Score})
		}
		out = append(out, entry)
	}

	_ = u.cache.SetJSON(ctx, key, out, 0)
	return out, nil
}

func containsCategory(cats []professional.Category, cat professional.Category) bool {
	for _, c := range cats {
		if c == cat {
			return true
		}
	}
	return false
}

package matching

import (
	"context"

	"prop-match/internal/domain/job"
	"prop-match/internal/domain/location"
	"prop-match/internal/domain/professional"
)

// Geography weights. A pair earns points from exactly one geography rule (the
// first that matches), plus the unconditional bonuses.
const (
	pointsRegionMatch   = 80
	pointsStateMatch    = 30
	pointsStateFallback = 50

	bonusVerified   = 10
	bonusRegistered = 5
)

// StateResolver maps a region name to the state it belongs to. An unknown
// region resolves to location.StateUnspecified with a nil error; only storage
// failures surface as errors.
type StateResolver interface {
	StateForRegion(ctx context.Context, region string) (location.State, error)
}

type Scorer struct {
	resolver StateResolver
}

func NewScorer(resolver StateResolver) *Scorer {
	return &Scorer{resolver: resolver}
}

type geoRule struct {
	points int
	eval   func(ctx context.Context, d *job.Detail, p professional.Professional) (bool, error)
}

// Score computes the compatibility score for one job/professional pair.
// Geography rules are evaluated in order and the first match wins; a pair
// whose regions and states both intersect still only earns the region points.
func (s *Scorer) Score(ctx context.Context, j *job.Job, p professional.Professional) (int, error) {
	score := 0

	if j != nil && j.Detail != nil {
		rules := []geoRule{
			{points: pointsRegionMatch, eval: s.regionsIntersect},
			{points: pointsStateMatch, eval: s.statesIntersect},
			{points: pointsStateFallback, eval: s.jobRegionsReachStates},
			{points: pointsStateFallback, eval: s.professionalRegionsReachStates},
		}
		for _, r := range rules {
			ok, err := r.eval(ctx, j.Detail, p)
			if err != nil {
				return 0, err
			}
			if ok {
				score += r.points
				break
			}
		}
	}

	if p.Verified {
		score += bonusVerified
	}
	if p.ABN != "" {
		score += bonusRegistered
	}
	return score, nil
}

func (s *Scorer) regionsIntersect(_ context.Context, d *job.Detail, p professional.Professional) (bool, error) {
	if len(d.Regions) == 0 || len(p.Regions) == 0 {
		return false, nil
	}
	want := make(map[string]struct{}, len(d.Regions))
	for _, r := range d.Regions {
		want[r] = struct{}{}
	}
	for _, r := range p.Regions {
		if _, ok := want[r]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (s *Scorer) statesIntersect(_ context.Context, d *job.Detail, p professional.Professional) (bool, error) {
	return statesOverlap(d.States, p.States), nil
}

func (s *Scorer) jobRegionsReachStates(ctx context.Context, d *job.Detail, p professional.Professional) (bool, error) {
	if len(d.Regions) == 0 || len(p.States) == 0 {
		return false, nil
	}
	derived, err := s.resolveAll(ctx, d.Regions)
	if err != nil {
		return false, err
	}
	return statesOverlap(derived, p.States), nil
}

func (s *Scorer) professionalRegionsReachStates(ctx context.Context, d *job.Detail, p professional.Professional) (bool, error) {
	if len(p.Regions) == 0 || len(d.States) == 0 {
		return false, nil
	}
	derived, err := s.resolveAll(ctx, p.Regions)
	if err != nil {
		return false, err
	}
	return statesOverlap(d.States, derived), nil
}

func (s *Scorer) resolveAll(ctx context.Context, regions []string) ([]location.State, error) {
	out := make([]location.State, 0, len(regions))
	for _, r := range regions {
		st, err := s.resolver.StateForRegion(ctx, r)
		if err != nil {
			return nil, err
		}
		if st == location.StateUnspecified {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func statesOverlap(a, b []location.State) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	seen := make(map[location.State]struct{}, len(a))
	for _, st := range a {
		if st == location.StateUnspecified {
			continue
		}
		seen[st] = struct{}{}
	}
	for _, st := range b {
		if _, ok := seen[st]; ok {
			return true
		}
	}
	return false
}

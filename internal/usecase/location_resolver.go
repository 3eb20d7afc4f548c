package usecase

import (
	"context"

	"prop-match/internal/domain/location"
	"prop-match/internal/infrastructure/cache"
	"prop-match/internal/repository"
)

// CachedStateResolver answers region→state lookups from Redis when it can and
// falls back to the regions reference table. Reference data changes rarely, so
// cache staleness is a non-issue at the default TTL.
type CachedStateResolver struct {
	regions repository.RegionRepository
	cache   *cache.Redis
}

func NewCachedStateResolver(regions repository.RegionRepository, c *cache.Redis) *CachedStateResolver {
	return &CachedStateResolver{regions: regions, cache: c}
}

func (r *CachedStateResolver) StateForRegion(ctx context.Context, region string) (location.State, error) {
	key := cache.RegionStateKey(region)

	var cached string
	if hit, err := r.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		if st, err := location.ParseState(cached); err == nil {
			return st, nil
		}
	}

	st, err := r.regions.StateForRegion(ctx, region)
	if err != nil {
		return location.StateUnspecified, err
	}

	if st != location.StateUnspecified {
		_ = r.cache.SetJSON(ctx, key, st.String(), 0)
	}
	return st, nil
}

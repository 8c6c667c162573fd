// Package facility answers "what surrounds this point": the per-category
// presence vector and the per-category detail listings, backed by the geo
// service and the result cache.
package facility

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/cache"
	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/model"
	"github.com/ava-retail/outlet-insight/internal/resilience"
	"github.com/ava-retail/outlet-insight/pkg/overpass"
)

// Querier is the subset of the geo client the checker needs.
type Querier interface {
	Query(ctx context.Context, query string) ([]overpass.Element, error)
}

// Checker classifies the surroundings of a coordinate. Results are cached
// by exact coordinate and radius; a nil cache disables caching.
type Checker struct {
	client  Querier
	cache   *cache.Store
	mode    category.QueryMode
	breaker *resilience.CircuitBreaker
}

// Option configures a Checker.
type Option func(*Checker)

// WithBreaker places a circuit breaker in front of every geo query.
func WithBreaker(cb *resilience.CircuitBreaker) Option {
	return func(c *Checker) {
		c.breaker = cb
	}
}

// NewChecker creates a Checker. cache may be nil.
func NewChecker(client Querier, store *cache.Store, mode category.QueryMode, opts ...Option) *Checker {
	c := &Checker{client: client, cache: store, mode: mode}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) query(ctx context.Context, q string) ([]overpass.Element, error) {
	if c.breaker == nil {
		return c.client.Query(ctx, q)
	}
	return resilience.ExecuteVal(ctx, c.breaker, func(ctx context.Context) ([]overpass.Element, error) {
		return c.client.Query(ctx, q)
	})
}

// Presence returns the facility presence vector around a point. In
// comprehensive mode a single combined query covers all categories, with a
// per-category fallback when the combined query fails. Simplified mode
// always queries category by category.
func (c *Checker) Presence(ctx context.Context, lat, lon float64, radiusM int) (map[category.Key]bool, error) {
	key := cache.PresenceKey(lat, lon, radiusM)
	if c.cache != nil {
		var cached map[category.Key]bool
		if c.cache.Get(key, &cached) {
			return cached, nil
		}
	}

	var (
		result map[category.Key]bool
		err    error
	)
	if c.mode == category.Comprehensive {
		result, err = c.presenceCombined(ctx, lat, lon, radiusM)
		if err != nil {
			zap.L().Debug("facility: combined query failed, falling back to per-category",
				zap.Float64("lat", lat),
				zap.Float64("lon", lon),
				zap.Error(err),
			)
			result, err = c.presencePerCategory(ctx, lat, lon, radiusM)
		}
	} else {
		result, err = c.presencePerCategory(ctx, lat, lon, radiusM)
	}
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Put(key, result)
	}
	return result, nil
}

func (c *Checker) presenceCombined(ctx context.Context, lat, lon float64, radiusM int) (map[category.Key]bool, error) {
	elements, err := c.query(ctx, category.BuildCombinedQuery(c.mode, lat, lon, radiusM))
	if err != nil {
		return nil, eris.Wrap(err, "facility: combined presence query")
	}

	result := model.EmptyFacilities()
	remaining := len(result)
	for _, el := range elements {
		for k, present := range category.Classify(el.Tags, el.Name()) {
			if present && !result[k] {
				result[k] = true
				remaining--
			}
		}
		if remaining == 0 {
			break
		}
	}
	return result, nil
}

func (c *Checker) presencePerCategory(ctx context.Context, lat, lon float64, radiusM int) (map[category.Key]bool, error) {
	result := model.EmptyFacilities()
	for _, cat := range category.All() {
		elements, err := c.query(ctx, category.BuildQuery(cat, c.mode, lat, lon, radiusM))
		if err != nil {
			return nil, eris.Wrapf(err, "facility: presence query %s", cat.Key)
		}
		// Templates over-fetch beyond the category's own rules, so every
		// hit is re-checked against the classifier before the flag flips.
		for _, el := range elements {
			if cat.Matches(el.Tags, el.Name()) {
				result[cat.Key] = true
				break
			}
		}
	}
	return result, nil
}

// Details returns, per flagged category, the named places around a point
// with their derived subtype and representative coordinate. Only
// categories whose presence flag is set are queried, and each fetched
// element must pass the category's own classifier. Untagged features are
// listed as "Unnamed"; features without a usable position are skipped.
func (c *Checker) Details(ctx context.Context, lat, lon float64, radiusM int, flagged map[category.Key]bool) (map[category.Key][]model.DetailedPlace, error) {
	out := make(map[category.Key][]model.DetailedPlace, len(flagged))
	for _, cat := range category.All() {
		if !flagged[cat.Key] {
			continue
		}
		key := cache.DetailKey(lat, lon, string(cat.Key), radiusM)
		if c.cache != nil {
			var cached []model.DetailedPlace
			if c.cache.Get(key, &cached) {
				out[cat.Key] = cached
				continue
			}
		}

		elements, err := c.query(ctx, category.BuildQuery(cat, c.mode, lat, lon, radiusM))
		if err != nil {
			return nil, eris.Wrapf(err, "facility: detail query %s", cat.Key)
		}

		places := make([]model.DetailedPlace, 0, len(elements))
		for _, el := range elements {
			if !cat.Matches(el.Tags, el.Name()) {
				continue
			}
			elat, elon, ok := el.Position()
			if !ok {
				continue
			}
			name := el.Name()
			if name == "" {
				name = "Unnamed"
			}
			places = append(places, model.DetailedPlace{
				Name:    name,
				Subtype: cat.Subtype(el.Tags, name),
				Lat:     elat,
				Lon:     elon,
				Tags:    el.Tags,
			})
		}

		if c.cache != nil {
			c.cache.Put(key, places)
		}
		out[cat.Key] = places
	}
	return out, nil
}

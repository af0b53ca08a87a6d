// Package browser holds the client side of the catalog: it loads courses and
// offerings from the API, derives the requirement indexes and answers
// requirement searches.
package browser

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"coursecatalog/internal/model"
	"coursecatalog/internal/requirement"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Browser owns a State and is the only code that mutates it.
type Browser struct {
	api      CatalogAPI
	logger   zerolog.Logger
	validate *validator.Validate

	mu    sync.RWMutex
	state State
}

func New(api CatalogAPI, logger zerolog.Logger) *Browser {
	return &Browser{
		api:      api,
		logger:   logger.With().Str("component", "Browser").Logger(),
		validate: validator.New(),
		state:    newState(),
	}
}

// Load fetches courses and offerings concurrently. The two fetches are
// independent: a failure is recorded in the state of its own collection and
// never cancels or affects the other.
func (b *Browser) Load(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		b.LoadCourses(ctx)
		return nil
	})
	g.Go(func() error {
		b.LoadOfferings(ctx)
		return nil
	})
	_ = g.Wait()
}

// LoadCourses fetches the course list and rebuilds both requirement indexes.
func (b *Browser) LoadCourses(ctx context.Context) {
	courses, err := b.api.Courses(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to load courses")

		b.mu.Lock()
		defer b.mu.Unlock()
		b.state.CoursesLoaded = false
		b.state.CoursesError = err
		b.state.Courses = []model.Course{}
		b.state.BreadthReqs = []string{}
		b.state.BreadthReqMap = requirement.Index{}
		b.state.DistributionReqs = []string{}
		b.state.DistributionReqMap = requirement.Index{}
		return
	}

	breadthMap := requirement.BuildIndex(courses, requirement.BreadthCategories)
	distributionMap := requirement.BuildIndex(courses, requirement.DistributionCategories)
	breadthReqs := requirement.BreadthKeys(breadthMap)
	distributionReqs := requirement.DistributionKeys(distributionMap)

	for _, key := range breadthReqs {
		if _, ok := requirement.BreadthWeight(key); !ok {
			b.logger.Warn().Str("category", key).Msg("Breadth category has no weight, sorting it last")
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.CoursesLoaded = true
	b.state.CoursesError = nil
	b.state.Courses = courses
	b.state.BreadthReqMap = breadthMap
	b.state.BreadthReqs = breadthReqs
	b.state.DistributionReqMap = distributionMap
	b.state.DistributionReqs = distributionReqs

	b.logger.Info().
		Int("courses", len(courses)).
		Int("breadth_categories", len(breadthReqs)).
		Int("distribution_categories", len(distributionReqs)).
		Msg("Courses loaded")
}

// LoadOfferings fetches the timetable.
func (b *Browser) LoadOfferings(ctx context.Context) {
	offerings, err := b.api.Offerings(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to load offerings")
		b.state.OfferingsLoaded = false
		b.state.OfferingsError = err
		b.state.Offerings = []model.Offering{}
		return
	}
	b.state.OfferingsLoaded = true
	b.state.OfferingsError = nil
	b.state.Offerings = offerings
	b.logger.Info().Int("offerings", len(offerings)).Msg("Offerings loaded")
}

// SearchByBreadthReq selects a breadth category and returns its courses
// sorted by code. An unknown category yields no courses.
func (b *Browser) SearchByBreadthReq(key string) []model.Course {
	return b.search(requirement.KindBreadth, key)
}

// SearchByDistributionReq is SearchByBreadthReq for distribution categories.
func (b *Browser) SearchByDistributionReq(key string) []model.Course {
	return b.search(requirement.KindDistribution, key)
}

// Search dispatches to the search for kind.
func (b *Browser) Search(kind requirement.Kind, key string) ([]model.Course, error) {
	if err := b.validateKind(kind); err != nil {
		return nil, err
	}
	return b.search(kind, key), nil
}

func (b *Browser) search(kind requirement.Kind, key string) []model.Course {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.state.Index(kind)
	if _, ok := idx.Lookup(key); !ok {
		b.logger.Debug().Str("kind", string(kind)).Str("category", key).Msg("Category not found")
	}
	results := idx.Search(key)

	if kind == requirement.KindDistribution {
		b.state.DistributionReq = key
	} else {
		b.state.BreadthReq = key
	}
	b.state.SearchKind = kind
	b.state.SearchResults = results

	return slices.Clone(results)
}

// SelectTab switches the requirement tab on display.
func (b *Browser) SelectTab(kind requirement.Kind) error {
	if err := b.validateKind(kind); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.ShowTab = kind
	return nil
}

func (b *Browser) validateKind(kind requirement.Kind) error {
	if err := b.validate.Var(string(kind), "required,oneof=breadth distribution"); err != nil {
		return fmt.Errorf("invalid requirement kind %q: %w", kind, err)
	}
	return nil
}

// Snapshot returns a copy of the current state. Indexes are shared; they are
// replaced, never modified, after being built.
func (b *Browser) Snapshot() State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := b.state
	s.Courses = slices.Clone(b.state.Courses)
	s.Offerings = slices.Clone(b.state.Offerings)
	s.BreadthReqs = slices.Clone(b.state.BreadthReqs)
	s.DistributionReqs = slices.Clone(b.state.DistributionReqs)
	s.SearchResults = slices.Clone(b.state.SearchResults)
	return s
}

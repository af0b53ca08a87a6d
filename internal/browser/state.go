package browser

import (
	"coursecatalog/internal/model"
	"coursecatalog/internal/requirement"
)

// LoadStatus is the observable outcome of a collection fetch.
type LoadStatus int

const (
	NotLoaded LoadStatus = iota
	Loaded
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "not loaded"
	}
}

// State is everything the presentation layer renders: fetched collections,
// load outcomes, requirement indexes and the current search.
type State struct {
	Courses       []model.Course
	CoursesLoaded bool
	CoursesError  error

	Offerings       []model.Offering
	OfferingsLoaded bool
	OfferingsError  error

	BreadthReqs        []string
	BreadthReqMap      requirement.Index
	DistributionReqs   []string
	DistributionReqMap requirement.Index

	SearchResults []model.Course
	// SearchKind is the index that produced SearchResults, "" before any search.
	SearchKind requirement.Kind

	// Selected category keys
	BreadthReq      string
	DistributionReq string

	ShowTab requirement.Kind
}

func newState() State {
	return State{
		Courses:            []model.Course{},
		Offerings:          []model.Offering{},
		BreadthReqs:        []string{},
		BreadthReqMap:      requirement.Index{},
		DistributionReqs:   []string{},
		DistributionReqMap: requirement.Index{},
		SearchResults:      []model.Course{},
		ShowTab:            requirement.KindBreadth,
	}
}

func (s State) CoursesStatus() LoadStatus {
	return status(s.CoursesLoaded, s.CoursesError)
}

func (s State) OfferingsStatus() LoadStatus {
	return status(s.OfferingsLoaded, s.OfferingsError)
}

func status(loaded bool, err error) LoadStatus {
	switch {
	case loaded:
		return Loaded
	case err != nil:
		return Failed
	default:
		return NotLoaded
	}
}

// Keys returns the ordered category keys for kind.
func (s State) Keys(kind requirement.Kind) []string {
	if kind == requirement.KindDistribution {
		return s.DistributionReqs
	}
	return s.BreadthReqs
}

// Index returns the requirement index for kind.
func (s State) Index(kind requirement.Kind) requirement.Index {
	if kind == requirement.KindDistribution {
		return s.DistributionReqMap
	}
	return s.BreadthReqMap
}

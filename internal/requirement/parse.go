// Package requirement turns the free-text requirement fields of a course into
// category keys and indexes courses by those keys.
package requirement

import (
	"strings"

	"coursecatalog/internal/model"
)

const (
	distributionPrefix    = "This is a "
	distributionSuffix    = " course"
	distributionSeparator = " or "
	breadthSeparator      = " + "
)

// Kind names one of the two requirement systems.
type Kind string

const (
	KindBreadth      Kind = "breadth"
	KindDistribution Kind = "distribution"
)

// Categorizer extracts the category keys of a course.
type Categorizer func(model.Course) []string

// ParseDistribution extracts the alternatives of a sentence such as
// "This is a Humanities or Social Science course". Without the prefix the
// text is used as is; without the " course" suffix the whole remainder is
// kept. Repeated alternatives are returned repeatedly.
func ParseDistribution(s string) []string {
	reqs := []string{}
	if s == "" {
		return reqs
	}

	s = strings.TrimPrefix(s, distributionPrefix)
	if end := strings.Index(s, distributionSuffix); end >= 0 {
		s = s[:end]
	}
	if s == "" {
		return reqs
	}

	for _, r := range strings.Split(s, distributionSeparator) {
		if isPlaceholder(r) {
			continue
		}
		reqs = append(reqs, r)
	}
	return reqs
}

// ParseBreadth splits a "+"-joined breadth requirement such as
// "Humanities (2) + Fine Arts (1)" into trimmed category keys.
func ParseBreadth(s string) []string {
	reqs := []string{}
	if s == "" {
		return reqs
	}

	for _, r := range strings.Split(s, breadthSeparator) {
		r = strings.TrimSpace(r)
		if isPlaceholder(r) {
			continue
		}
		reqs = append(reqs, r)
	}
	return reqs
}

// DistributionCategories is the Categorizer for distribution requirements.
func DistributionCategories(c model.Course) []string {
	return ParseDistribution(c.Distribution())
}

// BreadthCategories is the Categorizer for breadth requirements.
func BreadthCategories(c model.Course) []string {
	return ParseBreadth(c.Breadth())
}

// isPlaceholder reports values the catalog uses for "no requirement".
func isPlaceholder(s string) bool {
	return s == "" || s == "None" || s == "TBA"
}

package requirement

import (
	"errors"
	"sort"

	"coursecatalog/internal/model"
)

// ErrCategoryNotFound is returned when a category key has no index entry.
var ErrCategoryNotFound = errors.New("category not found")

// Index maps a category key to the courses carrying it, in the order the
// courses were indexed. Buckets are never empty.
type Index map[string][]model.Course

// BuildIndex files every course under each category categorize reports for
// it. A course listing a category twice is filed twice.
func BuildIndex(courses []model.Course, categorize Categorizer) Index {
	idx := Index{}
	for _, course := range courses {
		for _, key := range categorize(course) {
			idx[key] = append(idx[key], course)
		}
	}
	return idx
}

// Keys returns the category keys in no particular order.
func (idx Index) Keys() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	return keys
}

// Lookup returns the bucket for key and whether it exists.
func (idx Index) Lookup(key string) ([]model.Course, bool) {
	courses, ok := idx[key]
	return courses, ok
}

// Search returns a copy of the bucket for key sorted by course code. An
// unknown key yields an empty result.
func (idx Index) Search(key string) []model.Course {
	bucket, ok := idx.Lookup(key)
	if !ok {
		return []model.Course{}
	}

	results := make([]model.Course, len(bucket))
	copy(results, bucket)
	SortByCode(results)
	return results
}

// SortByCode orders courses by code, keeping the relative order of equal codes.
func SortByCode(courses []model.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Code < courses[j].Code
	})
}

package requirement

import (
	"regexp"
	"sort"
	"strconv"
)

var breadthWeightPattern = regexp.MustCompile(`\((\d+)\)`)

// BreadthWeight extracts the parenthesized number of a breadth key, e.g. 3
// for "Natural Sciences (3)". ok is false when the key carries no weight.
func BreadthWeight(key string) (weight int, ok bool) {
	m := breadthWeightPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	weight, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return weight, true
}

// SortBreadthKeys orders breadth keys by ascending weight. Keys without a
// weight go last; equal weights fall back to the key itself.
func SortBreadthKeys(keys []string) {
	type weighted struct {
		weight int
		ok     bool
	}
	weights := make(map[string]weighted, len(keys))
	for _, k := range keys {
		w, ok := BreadthWeight(k)
		weights[k] = weighted{weight: w, ok: ok}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := weights[keys[i]], weights[keys[j]]
		if a.ok != b.ok {
			return a.ok
		}
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		return keys[i] < keys[j]
	})
}

// SortDistributionKeys orders distribution keys lexicographically.
func SortDistributionKeys(keys []string) {
	sort.Strings(keys)
}

// BreadthKeys returns the keys of a breadth index in weight order.
func BreadthKeys(idx Index) []string {
	keys := idx.Keys()
	SortBreadthKeys(keys)
	return keys
}

// DistributionKeys returns the keys of a distribution index in lexicographic order.
func DistributionKeys(idx Index) []string {
	keys := idx.Keys()
	SortDistributionKeys(keys)
	return keys
}

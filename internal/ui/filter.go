package ui

import "github.com/sahilm/fuzzy"

// FilterConfig bundles tuning parameters for palette filtering.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// defaultFilterConfig works well for short field labels.
var defaultFilterConfig = FilterConfig{
	MinCoverage: 0.6,
	MaxSpread:   20,
	MaxResults:  20,
}

// filterLabels returns indices of labels matching the query, best first.
// An empty query returns everything in order. Fuzzy matches are pruned by
// coverage and spread so a two-letter query does not light up every label;
// if pruning removes everything, the raw fuzzy ranking is used instead.
func filterLabels(q string, labels []string, cfg FilterConfig) []int {
	if q == "" {
		idx := make([]int, len(labels))
		for i := range labels {
			idx[i] = i
		}
		return idx
	}
	matches := fuzzy.Find(q, labels)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, mt.Index)
		if len(pruned) >= cfg.MaxResults {
			break
		}
	}
	if len(pruned) == 0 {
		for i := 0; i < len(matches) && i < cfg.MaxResults; i++ {
			pruned = append(pruned, matches[i].Index)
		}
	}
	return pruned
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the index distance between the first and last matched
// character.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}

package textproc

import "sort"

// DefaultTopN is the keyword count used when callers pass topN <= 0.
const DefaultTopN = 10

// Keywords returns the topN most frequent distinct normalized tokens in the
// text, ordered by descending frequency with ties broken by first occurrence.
// Empty input yields an empty slice.
func Keywords(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	tokens := Tokens(text)
	if len(tokens) == 0 {
		return []string{}
	}

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// Intersect returns the members of a that also appear in b, preserving the
// order of a.
func Intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, item := range a {
		if _, ok := set[item]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Subtract returns the members of a that do not appear in b, preserving the
// order of a.
func Subtract(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, item := range a {
		if _, ok := set[item]; !ok {
			out = append(out, item)
		}
	}
	return out
}

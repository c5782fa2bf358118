// Package match implements the shortcut filtering and resolution core.
// Both functions are pure and total: they never fail, never mutate their
// inputs, and degrade to empty results on malformed entries.
package match

import (
	"strings"

	"github.com/studiowebux/bullet/internal/types"
)

// Filter returns, in original relative order, every shortcut with at
// least one alias containing query as a literal contiguous substring.
// A blank query (empty or whitespace-only) is the identity filter.
// Matching is case-sensitive containment, not prefix or exact equality.
func Filter(corpus []types.Shortcut, query string) []types.Shortcut {
	if strings.TrimSpace(query) == "" {
		return corpus
	}

	var matched []types.Shortcut
	for _, s := range corpus {
		for _, seq := range s.Seq {
			if strings.Contains(seq, query) {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}

// Resolve decides whether filtered collapses to a single launch decision:
// a sole remaining candidate is taken as confirmed regardless of query,
// otherwise the first candidate whose alias equals query exactly wins.
// The second rule disambiguates corpora where one alias is a substring
// of another ("git" vs "github").
func Resolve(filtered []types.Shortcut, query string) (types.Shortcut, bool) {
	if len(filtered) == 1 {
		return filtered[0], true
	}
	for _, s := range filtered {
		if s.HasAlias(query) {
			return s, true
		}
	}
	return types.Shortcut{}, false
}

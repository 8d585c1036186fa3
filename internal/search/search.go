// Package search provides the fuzzy title index behind the omnibar jump.
// This is looser than the catalog engine's substring filter: it is meant
// for "get me to that show" jumps, not for narrowing the browsed page.
package search

import (
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/kpeters/castdeck/internal/domain"
)

// Match is one omnibar result with highlight metadata.
type Match struct {
	Show           domain.Show
	MatchedIndexes []int // rune positions in the title that matched
	Score          int   // higher is better (sahilm convention)
}

// Index is a prebuilt fuzzy index over show titles. It implements
// fuzzy.Source so matching avoids re-allocating the title list per query.
type Index struct {
	shows       []domain.Show
	lowerTitles []string
}

// String returns the lowercase title at i (implements fuzzy.Source).
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of indexed shows (implements fuzzy.Source).
func (idx *Index) Len() int { return len(idx.shows) }

// NewIndex builds an index over the given dataset.
func NewIndex(shows []domain.Show) *Index {
	idx := &Index{
		shows:       shows,
		lowerTitles: make([]string, len(shows)),
	}
	for i, s := range shows {
		idx.lowerTitles[i] = strings.ToLower(s.Title)
	}
	return idx
}

// Query returns shows whose titles fuzzy-match the query, best first. When
// the character-level matcher finds nothing (e.g. the query tokens are out
// of order), it falls back to normalized rank matching.
func (idx *Index) Query(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, idx)
	if len(matches) > 0 {
		results := make([]Match, len(matches))
		for i, m := range matches {
			results[i] = Match{
				Show:           idx.shows[m.Index],
				MatchedIndexes: m.MatchedIndexes,
				Score:          m.Score,
			}
		}
		return results
	}

	// Per-token fallback: every query token must rank-match the title.
	var results []Match
	tokens := strings.Fields(query)
	for i, title := range idx.lowerTitles {
		total := 0
		ok := true
		for _, tok := range tokens {
			rank := lfuzzy.RankMatchNormalizedFold(tok, title)
			if rank < 0 {
				ok = false
				break
			}
			total -= rank // lithammer ranks lower-is-better; invert
		}
		if ok {
			results = append(results, Match{Show: idx.shows[i], Score: total})
		}
	}
	sortByScore(results)
	return results
}

// sortByScore orders matches best (highest score) first, stable on ties.
func sortByScore(matches []Match) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Score > matches[j-1].Score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/pantrypal/backend/internal/domain"
)

// translationConfidence applies to every table-backed suggestion; the
// tables are curated, so suggestions rank just below an exact match.
const translationConfidence = 0.95

// MultilingualExpander expands a query across English, Filipino and
// Spanish equivalents using the static translation table. It holds only
// read-only data and is safe for concurrent use; every operation
// returns a well-formed result and none can fail.
type MultilingualExpander struct {
	translations       map[string][]string
	enableDebugLogging bool
}

// NewMultilingualExpander creates an expander over the static
// translation table.
func NewMultilingualExpander(enableDebugLogging bool) *MultilingualExpander {
	return &MultilingualExpander{
		translations:       translationTable,
		enableDebugLogging: enableDebugLogging,
	}
}

// normalizeQuery lowercases, trims, and collapses internal whitespace.
// multipleSpacesRegex is declared in search_service.go.
func normalizeQuery(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	return multipleSpacesRegex.ReplaceAllString(normalized, " ")
}

// GetEquivalentTerms returns every known equivalent of a word,
// including the word itself. Lookup succeeds whether the word is an
// English table key or any member of a translation array: a hit by one
// synonym recovers the key and the entire array, not just the queried
// term. The result is deduplicated; beyond the word itself appearing
// first, order carries no meaning.
func (e *MultilingualExpander) GetEquivalentTerms(word string) []string {
	normalized := normalizeQuery(word)

	terms := []string{normalized}
	seen := map[string]bool{normalized: true}

	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	if equivalents, ok := e.translations[normalized]; ok {
		for _, t := range equivalents {
			add(t)
		}
		return terms
	}

	// Reverse lookup: the word may be a translation of some English key
	for key, equivalents := range e.translations {
		for _, t := range equivalents {
			if t == normalized {
				add(key)
				for _, sibling := range equivalents {
					add(sibling)
				}
				break
			}
		}
	}

	return terms
}

// ExpandSearchQuery produces every query variant worth issuing against
// a search backend: the normalized query first, then distinct
// single-term equivalents of each word, then two-word combinations.
// Only the first two words combine; full combinatorial coverage across
// 3+ words would blow up the output, so longer queries get single-word
// expansions plus the two-word subset. This is a scope limit, not a bug.
func (e *MultilingualExpander) ExpandSearchQuery(query string) *domain.QueryExpansion {
	normalized := normalizeQuery(query)
	words := strings.Fields(normalized)

	expanded := []string{normalized}
	seen := map[string]bool{normalized: true}

	keywords := []string{}
	keywordSeen := map[string]bool{}

	perWord := make([][]string, 0, len(words))
	for _, word := range words {
		equivalents := e.GetEquivalentTerms(word)
		perWord = append(perWord, equivalents)

		for _, term := range equivalents {
			if !seen[term] {
				seen[term] = true
				expanded = append(expanded, term)
			}
			if !keywordSeen[term] {
				keywordSeen[term] = true
				keywords = append(keywords, term)
			}
		}
	}

	if len(words) >= 2 {
		for _, first := range perWord[0] {
			for _, second := range perWord[1] {
				combined := first + " " + second
				if !seen[combined] {
					seen[combined] = true
					expanded = append(expanded, combined)
				}
			}
		}
	}

	if e.enableDebugLogging {
		log.Printf("[EXPAND] %q -> %d variants", query, len(expanded))
	}

	return &domain.QueryExpansion{
		Original:        query,
		Normalized:      normalized,
		Expanded:        expanded,
		Keywords:        keywords,
		HasTranslations: len(expanded) > 1,
	}
}

// GetSuggestedTranslations emits one suggestion per cross-language
// equivalent of each query word, labeled with a best-effort language
// guess for display.
func (e *MultilingualExpander) GetSuggestedTranslations(query string) []domain.TranslationSuggestion {
	normalized := normalizeQuery(query)

	suggestions := []domain.TranslationSuggestion{}
	for _, word := range strings.Fields(normalized) {
		equivalents := e.GetEquivalentTerms(word)
		if len(equivalents) <= 1 {
			continue
		}

		for _, term := range equivalents {
			if term == word {
				continue
			}
			suggestions = append(suggestions, domain.TranslationSuggestion{
				Original:   word,
				Translated: term,
				Language:   e.detectLanguage(term),
				Confidence: translationConfidence,
			})
		}
	}

	return suggestions
}

// detectLanguage guesses the language of a term from surface patterns.
// Coarse on purpose: "ng"/"ay" are common Filipino digraphs but also
// appear in some Spanish and English words, so the label is a UI hint,
// not ground truth. A per-entry language tag would be the correct fix.
func (e *MultilingualExpander) detectLanguage(term string) string {
	if strings.Contains(term, "ng") || strings.Contains(term, "ay") {
		return "Filipino"
	}
	if _, ok := e.translations[term]; ok {
		return "English"
	}
	return "Spanish"
}

// EnhanceSearchQuery composes expansion and translation suggestions
// into the single structure a search caller consumes: SearchQueries is
// the list to fan out against the recipe API.
func (e *MultilingualExpander) EnhanceSearchQuery(query string) *domain.EnhancedQuery {
	expansion := e.ExpandSearchQuery(query)

	enhanced := &domain.EnhancedQuery{
		QueryExpansion: *expansion,
		SearchQueries:  expansion.Expanded,
	}

	if expansion.HasTranslations {
		enhanced.Suggestions = e.GetSuggestedTranslations(query)
		enhanced.DisplayMessage = fmt.Sprintf(
			"Also searching %d related terms across languages", len(expansion.Expanded)-1)
	}

	return enhanced
}

package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/pantrypal/backend/internal/domain"
)

// Confidence levels for the non-distance correction paths
const (
	exactMatchConfidence  = 1.0
	knownTypoConfidence   = 0.95
	defaultEditDistance   = 2
	defaultApplyThreshold = 0.7
)

// SpellConfig holds configuration for the spell corrector
type SpellConfig struct {
	MaxEditDistance    int
	AutoApplyThreshold float64
	EnableDebugLogging bool
}

// SpellCorrector corrects misspelled food terms against the curated
// dictionary. It holds only read-only tables and is safe for concurrent
// use. Every operation returns a well-formed result; none can fail.
type SpellCorrector struct {
	dictionary         []string
	dictionarySet      map[string]bool
	misspellings       map[string]string
	maxEditDistance    int
	autoApplyThreshold float64
	enableDebugLogging bool
}

// NewSpellCorrector creates a spell corrector over the static food
// dictionary and misspelling map.
func NewSpellCorrector(config SpellConfig) *SpellCorrector {
	maxDist := config.MaxEditDistance
	if maxDist <= 0 {
		maxDist = defaultEditDistance
	}

	threshold := config.AutoApplyThreshold
	if threshold <= 0 {
		threshold = defaultApplyThreshold
	}

	set := make(map[string]bool, len(foodDictionary))
	for _, term := range foodDictionary {
		set[term] = true
	}

	return &SpellCorrector{
		dictionary:         foodDictionary,
		dictionarySet:      set,
		misspellings:       commonMisspellings,
		maxEditDistance:    maxDist,
		autoApplyThreshold: threshold,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// FindNearestMatch corrects a single word. Resolution order:
//  1. Exact dictionary match (case-insensitive)
//  2. Known-misspelling map
//  3. Closest dictionary entry by Levenshtein distance, if within the
//     configured max edit distance; ties keep the first entry in
//     dictionary order
//
// A word with no match within the threshold comes back unchanged with
// confidence 0.
func (s *SpellCorrector) FindNearestMatch(word string) domain.WordCorrection {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return domain.WordCorrection{Corrected: normalized, Confidence: 0, Changed: false}
	}

	if s.dictionarySet[normalized] {
		return domain.WordCorrection{
			Corrected:  normalized,
			Confidence: exactMatchConfidence,
			Changed:    false,
		}
	}

	if corrected, ok := s.misspellings[normalized]; ok {
		return domain.WordCorrection{
			Corrected:  corrected,
			Confidence: knownTypoConfidence,
			Changed:    true,
		}
	}

	bestDistance := s.maxEditDistance + 1
	bestMatch := ""
	for _, entry := range s.dictionary {
		distance := levenshteinDistance(normalized, entry)
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = entry
		}
	}

	if bestMatch == "" {
		return domain.WordCorrection{Corrected: normalized, Confidence: 0, Changed: false}
	}

	wordLen := len([]rune(normalized))
	matchLen := len([]rune(bestMatch))
	longest := wordLen
	if matchLen > longest {
		longest = matchLen
	}

	confidence := 1 - float64(bestDistance)/float64(longest)
	confidence = clampConfidence(confidence)

	if s.enableDebugLogging {
		log.Printf("[SPELL] %q -> %q (distance %d, confidence %.3f)",
			normalized, bestMatch, bestDistance, confidence)
	}

	return domain.WordCorrection{
		Corrected:  bestMatch,
		Confidence: confidence,
		Changed:    bestMatch != normalized,
	}
}

// CorrectSpelling corrects every word of a query and aggregates the
// per-word diagnostics. An empty or whitespace-only query yields a
// trivial result with HasCorrections=false and confidence 0.
func (s *SpellCorrector) CorrectSpelling(query string) *domain.CorrectionResult {
	words := strings.Fields(strings.ToLower(query))

	result := &domain.CorrectionResult{
		Original:    query,
		Suggestions: []domain.CorrectionSuggestion{},
	}

	if len(words) == 0 {
		return result
	}

	corrected := make([]string, 0, len(words))
	totalConfidence := 0.0

	for _, word := range words {
		match := s.FindNearestMatch(word)
		corrected = append(corrected, match.Corrected)
		totalConfidence += match.Confidence

		if match.Changed {
			result.Suggestions = append(result.Suggestions, domain.CorrectionSuggestion{
				Original:   word,
				Corrected:  match.Corrected,
				Confidence: match.Confidence,
			})
		}
	}

	result.Corrected = strings.Join(corrected, " ")
	result.Confidence = totalConfidence / float64(len(words))
	result.HasCorrections = len(result.Suggestions) > 0

	return result
}

// AutoCorrect decides whether a correction should be applied without
// asking the user. Corrections below the threshold are never applied
// silently; the caller keeps the original query. Pass threshold <= 0 to
// use the configured default.
func (s *SpellCorrector) AutoCorrect(query string, threshold float64) *domain.AutoCorrectDecision {
	if threshold <= 0 {
		threshold = s.autoApplyThreshold
	}

	result := s.CorrectSpelling(query)

	if !result.HasCorrections {
		return &domain.AutoCorrectDecision{
			UseCorrection: false,
			Query:         query,
		}
	}

	if result.Confidence >= threshold {
		return &domain.AutoCorrectDecision{
			UseCorrection: true,
			Query:         result.Corrected,
			Suggestions:   result.Suggestions,
			Message:       fmt.Sprintf("Did you mean %q?", result.Corrected),
		}
	}

	return &domain.AutoCorrectDecision{
		UseCorrection: false,
		Query:         query,
		Suggestions:   result.Suggestions,
	}
}

// clampConfidence keeps a confidence score inside [0,1]. The distance
// formula cannot produce values outside the range for distances within
// the threshold, but clamp anyway.
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len([]rune(s2))
	}
	if len(s2) == 0 {
		return len([]rune(s1))
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

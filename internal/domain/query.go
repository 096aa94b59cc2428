package domain

// WordCorrection is the result of correcting a single word
type WordCorrection struct {
	Corrected  string  `json:"corrected"`
	Confidence float64 `json:"confidence"` // 0-1, heuristic not calibrated
	Changed    bool    `json:"changed"`
}

// CorrectionSuggestion describes one corrected word within a query
type CorrectionSuggestion struct {
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Confidence float64 `json:"confidence"`
}

// CorrectionResult is the result of spell-checking a full query
type CorrectionResult struct {
	Original       string                 `json:"original"`
	Corrected      string                 `json:"corrected"`
	Suggestions    []CorrectionSuggestion `json:"suggestions"`
	Confidence     float64                `json:"confidence"` // mean of per-word confidences
	HasCorrections bool                   `json:"hasCorrections"`
}

// AutoCorrectDecision tells the caller whether to apply a correction.
// Low-confidence corrections are never applied automatically: a wrong
// correction is worse than a missed one for a search box.
type AutoCorrectDecision struct {
	UseCorrection bool                   `json:"useCorrection"`
	Query         string                 `json:"query"`
	Suggestions   []CorrectionSuggestion `json:"suggestions,omitempty"`
	Message       string                 `json:"message,omitempty"`
}

// QueryExpansion is the result of expanding a query across languages
type QueryExpansion struct {
	Original        string   `json:"original"`
	Normalized      string   `json:"normalized"`
	Expanded        []string `json:"expanded"` // deduplicated; index 0 is always Normalized
	Keywords        []string `json:"keywords"` // union of all per-word equivalents
	HasTranslations bool     `json:"hasTranslations"`
}

// TranslationSuggestion is a single cross-language equivalent of a query word.
// Language is a heuristic display hint, not stored data.
type TranslationSuggestion struct {
	Original   string  `json:"original"`
	Translated string  `json:"translated"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// EnhancedQuery combines expansion and translation suggestions into the
// single structure callers feed into the recipe search fan-out.
type EnhancedQuery struct {
	QueryExpansion
	Suggestions    []TranslationSuggestion `json:"suggestions,omitempty"`
	SearchQueries  []string                `json:"searchQueries"`
	DisplayMessage string                  `json:"displayMessage,omitempty"`
}

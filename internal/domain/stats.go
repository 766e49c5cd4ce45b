package domain

import "math"

// DeckProgressSummary is a learner's rollup for one deck. It is derived on
// read and never stored.
type DeckProgressSummary struct {
	DeckID          int64   `json:"deck_id"`
	TotalCards      int     `json:"total_cards"`
	KnownCards      int     `json:"known_cards"`
	LearningCards   int     `json:"learning_cards"`
	NewCards        int     `json:"new_cards"`
	ProgressPercent float64 `json:"progress"`
}

// NewDeckProgressSummary builds a summary from raw counts. Cards without a
// progress record must already be included in newCards.
func NewDeckProgressSummary(deckID int64, total, known, learning, newCards int) *DeckProgressSummary {
	return &DeckProgressSummary{
		DeckID:          deckID,
		TotalCards:      total,
		KnownCards:      known,
		LearningCards:   learning,
		NewCards:        newCards,
		ProgressPercent: ProgressPercent(known, total),
	}
}

// UserStats is a learner's rollup across every card they have a record for.
type UserStats struct {
	TotalStudied  int `json:"total_studied"`
	TotalKnown    int `json:"total_known"`
	TotalLearning int `json:"total_learning"`
}

// DeckProgressRow is one line of the per-deck breakdown over the classes a
// learner is enrolled in.
type DeckProgressRow struct {
	DeckID          int64   `json:"deck_id"`
	DeckTitle       string  `json:"deck_title"`
	ClassName       string  `json:"class_name"`
	TotalCards      int     `json:"total_cards"`
	KnownCards      int     `json:"known_cards"`
	LearningCards   int     `json:"learning_cards"`
	ProgressPercent float64 `json:"progress"`
}

// ProgressPercent returns known/total as a percentage rounded to one decimal
// place, or 0 for an empty deck.
func ProgressPercent(known, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(known)/float64(total)*1000) / 10
}

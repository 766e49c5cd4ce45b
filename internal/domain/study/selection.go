package study

import (
	"sort"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
)

// Candidate is a card of a deck together with the learner's progress on it.
// Status is domain.StatusNew and LastReviewedAt is nil for cards that have no
// progress record yet.
type Candidate struct {
	CardID         int64
	Status         domain.ProgressStatus
	LastReviewedAt *time.Time
}

// SelectNext picks the card to show next. Known cards are skipped, new cards
// come before learning cards, and within a group the least recently reviewed
// card wins with never-reviewed cards first. Equal candidates are ordered by
// card ID so the result is deterministic.
//
// The second return value is false when every candidate is known.
func SelectNext(candidates []Candidate) (Candidate, bool) {
	pending := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Status == domain.StatusKnown {
			continue
		}
		pending = append(pending, c)
	}
	if len(pending) == 0 {
		return Candidate{}, false
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return less(pending[i], pending[j])
	})
	return pending[0], true
}

func less(a, b Candidate) bool {
	if ra, rb := statusRank(a.Status), statusRank(b.Status); ra != rb {
		return ra < rb
	}

	switch {
	case a.LastReviewedAt == nil && b.LastReviewedAt != nil:
		return true
	case a.LastReviewedAt != nil && b.LastReviewedAt == nil:
		return false
	case a.LastReviewedAt != nil && b.LastReviewedAt != nil &&
		!a.LastReviewedAt.Equal(*b.LastReviewedAt):
		return a.LastReviewedAt.Before(*b.LastReviewedAt)
	}

	return a.CardID < b.CardID
}

func statusRank(s domain.ProgressStatus) int {
	if s == domain.StatusNew {
		return 0
	}
	return 1
}

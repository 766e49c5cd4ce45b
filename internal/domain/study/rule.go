package study

import (
	"time"

	"github.com/slotocki/flashcards/internal/domain"
)

// applyAnswer returns a new record reflecting answer. The input is not
// modified.
//
// A correct answer extends the correct streak, clears the wrong streak and
// marks the card known once the streak reaches the threshold. A wrong answer
// clears the correct streak, extends the wrong streak and always leaves the
// card in learning; a card never returns to new.
func applyAnswer(
	rec *domain.ProgressRecord,
	answer domain.Answer,
	now time.Time,
	params *Params,
) *domain.ProgressRecord {
	next := rec.Clone()
	reviewedAt := now.UTC()
	next.LastReviewedAt = &reviewedAt

	if answer.Correct() {
		next.CorrectStreak++
		next.WrongStreak = 0
		if next.CorrectStreak >= params.KnownStreakThreshold {
			next.Status = domain.StatusKnown
		} else {
			next.Status = domain.StatusLearning
		}
		return next
	}

	next.CorrectStreak = 0
	next.WrongStreak++
	next.Status = domain.StatusLearning
	return next
}

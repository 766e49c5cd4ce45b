package domain

import (
	"errors"
	"time"
)

// ProgressStatus is the mastery state of a card for one learner.
type ProgressStatus string

// Possible progress statuses
const (
	StatusNew      ProgressStatus = "new"
	StatusLearning ProgressStatus = "learning"
	StatusKnown    ProgressStatus = "known"
)

// Valid reports whether s is a known status.
func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusKnown:
		return true
	default:
		return false
	}
}

// Answer is the learner's two-valued judgement of a card.
type Answer string

// Possible answers
const (
	AnswerKnow     Answer = "know"
	AnswerDontKnow Answer = "dont_know"
)

// ParseAnswer validates a raw answer value.
func ParseAnswer(s string) (Answer, error) {
	a := Answer(s)
	if a != AnswerKnow && a != AnswerDontKnow {
		return "", ErrInvalidAnswer
	}
	return a, nil
}

// Correct reports whether the answer counts as a correct recall.
func (a Answer) Correct() bool {
	return a == AnswerKnow
}

// Progress record validation errors
var (
	ErrEmptyProgressUserID = errors.New("progress user ID cannot be empty")
	ErrEmptyProgressCardID = errors.New("progress card ID cannot be empty")
	ErrNegativeStreak      = errors.New("streaks cannot be negative")
	ErrBothStreaksPositive = errors.New("correct and wrong streaks cannot both be positive")
)

// ProgressRecord tracks a learner's mastery of a single card. There is at
// most one record per (UserID, CardID); it is created lazily the first time
// the card is served or answered.
type ProgressRecord struct {
	UserID         int64          `json:"user_id"`
	CardID         int64          `json:"card_id"`
	Status         ProgressStatus `json:"status"`
	CorrectStreak  int            `json:"correct_streak"` // consecutive "know" answers since the last "dont_know"
	WrongStreak    int            `json:"wrong_streak"`   // consecutive "dont_know" answers since the last "know"
	LastReviewedAt *time.Time     `json:"last_reviewed_at"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewProgressRecord returns the initial record for a card the learner has not
// studied yet.
func NewProgressRecord(userID, cardID int64, now time.Time) (*ProgressRecord, error) {
	rec := &ProgressRecord{
		UserID:    userID,
		CardID:    cardID,
		Status:    StatusNew,
		CreatedAt: now.UTC(),
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Validate checks the record's structural invariants.
func (p *ProgressRecord) Validate() error {
	if p.UserID <= 0 {
		return ErrEmptyProgressUserID
	}
	if p.CardID <= 0 {
		return ErrEmptyProgressCardID
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.CorrectStreak < 0 || p.WrongStreak < 0 {
		return ErrNegativeStreak
	}
	if p.CorrectStreak > 0 && p.WrongStreak > 0 {
		return ErrBothStreaksPositive
	}
	return nil
}

// Clone returns a deep copy of the record.
func (p *ProgressRecord) Clone() *ProgressRecord {
	c := *p
	if p.LastReviewedAt != nil {
		t := *p.LastReviewedAt
		c.LastReviewedAt = &t
	}
	return &c
}

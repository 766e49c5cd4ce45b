package study

import (
	"errors"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
)

// Common errors
var (
	ErrNilRecord = errors.New("progress record cannot be nil")
)

// Service defines the interface for the mastery rule
type Service interface {
	// ApplyAnswer computes the record that results from answering a card.
	ApplyAnswer(
		rec *domain.ProgressRecord,
		answer domain.Answer,
		now time.Time,
	) (*domain.ProgressRecord, error)

	// KnownStreakThreshold reports the correct streak at which a card is known.
	KnownStreakThreshold() int
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new study service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new study service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// ApplyAnswer implements the Service interface
func (s *defaultService) ApplyAnswer(
	rec *domain.ProgressRecord,
	answer domain.Answer,
	now time.Time,
) (*domain.ProgressRecord, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}
	if _, err := domain.ParseAnswer(string(answer)); err != nil {
		return nil, err
	}

	return applyAnswer(rec, answer, now, s.params), nil
}

// KnownStreakThreshold implements the Service interface
func (s *defaultService) KnownStreakThreshold() int {
	return s.params.KnownStreakThreshold
}

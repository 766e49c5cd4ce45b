package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressRecord(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.FixedZone("X", 3600))

	rec, err := NewProgressRecord(7, 42, now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.UserID)
	assert.Equal(t, int64(42), rec.CardID)
	assert.Equal(t, StatusNew, rec.Status)
	assert.Zero(t, rec.CorrectStreak)
	assert.Zero(t, rec.WrongStreak)
	assert.Nil(t, rec.LastReviewedAt)
	assert.Equal(t, time.UTC, rec.CreatedAt.Location())

	_, err = NewProgressRecord(0, 42, now)
	assert.ErrorIs(t, err, ErrEmptyProgressUserID)

	_, err = NewProgressRecord(7, 0, now)
	assert.ErrorIs(t, err, ErrEmptyProgressCardID)
}

func TestProgressRecord_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*ProgressRecord)
		wantErr error
	}{
		{"valid", func(*ProgressRecord) {}, nil},
		{"bad status", func(p *ProgressRecord) { p.Status = "mastered" }, ErrInvalidStatus},
		{"negative streak", func(p *ProgressRecord) { p.WrongStreak = -1 }, ErrNegativeStreak},
		{"both streaks", func(p *ProgressRecord) { p.CorrectStreak, p.WrongStreak = 1, 1 }, ErrBothStreaksPositive},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &ProgressRecord{UserID: 1, CardID: 1, Status: StatusLearning}
			tt.mutate(rec)
			err := rec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProgressRecord_Clone(t *testing.T) {
	t.Parallel()
	at := time.Now()
	rec := &ProgressRecord{UserID: 1, CardID: 2, Status: StatusLearning, LastReviewedAt: &at}

	c := rec.Clone()
	c.CorrectStreak = 2
	*c.LastReviewedAt = at.Add(time.Hour)

	assert.Zero(t, rec.CorrectStreak)
	assert.True(t, rec.LastReviewedAt.Equal(at))
}

func TestParseAnswer(t *testing.T) {
	t.Parallel()

	a, err := ParseAnswer("know")
	require.NoError(t, err)
	assert.True(t, a.Correct())

	a, err = ParseAnswer("dont_know")
	require.NoError(t, err)
	assert.False(t, a.Correct())

	for _, raw := range []string{"", "KNOW", "yes", "dont-know"} {
		_, err := ParseAnswer(raw)
		assert.ErrorIs(t, err, ErrInvalidAnswer, raw)
	}
}

//go:build integration

package testdb

import (
	"context"
	"testing"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MustInsertUser creates a user whose password is "password123" and returns its ID.
func MustInsertUser(t *testing.T, db store.DBTX, email string, role domain.Role) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	var id int64
	err = db.QueryRowContext(context.Background(),
		`INSERT INTO users (email, hashed_password, first_name, last_name, role)
		 VALUES ($1, $2, 'Test', 'User', $3) RETURNING id`,
		email, string(hash), string(role),
	).Scan(&id)
	require.NoError(t, err, "Failed to insert user")
	return id
}

// MustInsertClass creates a class owned by teacherID and returns its ID.
func MustInsertClass(t *testing.T, db store.DBTX, name string, teacherID int64) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO classes (name, teacher_id) VALUES ($1, $2) RETURNING id`,
		name, teacherID,
	).Scan(&id)
	require.NoError(t, err, "Failed to insert class")
	return id
}

// MustEnroll adds userID to classID.
func MustEnroll(t *testing.T, db store.DBTX, classID, userID int64) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO class_members (class_id, user_id) VALUES ($1, $2)`, classID, userID)
	require.NoError(t, err, "Failed to enroll user")
}

// MustInsertDeck creates a deck in classID and returns its ID.
func MustInsertDeck(t *testing.T, db store.DBTX, classID int64, title string, public bool) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO decks (class_id, title, level, is_public) VALUES ($1, $2, 'A1', $3) RETURNING id`,
		classID, title, public,
	).Scan(&id)
	require.NoError(t, err, "Failed to insert deck")
	return id
}

// MustInsertCards creates n cards in deckID and returns their IDs in
// ascending order.
func MustInsertCards(t *testing.T, db store.DBTX, deckID int64, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		var id int64
		err := db.QueryRowContext(context.Background(),
			`INSERT INTO cards (deck_id, front, back) VALUES ($1, $2, $3) RETURNING id`,
			deckID, "front", "back",
		).Scan(&id)
		require.NoError(t, err, "Failed to insert card")
		ids = append(ids, id)
	}
	return ids
}

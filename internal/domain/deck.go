package domain

import "time"

// Deck is a named collection of cards owned by a teacher through one of their
// classes. Public decks can be studied by any authenticated user.
type Deck struct {
	ID          int64     `json:"id"`
	ClassID     int64     `json:"class_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Level       string    `json:"level"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
}

// Class groups students under a single teacher. Decks are attached to classes.
type Class struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TeacherID int64  `json:"teacher_id"`
}

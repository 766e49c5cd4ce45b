package access

import (
	"context"
	"errors"
	"testing"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDecks map[int64]*domain.Deck

func (f fakeDecks) GetByID(_ context.Context, id int64) (*domain.Deck, error) {
	if d, ok := f[id]; ok {
		return d, nil
	}
	return nil, store.ErrDeckNotFound
}

type fakeClasses struct {
	classes map[int64]*domain.Class
	members map[int64][]int64
	err     error
}

func (f *fakeClasses) GetByID(_ context.Context, id int64) (*domain.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.classes[id]; ok {
		return c, nil
	}
	return nil, store.ErrClassNotFound
}

func (f *fakeClasses) IsMember(_ context.Context, classID, userID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, id := range f.members[classID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCards map[int64]*domain.Card

func (f fakeCards) GetByID(_ context.Context, id int64) (*domain.Card, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, store.ErrCardNotFound
}

func (f fakeCards) ListByDeck(_ context.Context, _ int64) ([]*domain.Card, error) {
	return nil, nil
}

const (
	teacherID = 1
	otherID   = 2
	studentID = 3
	outsider  = 4
	adminID   = 5
)

func newTestPolicy() (*Policy, *fakeClasses) {
	decks := fakeDecks{
		10: {ID: 10, ClassID: 100, Title: "Animals"},
		11: {ID: 11, ClassID: 100, Title: "Shared", IsPublic: true},
		12: {ID: 12, ClassID: 999, Title: "Orphan"},
	}
	classes := &fakeClasses{
		classes: map[int64]*domain.Class{100: {ID: 100, Name: "1A", TeacherID: teacherID}},
		members: map[int64][]int64{100: {studentID}},
	}
	cards := fakeCards{
		1000: {ID: 1000, DeckID: 10, Front: "dog", Back: "pies"},
	}
	return NewPolicy(decks, classes, cards, nil), classes
}

func TestPolicy_AuthorizeDeck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal domain.Principal
		deckID    int64
		wantErr   error
	}{
		{"public deck for outsider", domain.Principal{UserID: outsider, Role: domain.RoleStudent}, 11, nil},
		{"admin on private deck", domain.Principal{UserID: adminID, Role: domain.RoleAdmin}, 10, nil},
		{"owning teacher", domain.Principal{UserID: teacherID, Role: domain.RoleTeacher}, 10, nil},
		{"other teacher", domain.Principal{UserID: otherID, Role: domain.RoleTeacher}, 10, ErrForbidden},
		{"enrolled student", domain.Principal{UserID: studentID, Role: domain.RoleStudent}, 10, nil},
		{"outside student", domain.Principal{UserID: outsider, Role: domain.RoleStudent}, 10, ErrForbidden},
		{"teacher on missing class", domain.Principal{UserID: teacherID, Role: domain.RoleTeacher}, 12, ErrForbidden},
		{"unknown role", domain.Principal{UserID: studentID, Role: domain.Role("guest")}, 10, ErrForbidden},
		{"missing deck", domain.Principal{UserID: adminID, Role: domain.RoleAdmin}, 404, store.ErrDeckNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, _ := newTestPolicy()

			deck, err := p.AuthorizeDeck(context.Background(), tt.principal, tt.deckID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, deck)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.deckID, deck.ID)
		})
	}
}

func TestPolicy_AuthorizeCard(t *testing.T) {
	t.Parallel()
	p, _ := newTestPolicy()

	deck, err := p.AuthorizeCard(context.Background(), domain.Principal{UserID: studentID, Role: domain.RoleStudent}, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(10), deck.ID)

	_, err = p.AuthorizeCard(context.Background(), domain.Principal{UserID: outsider, Role: domain.RoleStudent}, 1000)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = p.AuthorizeCard(context.Background(), domain.Principal{UserID: studentID, Role: domain.RoleStudent}, 1)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestPolicy_StoreErrorsPropagate(t *testing.T) {
	t.Parallel()
	p, classes := newTestPolicy()
	boom := errors.New("connection reset")
	classes.err = boom

	err := p.CanStudy(context.Background(), domain.Principal{UserID: studentID, Role: domain.RoleStudent},
		&domain.Deck{ID: 10, ClassID: 100})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrForbidden)

	err = p.CanStudy(context.Background(), domain.Principal{UserID: teacherID, Role: domain.RoleTeacher},
		&domain.Deck{ID: 10, ClassID: 100})
	assert.ErrorIs(t, err, boom)
}

func TestPolicy_NilDeck(t *testing.T) {
	t.Parallel()
	p, _ := newTestPolicy()
	err := p.CanStudy(context.Background(), domain.Principal{UserID: adminID, Role: domain.RoleAdmin}, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNewPolicy_PanicsOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewPolicy(nil, &fakeClasses{}, fakeCards{}, nil) })
	assert.Panics(t, func() { NewPolicy(fakeDecks{}, nil, fakeCards{}, nil) })
	assert.Panics(t, func() { NewPolicy(fakeDecks{}, &fakeClasses{}, nil, nil) })
}

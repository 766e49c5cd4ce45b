// Package access decides whether a principal may study a deck.
package access

//go:generate mockgen -source=access.go -destination=../../mocks/access/mock_access.go -package=mock_access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/store"
)

// ErrForbidden indicates the principal may not study the requested deck.
// API layer should map this to HTTP 403 Forbidden.
var ErrForbidden = errors.New("access to deck is forbidden")

// Authorizer answers study access questions for decks and cards.
type Authorizer interface {
	// CanStudy reports whether principal may study deck.
	// Returns nil when allowed, ErrForbidden when not.
	CanStudy(ctx context.Context, principal domain.Principal, deck *domain.Deck) error

	// AuthorizeDeck loads the deck and checks CanStudy.
	// Returns store.ErrDeckNotFound if the deck does not exist.
	AuthorizeDeck(ctx context.Context, principal domain.Principal, deckID int64) (*domain.Deck, error)

	// AuthorizeCard loads the card and its deck and checks CanStudy.
	// Returns store.ErrCardNotFound if the card does not exist.
	AuthorizeCard(ctx context.Context, principal domain.Principal, cardID int64) (*domain.Deck, error)
}

// Policy is the Authorizer used by the HTTP layer:
//   - public decks are open to every authenticated user
//   - admins may study any deck
//   - teachers may study decks of classes they own
//   - students may study decks of classes they are enrolled in
type Policy struct {
	decks   store.DeckStore
	classes store.ClassStore
	cards   store.CardStore
	logger  *slog.Logger
}

var _ Authorizer = (*Policy)(nil)

// NewPolicy creates a Policy reading from the given stores.
func NewPolicy(
	decks store.DeckStore,
	classes store.ClassStore,
	cards store.CardStore,
	logger *slog.Logger,
) *Policy {
	if decks == nil {
		panic("decks cannot be nil")
	}
	if classes == nil {
		panic("classes cannot be nil")
	}
	if cards == nil {
		panic("cards cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Policy{
		decks:   decks,
		classes: classes,
		cards:   cards,
		logger:  logger.With(slog.String("component", "access_policy")),
	}
}

// CanStudy implements Authorizer.
func (p *Policy) CanStudy(ctx context.Context, principal domain.Principal, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, p.logger)

	if deck == nil {
		return ErrForbidden
	}
	if deck.IsPublic || principal.Role == domain.RoleAdmin {
		return nil
	}

	switch principal.Role {
	case domain.RoleTeacher:
		class, err := p.classes.GetByID(ctx, deck.ClassID)
		if err != nil {
			if errors.Is(err, store.ErrClassNotFound) {
				return ErrForbidden
			}
			return fmt.Errorf("failed to load class: %w", err)
		}
		if class.TeacherID == principal.UserID {
			return nil
		}
	case domain.RoleStudent:
		member, err := p.classes.IsMember(ctx, deck.ClassID, principal.UserID)
		if err != nil {
			return fmt.Errorf("failed to check class membership: %w", err)
		}
		if member {
			return nil
		}
	}

	log.Debug("deck access denied",
		slog.Int64("user_id", principal.UserID),
		slog.String("role", string(principal.Role)),
		slog.Int64("deck_id", deck.ID))
	return ErrForbidden
}

// AuthorizeDeck implements Authorizer.
func (p *Policy) AuthorizeDeck(
	ctx context.Context,
	principal domain.Principal,
	deckID int64,
) (*domain.Deck, error) {
	deck, err := p.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if err := p.CanStudy(ctx, principal, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

// AuthorizeCard implements Authorizer.
func (p *Policy) AuthorizeCard(
	ctx context.Context,
	principal domain.Principal,
	cardID int64,
) (*domain.Deck, error) {
	card, err := p.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return p.AuthorizeDeck(ctx, principal, card.DeckID)
}

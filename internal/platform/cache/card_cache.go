// Package cache provides in-process caches in front of read-mostly stores.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"
	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/store"
)

// CardCache is a store.CardStore that keeps recently read cards in an LRU.
// Cards are immutable while being studied, so entries are never invalidated
// individually; Purge drops everything.
type CardCache struct {
	next   store.CardStore
	cache  *lru.Cache // nil when caching is disabled
	logger *slog.Logger
}

var _ store.CardStore = (*CardCache)(nil)

// NewCardCache wraps next with an LRU holding up to size cards.
// A size of zero disables caching and every call goes to next.
func NewCardCache(next store.CardStore, size int, logger *slog.Logger) (*CardCache, error) {
	if next == nil {
		panic("next cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if size < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", size)
	}

	c := &CardCache{
		next:   next,
		logger: logger.With(slog.String("component", "card_cache")),
	}
	if size > 0 {
		l, err := lru.New(size)
		if err != nil {
			return nil, fmt.Errorf("failed to create card cache: %w", err)
		}
		c.cache = l
	}
	return c, nil
}

// GetByID returns the cached card or loads it from the wrapped store.
// Misses such as ErrCardNotFound are not cached.
func (c *CardCache) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	if c.cache != nil {
		if v, ok := c.cache.Get(id); ok {
			card := *v.(*domain.Card)
			return &card, nil
		}
	}

	card, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		stored := *card
		if evicted := c.cache.Add(id, &stored); evicted {
			logger.FromContextOrDefault(ctx, c.logger).Debug("card cache eviction",
				slog.Int64("card_id", id))
		}
	}
	return card, nil
}

// ListByDeck always reads through to the wrapped store.
func (c *CardCache) ListByDeck(ctx context.Context, deckID int64) ([]*domain.Card, error) {
	return c.next.ListByDeck(ctx, deckID)
}

// Len reports the number of cached cards.
func (c *CardCache) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Purge drops every cached card.
func (c *CardCache) Purge() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

package progress

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/domain/study"
	"github.com/slotocki/flashcards/internal/store"
)

type progressKey struct {
	userID, cardID int64
}

// memStore is an in-memory card source and progress store with the same
// observable semantics as the PostgreSQL stores.
type memStore struct {
	mu      sync.Mutex
	cards   map[int64]*domain.Card
	records map[progressKey]*domain.ProgressRecord

	// failures injected per method name
	fail map[string]error
}

var (
	_ store.CardStore     = (*memStore)(nil)
	_ store.ProgressStore = (*memStore)(nil)
)

func newMemStore(cards ...*domain.Card) *memStore {
	m := &memStore{
		cards:   make(map[int64]*domain.Card),
		records: make(map[progressKey]*domain.ProgressRecord),
		fail:    make(map[string]error),
	}
	for _, c := range cards {
		m.cards[c.ID] = c
	}
	return m
}

func (m *memStore) GetByID(_ context.Context, id int64) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["GetByID"]; err != nil {
		return nil, err
	}
	c, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) ListByDeck(_ context.Context, deckID int64) ([]*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deckCards(deckID), nil
}

func (m *memStore) deckCards(deckID int64) []*domain.Card {
	var out []*domain.Card
	for _, c := range m.cards {
		if c.DeckID == deckID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) GetOrCreate(_ context.Context, userID, cardID int64, now time.Time) (*domain.ProgressRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["GetOrCreate"]; err != nil {
		return nil, err
	}
	if _, ok := m.cards[cardID]; !ok {
		return nil, store.ErrCardNotFound
	}
	key := progressKey{userID, cardID}
	if rec, ok := m.records[key]; ok {
		return rec.Clone(), nil
	}
	rec, err := domain.NewProgressRecord(userID, cardID, now)
	if err != nil {
		return nil, err
	}
	m.records[key] = rec
	return rec.Clone(), nil
}

func (m *memStore) GetForUpdate(_ context.Context, userID, cardID int64) (*domain.ProgressRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[progressKey{userID, cardID}]
	if !ok {
		return nil, store.ErrProgressNotFound
	}
	return rec.Clone(), nil
}

func (m *memStore) Update(_ context.Context, rec *domain.ProgressRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["Update"]; err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return store.ErrInvalidEntity
	}
	key := progressKey{rec.UserID, rec.CardID}
	if _, ok := m.records[key]; !ok {
		return store.ErrProgressNotFound
	}
	m.records[key] = rec.Clone()
	return nil
}

func (m *memStore) DeleteForDeck(_ context.Context, userID, deckID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["DeleteForDeck"]; err != nil {
		return 0, err
	}
	var n int64
	for _, c := range m.deckCards(deckID) {
		key := progressKey{userID, c.ID}
		if _, ok := m.records[key]; ok {
			delete(m.records, key)
			n++
		}
	}
	return n, nil
}

func (m *memStore) ListDeckCandidates(_ context.Context, userID, deckID int64) ([]study.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["ListDeckCandidates"]; err != nil {
		return nil, err
	}
	var out []study.Candidate
	for _, c := range m.deckCards(deckID) {
		cand := study.Candidate{CardID: c.ID, Status: domain.StatusNew}
		if rec, ok := m.records[progressKey{userID, c.ID}]; ok {
			cand.Status = rec.Status
			cand.LastReviewedAt = rec.Clone().LastReviewedAt
		}
		out = append(out, cand)
	}
	return out, nil
}

func (m *memStore) CountDeckProgress(_ context.Context, userID, deckID int64) (*domain.DeckProgressSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["CountDeckProgress"]; err != nil {
		return nil, err
	}
	var total, known, learning int
	for _, c := range m.deckCards(deckID) {
		total++
		if rec, ok := m.records[progressKey{userID, c.ID}]; ok {
			switch rec.Status {
			case domain.StatusKnown:
				known++
			case domain.StatusLearning:
				learning++
			}
		}
	}
	return domain.NewDeckProgressSummary(deckID, total, known, learning, total-known-learning), nil
}

func (m *memStore) UserStats(_ context.Context, userID int64) (*domain.UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["UserStats"]; err != nil {
		return nil, err
	}
	stats := &domain.UserStats{}
	for key, rec := range m.records {
		if key.userID != userID {
			continue
		}
		stats.TotalStudied++
		switch rec.Status {
		case domain.StatusKnown:
			stats.TotalKnown++
		case domain.StatusLearning:
			stats.TotalLearning++
		}
	}
	return stats, nil
}

func (m *memStore) ProgressByDecks(_ context.Context, _ int64) ([]domain.DeckProgressRow, error) {
	if err := m.fail["ProgressByDecks"]; err != nil {
		return nil, err
	}
	return []domain.DeckProgressRow{}, nil
}

func (m *memStore) WithTx(_ *sql.Tx) store.ProgressStore {
	return m
}

// setRecord seeds a record directly.
func (m *memStore) setRecord(rec *domain.ProgressRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[progressKey{rec.UserID, rec.CardID}] = rec.Clone()
}

// fakeTransactor runs fn without a real transaction and counts calls.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	f.calls++
	return fn(ctx, nil)
}

package mocks

import (
	"context"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock of store.UserStore for use with testify/mock.
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

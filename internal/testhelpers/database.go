// Package testhelpers provides the shared fixtures for unit tests: an
// in-memory sqlite database with the application schema, and an in-memory
// refresh-token store.
package testhelpers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
	"github.com/kmwhite/dinner-recipes/backend/internal/service"
)

// SetupTestDatabase opens an in-memory sqlite database and migrates the
// application schema.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Recipe{}, &model.PhotoRecipe{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// MemoryTokenStore is a map-backed service.RefreshTokenStore for tests.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]uuid.UUID
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]uuid.UUID)}
}

func (s *MemoryTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *MemoryTokenStore) Lookup(ctx context.Context, token string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, service.ErrUnauthorized
	}
	return userID, nil
}

func (s *MemoryTokenStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

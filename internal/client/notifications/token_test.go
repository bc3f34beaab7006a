package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
}

func newMemStore() *memStore { return &memStore{data: make(map[string][]byte)} }

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (s *memStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func TestToken_StableAcrossCalls(t *testing.T) {
	ctx := context.Background()
	src := NewDeviceTokenSource(newMemStore())

	first, err := src.Token(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := src.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestToken_SurvivesNewSource(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	first, err := NewDeviceTokenSource(store).Token(ctx)
	require.NoError(t, err)

	second, err := NewDeviceTokenSource(store).Token(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestToken_StoreError(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("locked")

	_, err := NewDeviceTokenSource(store).Token(context.Background())
	require.Error(t, err)
}

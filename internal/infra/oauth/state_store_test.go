package oauth

import (
	"testing"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStore_IssueAndConsume(t *testing.T) {
	store := NewMemoryStateStore()

	flow := service.OAuthFlow{UserID: uuid.New(), Provider: entity.ExternalProviderGoogle}
	state, err := store.Issue(flow)
	require.NoError(t, err)
	assert.NotEmpty(t, state)

	got, err := store.Consume(state)
	require.NoError(t, err)
	assert.Equal(t, flow, *got)
}

func TestMemoryStateStore_SingleUse(t *testing.T) {
	store := NewMemoryStateStore()

	state, err := store.Issue(service.OAuthFlow{UserID: uuid.New(), Provider: entity.ExternalProviderGoogle})
	require.NoError(t, err)

	_, err = store.Consume(state)
	require.NoError(t, err)

	// Replaying the same state must fail.
	_, err = store.Consume(state)
	assert.ErrorIs(t, err, service.ErrStateNotFound)
}

func TestMemoryStateStore_UnknownState(t *testing.T) {
	store := NewMemoryStateStore()

	_, err := store.Consume("never-issued")
	assert.ErrorIs(t, err, service.ErrStateNotFound)
}

func TestMemoryStateStore_ConcurrentFlowsDoNotClobber(t *testing.T) {
	store := NewMemoryStateStore()

	userID := uuid.New()
	first, err := store.Issue(service.OAuthFlow{UserID: userID, Provider: entity.ExternalProviderGoogle})
	require.NoError(t, err)
	second, err := store.Issue(service.OAuthFlow{UserID: userID, Provider: entity.ExternalProviderMicrosoft})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	gotFirst, err := store.Consume(first)
	require.NoError(t, err)
	assert.Equal(t, entity.ExternalProviderGoogle, gotFirst.Provider)

	gotSecond, err := store.Consume(second)
	require.NoError(t, err)
	assert.Equal(t, entity.ExternalProviderMicrosoft, gotSecond.Provider)
}

func TestMemoryStateStore_Expiry(t *testing.T) {
	store := &memoryStateStore{
		entries: make(map[string]stateEntry),
		now:     time.Now,
	}

	state, err := store.Issue(service.OAuthFlow{UserID: uuid.New(), Provider: entity.ExternalProviderGoogle})
	require.NoError(t, err)

	// Advance the clock past the TTL.
	store.now = func() time.Time { return time.Now().Add(stateTTL + time.Minute) }

	_, err = store.Consume(state)
	assert.ErrorIs(t, err, service.ErrStateNotFound)
}

package session

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRedisStore(t *testing.T) (*RedisStore, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	t.Cleanup(func() { client.Close() })
	return &RedisStore{Client: client}, mock
}

func TestRedisStoreGetHit(t *testing.T) {
	store, mock := newMockRedisStore(t)

	mock.ExpectGet(redisKeyPrefix + KeyAccessToken).SetVal("tok-xyz")

	v, ok, err := store.Get(KeyAccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-xyz", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGetMissIsNotAnError(t *testing.T) {
	store, mock := newMockRedisStore(t)

	mock.ExpectGet(redisKeyPrefix + "absent").RedisNil()

	v, ok, err := store.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestRedisStoreSetWithoutExpiry(t *testing.T) {
	store, mock := newMockRedisStore(t)

	mock.ExpectSet(redisKeyPrefix+KeyDemoUser, `{"id":42}`, 0).SetVal("OK")

	require.NoError(t, store.Set(KeyDemoUser, `{"id":42}`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreRemove(t *testing.T) {
	store, mock := newMockRedisStore(t)

	mock.ExpectDel(redisKeyPrefix + KeyRefreshToken).SetVal(1)

	require.NoError(t, store.Remove(KeyRefreshToken))
	assert.NoError(t, mock.ExpectationsWereMet())
}

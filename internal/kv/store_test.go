package kv

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-payment-api/internal/dal"
)

func TestKeyFormats(t *testing.T) {
	assert.Equal(t, "nonce:M1:abc", NonceKey("M1", "abc"))
	assert.Equal(t, "rate:M1:10.0.0.1", RateKey("M1", "10.0.0.1"))
}

func TestClaimNonce(t *testing.T) {
	db, mock := redismock.NewClientMock()
	dal.RedisClient = db
	ttl := 300 * time.Second

	mock.ExpectSetNX("nonce:M1:n1", "1", ttl).SetVal(true)
	ok, err := ClaimNonce(context.Background(), "M1", "n1", ttl)
	require.NoError(t, err)
	assert.True(t, ok)

	// 第二次占用同一 nonce 必须失败
	mock.ExpectSetNX("nonce:M1:n1", "1", ttl).SetVal(false)
	ok, err = ClaimNonce(context.Background(), "M1", "n1", ttl)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateCountMissingKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	dal.RedisClient = db

	mock.ExpectGet("rate:M1:10.0.0.1").RedisNil()
	n, err := RateCount(context.Background(), "M1", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateIncr(t *testing.T) {
	db, mock := redismock.NewClientMock()
	dal.RedisClient = db

	mock.ExpectIncr("rate:M1:10.0.0.1").SetVal(1)
	mock.ExpectExpire("rate:M1:10.0.0.1", time.Minute).SetVal(true)

	n, err := RateIncr(context.Background(), "M1", "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, mock.ExpectationsWereMet())
}

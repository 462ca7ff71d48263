// Package kv 封装 Redis 上的两类短时键：防重放 nonce 与限流计数器。
// 这是数据库之外唯一的共享可变状态。
package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"virtual-payment-api/internal/dal"
)

func NonceKey(appID, nonce string) string {
	return fmt.Sprintf("nonce:%s:%s", appID, nonce)
}

func RateKey(merchantID, ip string) string {
	return fmt.Sprintf("rate:%s:%s", merchantID, ip)
}

// ClaimNonce 以 SET NX 原子地占用 nonce。返回 false 表示该 nonce 在
// 窗口内已被消耗（重放）。占用后不回滚。
func ClaimNonce(ctx context.Context, appID, nonce string, ttl time.Duration) (bool, error) {
	return dal.RedisClient.SetNX(ctx, NonceKey(appID, nonce), "1", ttl).Result()
}

// RateCount 读取当前窗口计数，键不存在按 0
func RateCount(ctx context.Context, merchantID, ip string) (int64, error) {
	n, err := dal.RedisClient.Get(ctx, RateKey(merchantID, ip)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// RateIncr 计数 +1 并重置窗口过期。固定窗口语义：窗口边界允许突发，
// 与源实现保持一致。
func RateIncr(ctx context.Context, merchantID, ip string, window time.Duration) (int64, error) {
	key := RateKey(merchantID, ip)
	n, err := dal.RedisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if err := dal.RedisClient.Expire(ctx, key, window).Err(); err != nil {
		return n, err
	}
	return n, nil
}

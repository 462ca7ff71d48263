package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"virtual-payment-api/internal/dal"
)

var dbSeq int64

// setupDB 为每个测试开一个独立的内存库并替换全局连接。
// 写事务在 BEGIN 时即取写锁并等待，并发事务因此严格串行提交。
func setupDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared&_busy_timeout=5000&_txlock=immediate",
		atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dal.Migrate(db))
	dal.MainDB = db
}

// fundedAccount 开户并充值到指定余额
func fundedAccount(t *testing.T, svc *AccountService, balance int64) string {
	t.Helper()
	vo, err := svc.Create(context.Background())
	require.NoError(t, err)
	if balance > 0 {
		_, err = svc.Recharge(context.Background(), vo.AccountID, balance)
		require.NoError(t, err)
	}
	return vo.AccountID
}

package model

import "time"

// Account 资金账户，金额一律为最小货币单位（分）。
// 余额只在持有行锁的事务内变更，提交时必须满足两项余额均非负。
type Account struct {
	AccountID     string    `gorm:"column:account_id;type:varchar(64);primaryKey" json:"account_id"`
	Balance       int64     `gorm:"column:balance;not null;default:0" json:"balance"`
	FrozenBalance int64     `gorm:"column:frozen_balance;not null;default:0" json:"frozen_balance"`
	CreateTime    time.Time `gorm:"column:create_time;autoCreateTime;index" json:"create_time"`
}

func (Account) TableName() string { return "account" }

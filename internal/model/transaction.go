package model

import "time"

// 交易类型
const (
	TxTypePayment  int8 = 1 // 支付/转账
	TxTypeRefund   int8 = 2
	TxTypeRecharge int8 = 3
	TxTypeWithdraw int8 = 4
	TxTypeSplit    int8 = 5
)

// SystemAccount 充值/提现的对手方哨兵账户
const SystemAccount = "SYSTEM"

// Transaction 账本流水，插入后不可变。充值/提现等无真实订单的流水
// 使用 RECHARGE*/WITHDRAW*/TRANSFER* 合成订单号。
type Transaction struct {
	TransactionID string    `gorm:"column:transaction_id;type:varchar(64);primaryKey" json:"transaction_id"`
	OrderID       string    `gorm:"column:order_id;type:varchar(64);not null;index" json:"order_id"`
	FromAccount   string    `gorm:"column:from_account;type:varchar(64);not null;index" json:"from_account"`
	ToAccount     string    `gorm:"column:to_account;type:varchar(64);not null;index" json:"to_account"`
	Amount        int64     `gorm:"column:amount;not null" json:"amount"`
	Type          int8      `gorm:"column:type;not null" json:"type"`
	CreateTime    time.Time `gorm:"column:create_time;autoCreateTime;index" json:"create_time"`
}

func (Transaction) TableName() string { return "transaction" }

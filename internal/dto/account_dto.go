package dto

import "time"

type AmountReq struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

type TransferReq struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"order_id"`
}

type ListTransactionReq struct {
	Type      *int8  `form:"type"`
	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`
	PageQuery
}

type AccountVO struct {
	AccountID     string    `json:"account_id"`
	Balance       int64     `json:"balance"`
	FrozenBalance int64     `json:"frozen_balance"`
	CreateTime    time.Time `json:"create_time"`
}

type MutationResp struct {
	AccountID     string `json:"account_id"`
	TransactionID string `json:"transaction_id,omitempty"`
	Amount        int64  `json:"amount"`
	Balance       int64  `json:"balance"`
	FrozenBalance int64  `json:"frozen_balance"`
}

type TransferResp struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
}

// TransactionVO 账本流水视图，is_income 以查询账户为参照计算
type TransactionVO struct {
	TransactionID string    `json:"transaction_id"`
	OrderID       string    `json:"order_id"`
	FromAccount   string    `json:"from_account"`
	ToAccount     string    `json:"to_account"`
	Amount        int64     `json:"amount"`
	Type          int8      `json:"type"`
	IsIncome      bool      `json:"is_income"`
	AmountDisplay string    `json:"amount_display"`
	CreateTime    time.Time `json:"create_time"`
}

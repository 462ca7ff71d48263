package dto

import "time"

type CreateOrderReq struct {
	MerchantOrderID string `json:"merchant_order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Channel         string `json:"channel"`
	NotifyURL       string `json:"notify_url"`
}

type QueryOrderReq struct {
	OrderID         string `json:"order_id"`
	MerchantOrderID string `json:"merchant_order_id"`
}

type CloseOrderReq struct {
	OrderID         string `json:"order_id"`
	MerchantOrderID string `json:"merchant_order_id"`
	Version         int64  `json:"version"`
}

type PayOrderReq struct {
	OrderID     string `json:"order_id"`
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
}

type ListOrderReq struct {
	Status    *int8  `form:"status"`
	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`
	PageQuery
}

type OrderVO struct {
	OrderID         string    `json:"order_id"`
	MerchantOrderID string    `json:"merchant_order_id"`
	MerchantID      string    `json:"merchant_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Channel         string    `json:"channel"`
	Status          int8      `json:"status"`
	Version         int64     `json:"version"`
	CreateTime      time.Time `json:"create_time"`
}

// CreateOrderResp 附带按渠道生成的模拟收银台参数
type CreateOrderResp struct {
	OrderVO
	PayType string `json:"pay_type"`
	PayURL  string `json:"pay_url"`
}

type PayOrderResp struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Status        int8   `json:"status"`
	PayTime       string `json:"pay_time"`
}

type CloseOrderResp struct {
	OrderID         string `json:"order_id"`
	MerchantOrderID string `json:"merchant_order_id"`
	Status          int8   `json:"status"`
}

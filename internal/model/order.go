package model

import "time"

// 订单状态
const (
	OrderStatusPending         int8 = 0
	OrderStatusPaid            int8 = 1
	OrderStatusClosed          int8 = 2
	OrderStatusPartialRefunded int8 = 3
	OrderStatusRefunded        int8 = 4
)

// Order 商户订单。Version 是乐观锁令牌，每次状态写入 +1。
// merchant_order_id 默认按商户维度唯一（联合唯一索引）。
type Order struct {
	OrderID         string    `gorm:"column:order_id;type:varchar(64);primaryKey" json:"order_id"`
	MerchantOrderID string    `gorm:"column:merchant_order_id;type:varchar(64);not null;uniqueIndex:uk_merchant_order,priority:2" json:"merchant_order_id"`
	MerchantID      string    `gorm:"column:merchant_id;type:varchar(64);not null;uniqueIndex:uk_merchant_order,priority:1;index:idx_merchant_status_time,priority:1" json:"merchant_id"`
	Amount          int64     `gorm:"column:amount;not null" json:"amount"`
	Currency        string    `gorm:"column:currency;type:char(3);not null;default:CNY" json:"currency"`
	Channel         string    `gorm:"column:channel;type:varchar(20);not null" json:"channel"`
	Status          int8      `gorm:"column:status;not null;default:0;index;index:idx_merchant_status_time,priority:2" json:"status"`
	Version         int64     `gorm:"column:version;not null;default:0" json:"version"`
	NotifyURL       string    `gorm:"column:notify_url;type:varchar(256)" json:"notify_url,omitempty"`
	CreateTime      time.Time `gorm:"column:create_time;autoCreateTime;index;index:idx_merchant_status_time,priority:3" json:"create_time"`
}

func (Order) TableName() string { return "order" }

package model

import "time"

// Merchant 商户。PrivateKey 既是 RSA 私钥 PEM，也是验签用的 HMAC 共享密钥，
// 对外接口一律不返回。
type Merchant struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MerchantID   string    `gorm:"column:merchant_id;type:varchar(64);not null;uniqueIndex" json:"merchant_id"`
	MerchantName string    `gorm:"column:merchant_name;type:varchar(128);not null;index" json:"merchant_name"`
	PrivateKey   string    `gorm:"column:private_key;type:text;not null" json:"-"`
	PublicKey    string    `gorm:"column:public_key;type:text;not null" json:"public_key"`
	CreateTime   time.Time `gorm:"column:create_time;autoCreateTime;index" json:"create_time"`
}

func (Merchant) TableName() string { return "merchant" }

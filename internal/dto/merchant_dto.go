package dto

import "time"

type CreateMerchantReq struct {
	MerchantName string `json:"merchant_name"`
}

type UpdateMerchantReq struct {
	MerchantName string `json:"merchant_name"`
}

type SearchMerchantReq struct {
	MerchantName string `form:"merchant_name"`
	PageQuery
}

// MerchantVO 对外商户视图，绝不携带私钥/共享密钥
type MerchantVO struct {
	ID           uint64    `json:"id,omitempty"`
	MerchantID   string    `json:"merchant_id"`
	MerchantName string    `json:"merchant_name"`
	PublicKey    string    `json:"public_key"`
	CreateTime   time.Time `json:"create_time"`
}

type RegenerateKeysResp struct {
	MerchantID string    `json:"merchant_id"`
	PublicKey  string    `json:"public_key"`
	UpdateTime time.Time `json:"update_time"`
}

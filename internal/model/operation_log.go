package model

import "time"

// OperationLog 管理后台操作审计行，ID 由 snowflake 生成。
type OperationLog struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	Username   string    `gorm:"column:username;type:varchar(64);not null;index" json:"username"`
	Method     string    `gorm:"column:method;type:varchar(8);not null" json:"method"`
	Path       string    `gorm:"column:path;type:varchar(256);not null" json:"path"`
	Status     int       `gorm:"column:status;not null" json:"status"`
	IP         string    `gorm:"column:ip;type:varchar(64)" json:"ip"`
	LatencyMs  int64     `gorm:"column:latency_ms;not null" json:"latency_ms"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime;index" json:"create_time"`
}

func (OperationLog) TableName() string { return "operation_log" }

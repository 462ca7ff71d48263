package model

import "time"

// AdminUser 管理后台账号，密码只存 bcrypt 散列。
type AdminUser struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	Role         string    `gorm:"column:role;type:varchar(32);not null;default:operator" json:"role"`
	Status       int8      `gorm:"column:status;not null;default:1" json:"status"`
	CreateTime   time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
}

func (AdminUser) TableName() string { return "admin_user" }

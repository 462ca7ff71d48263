package dto

import "time"

type AdminLoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResp struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	ExpireAt int64  `json:"expire_at"`
}

type CreateAdminReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type AdminVO struct {
	ID         uint64    `json:"id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	Status     int8      `json:"status"`
	CreateTime time.Time `json:"create_time"`
}

type ListLogReq struct {
	Username  string `form:"username"`
	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`
	PageQuery
}

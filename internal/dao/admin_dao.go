package dao

import (
	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/model"
)

type AdminDao struct{}

func NewAdminDao() *AdminDao { return &AdminDao{} }

func (d *AdminDao) Insert(u *model.AdminUser) error {
	return dal.MainDB.Create(u).Error
}

func (d *AdminDao) GetByUsername(username string) (*model.AdminUser, error) {
	var u model.AdminUser
	if err := dal.MainDB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *AdminDao) List(offset, limit int) ([]model.AdminUser, int64, error) {
	var total int64
	if err := dal.MainDB.Model(&model.AdminUser{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.AdminUser
	err := dal.MainDB.Order("id ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

type OperationLogDao struct{}

func NewOperationLogDao() *OperationLogDao { return &OperationLogDao{} }

func (d *OperationLogDao) Insert(l *model.OperationLog) error {
	return dal.MainDB.Create(l).Error
}

func (d *OperationLogDao) List(req dto.ListLogReq) ([]model.OperationLog, int64, error) {
	q := dal.MainDB.Model(&model.OperationLog{})
	if req.Username != "" {
		q = q.Where("username = ?", req.Username)
	}
	q = timeRange(q, req.StartTime, req.EndTime)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.OperationLog
	err := q.Order("create_time DESC").
		Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).
		Find(&list).Error
	return list, total, err
}

// ListAll 导出用：按条件取全部（时间倒序）
func (d *OperationLogDao) ListAll(req dto.ListLogReq) ([]model.OperationLog, error) {
	q := dal.MainDB.Model(&model.OperationLog{})
	if req.Username != "" {
		q = q.Where("username = ?", req.Username)
	}
	q = timeRange(q, req.StartTime, req.EndTime)
	var list []model.OperationLog
	err := q.Order("create_time DESC").Find(&list).Error
	return list, err
}

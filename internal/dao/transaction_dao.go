package dao

import (
	"gorm.io/gorm"

	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/model"
)

type TransactionDao struct{}

func NewTransactionDao() *TransactionDao { return &TransactionDao{} }

// Insert 追加账本流水，必须与余额变更同属一个事务
func (d *TransactionDao) Insert(tx *gorm.DB, t *model.Transaction) error {
	return tx.Create(t).Error
}

// ListByAccount 单账户视角的流水分页（from 或 to 命中），按时间倒序
func (d *TransactionDao) ListByAccount(accountID string, req dto.ListTransactionReq) ([]model.Transaction, int64, error) {
	q := dal.MainDB.Model(&model.Transaction{}).
		Where("from_account = ? OR to_account = ?", accountID, accountID)
	if req.Type != nil {
		q = q.Where("type = ?", *req.Type)
	}
	q = timeRange(q, req.StartTime, req.EndTime)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Transaction
	err := q.Order("create_time DESC").
		Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).
		Find(&list).Error
	return list, total, err
}

// ListByOrder 某订单的全部流水
func (d *TransactionDao) ListByOrder(orderID string) ([]model.Transaction, error) {
	var list []model.Transaction
	err := dal.MainDB.Where("order_id = ?", orderID).
		Order("create_time DESC").Find(&list).Error
	return list, err
}

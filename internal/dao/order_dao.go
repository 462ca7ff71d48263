package dao

import (
	"time"

	"gorm.io/gorm"

	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/model"
)

type OrderDao struct{}

func NewOrderDao() *OrderDao { return &OrderDao{} }

func (d *OrderDao) Insert(tx *gorm.DB, o *model.Order) error {
	return tx.Create(o).Error
}

func (d *OrderDao) GetByID(orderID string) (*model.Order, error) {
	var o model.Order
	if err := dal.MainDB.Where("order_id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (d *OrderDao) GetByMerchantOrderID(merchantOrderID, merchantID string) (*model.Order, error) {
	var o model.Order
	err := dal.MainDB.Where("merchant_order_id = ? AND merchant_id = ?", merchantOrderID, merchantID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ExistsMerchantOrderID 全局作用域下的跨商户查重
func (d *OrderDao) ExistsMerchantOrderID(merchantOrderID string) (bool, error) {
	var n int64
	err := dal.MainDB.Model(&model.Order{}).
		Where("merchant_order_id = ?", merchantOrderID).Count(&n).Error
	return n > 0, err
}

// Lock 在事务内锁定订单行（支付路径）
func (d *OrderDao) Lock(tx *gorm.DB, orderID string) (*model.Order, error) {
	var o model.Order
	if err := forUpdate(tx).Where("order_id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusCAS 乐观更新：断言 (order_id, status, version) 并把 version +1。
// 返回命中行数；0 表示并发修改或状态不符。
func (d *OrderDao) UpdateStatusCAS(tx *gorm.DB, orderID string, fromStatus, toStatus int8, version int64) (int64, error) {
	res := tx.Model(&model.Order{}).
		Where("order_id = ? AND status = ? AND version = ?", orderID, fromStatus, version).
		Updates(map[string]interface{}{"status": toStatus, "version": version + 1})
	return res.RowsAffected, res.Error
}

// ListByMerchant 商户订单分页，按创建时间倒序
func (d *OrderDao) ListByMerchant(merchantID string, req dto.ListOrderReq) ([]model.Order, int64, error) {
	q := dal.MainDB.Model(&model.Order{}).Where("merchant_id = ?", merchantID)
	if req.Status != nil {
		q = q.Where("status = ?", *req.Status)
	}
	q = timeRange(q, req.StartTime, req.EndTime)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Order
	err := q.Order("create_time DESC").
		Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).
		Find(&list).Error
	return list, total, err
}

func timeRange(q *gorm.DB, start, end string) *gorm.DB {
	if start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			q = q.Where("create_time >= ?", t)
		}
	}
	if end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			q = q.Where("create_time <= ?", t)
		}
	}
	return q
}

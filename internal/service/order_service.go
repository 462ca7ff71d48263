package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/dao"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/idgen"
	"virtual-payment-api/internal/metrics"
	"virtual-payment-api/internal/model"
	"virtual-payment-api/internal/mq"
	"virtual-payment-api/internal/utils/timeutil"
)

type OrderService struct {
	orderDao   *dao.OrderDao
	accountSvc *AccountService
}

func NewOrderService() *OrderService {
	return &OrderService{
		orderDao:   dao.NewOrderDao(),
		accountSvc: NewAccountService(),
	}
}

// Create 创建待支付订单。merchant_order_id 查重交给联合唯一索引，
// global 作用域时额外做一次跨商户预检。
func (s *OrderService) Create(ctx context.Context, merchantID string, req dto.CreateOrderReq) (*dto.CreateOrderResp, error) {
	if req.Amount <= 0 {
		return nil, constant.NewError(constant.CodeOrderInvalidAmount)
	}
	if config.C.Order.MerchantOrderScope == "global" {
		exists, err := s.orderDao.ExistsMerchantOrderID(req.MerchantOrderID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, constant.NewError(constant.CodeOrderDuplicate)
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "CNY"
	}
	o := &model.Order{
		OrderID:         idgen.OrderID(),
		MerchantOrderID: req.MerchantOrderID,
		MerchantID:      merchantID,
		Amount:          req.Amount,
		Currency:        currency,
		Channel:         req.Channel,
		Status:          model.OrderStatusPending,
		NotifyURL:       req.NotifyURL,
	}
	err := dal.MainDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orderDao.Insert(tx, o)
	})
	if err != nil {
		if dao.IsDuplicate(err) {
			return nil, constant.NewError(constant.CodeOrderDuplicate)
		}
		return nil, err
	}

	mq.PublishOrderEvent("order.created", mq.OrderEvent{
		OrderID:         o.OrderID,
		MerchantID:      o.MerchantID,
		MerchantOrderID: o.MerchantOrderID,
		Amount:          o.Amount,
		Currency:        o.Currency,
		Status:          o.Status,
		OccurredAt:      time.Now().Unix(),
	})

	return &dto.CreateOrderResp{
		OrderVO: orderVO(o),
		PayType: o.Channel,
		PayURL:  fmt.Sprintf("/cashier/%s/%s", o.Channel, o.OrderID),
	}, nil
}

// Query 按平台订单号或商户订单号查询，order_id 优先
func (s *OrderService) Query(ctx context.Context, merchantID string, req dto.QueryOrderReq) (*dto.OrderVO, error) {
	var (
		o   *model.Order
		err error
	)
	if req.OrderID != "" {
		o, err = s.orderDao.GetByID(req.OrderID)
	} else {
		o, err = s.orderDao.GetByMerchantOrderID(req.MerchantOrderID, merchantID)
	}
	if err != nil {
		return nil, notFoundOr(err, constant.CodeOrderNotFound)
	}
	if o.MerchantID != merchantID {
		return nil, constant.NewError(constant.CodeOrderAccessDenied)
	}
	vo := orderVO(o)
	return &vo, nil
}

// Close 关闭待支付订单（CAS 0 -> 2），平台单号与商户单号二选一，
// order_id 优先。命中 0 行时重读区分状态不允许与并发冲突两种失败。
func (s *OrderService) Close(ctx context.Context, merchantID string, req dto.CloseOrderReq) (*dto.CloseOrderResp, error) {
	var (
		o   *model.Order
		err error
	)
	if req.OrderID != "" {
		o, err = s.orderDao.GetByID(req.OrderID)
	} else {
		o, err = s.orderDao.GetByMerchantOrderID(req.MerchantOrderID, merchantID)
	}
	if err != nil {
		return nil, notFoundOr(err, constant.CodeOrderNotFound)
	}
	if o.MerchantID != merchantID {
		return nil, constant.NewError(constant.CodeOrderAccessDenied)
	}
	if o.Status != model.OrderStatusPending {
		return nil, constant.NewError(constant.CodeOrderInvalidStatus)
	}

	var hit int64
	err = dal.MainDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		hit, err = s.orderDao.UpdateStatusCAS(tx, o.OrderID, model.OrderStatusPending, model.OrderStatusClosed, req.Version)
		return err
	})
	if err != nil {
		return nil, err
	}
	if hit == 0 {
		cur, err := s.orderDao.GetByID(o.OrderID)
		if err != nil {
			return nil, notFoundOr(err, constant.CodeOrderNotFound)
		}
		if cur.Status != model.OrderStatusPending {
			return nil, constant.NewError(constant.CodeOrderInvalidStatus)
		}
		return nil, constant.NewError(constant.CodeOrderCloseConflict)
	}

	mq.PublishOrderEvent("order.closed", mq.OrderEvent{
		OrderID:         o.OrderID,
		MerchantID:      o.MerchantID,
		MerchantOrderID: o.MerchantOrderID,
		Amount:          o.Amount,
		Currency:        o.Currency,
		Status:          model.OrderStatusClosed,
		OccurredAt:      time.Now().Unix(),
	})

	return &dto.CloseOrderResp{
		OrderID:         o.OrderID,
		MerchantOrderID: o.MerchantOrderID,
		Status:          model.OrderStatusClosed,
	}, nil
}

// Pay 支付订单：单事务内锁定订单、转账、CAS 置为已支付，
// 任一步失败整体回滚。merchantID 为空表示免签的模拟支付入口，跳过归属校验。
func (s *OrderService) Pay(ctx context.Context, merchantID string, req dto.PayOrderReq) (*dto.PayOrderResp, error) {
	var (
		evt  mq.OrderEvent
		resp *dto.PayOrderResp
	)
	err := dal.MainDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := s.orderDao.Lock(tx, req.OrderID)
		if err != nil {
			return notFoundOr(err, constant.CodeOrderNotFound)
		}
		if merchantID != "" && o.MerchantID != merchantID {
			return constant.NewError(constant.CodeOrderAccessDenied)
		}
		if o.Status != model.OrderStatusPending {
			return constant.NewError(constant.CodeOrderInvalidStatus)
		}

		row, err := s.accountSvc.TransferTx(tx, req.FromAccount, req.ToAccount, o.Amount, o.OrderID)
		if err != nil {
			return err
		}

		hit, err := s.orderDao.UpdateStatusCAS(tx, o.OrderID, model.OrderStatusPending, model.OrderStatusPaid, o.Version)
		if err != nil {
			return err
		}
		if hit == 0 {
			return constant.NewError(constant.CodeOrderCloseConflict)
		}

		resp = &dto.PayOrderResp{
			OrderID:       o.OrderID,
			TransactionID: row.TransactionID,
			Amount:        o.Amount,
			Currency:      o.Currency,
			Status:        model.OrderStatusPaid,
			PayTime:       timeutil.Compact(time.Now()),
		}
		evt = mq.OrderEvent{
			OrderID:         o.OrderID,
			MerchantID:      o.MerchantID,
			MerchantOrderID: o.MerchantOrderID,
			Amount:          o.Amount,
			Currency:        o.Currency,
			Status:          model.OrderStatusPaid,
			OccurredAt:      time.Now().Unix(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.LedgerOps.WithLabelValues("payment").Inc()
	mq.PublishOrderEvent("order.paid", evt)
	return resp, nil
}

// List 商户订单分页
func (s *OrderService) List(ctx context.Context, merchantID string, req dto.ListOrderReq) (*dto.PagedResult, error) {
	req.Normalize()
	rows, total, err := s.orderDao.ListByMerchant(merchantID, req)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.OrderVO, 0, len(rows))
	for i := range rows {
		vos = append(vos, orderVO(&rows[i]))
	}
	res := dto.NewPagedResult(total, req.Page, req.PageSize, vos)
	return &res, nil
}

func orderVO(o *model.Order) dto.OrderVO {
	return dto.OrderVO{
		OrderID:         o.OrderID,
		MerchantOrderID: o.MerchantOrderID,
		MerchantID:      o.MerchantID,
		Amount:          o.Amount,
		Currency:        o.Currency,
		Channel:         o.Channel,
		Status:          o.Status,
		Version:         o.Version,
		CreateTime:      o.CreateTime,
	}
}

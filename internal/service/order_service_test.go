package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/model"
)

func TestCreateOrder(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	resp, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{
		MerchantOrderID: "mo-1", Amount: 1000, Channel: "alipay",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^\d{14}[0-9a-f]{18}$`, resp.OrderID)
	assert.Equal(t, model.OrderStatusPending, resp.Status)
	assert.Equal(t, int64(0), resp.Version)
	assert.Equal(t, "CNY", resp.Currency)
	assert.Equal(t, "alipay", resp.PayType)
	assert.Contains(t, resp.PayURL, resp.OrderID)
}

func TestCreateOrderDuplicatePerMerchant(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	_, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 100, Channel: "alipay"})
	assert.Equal(t, constant.CodeOrderDuplicate, constant.CodeOf(err))

	// 商户维度唯一：另一商户可复用同一单号
	_, err = svc.Create(context.Background(), "M2", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 100, Channel: "alipay"})
	assert.NoError(t, err)
}

func TestCreateOrderGlobalScope(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	old := config.C.Order.MerchantOrderScope
	config.C.Order.MerchantOrderScope = "global"
	defer func() { config.C.Order.MerchantOrderScope = old }()

	_, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-g", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "M2", dto.CreateOrderReq{MerchantOrderID: "mo-g", Amount: 100, Channel: "alipay"})
	assert.Equal(t, constant.CodeOrderDuplicate, constant.CodeOf(err))
}

func TestQueryOrder(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	created, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	vo, err := svc.Query(context.Background(), "M1", dto.QueryOrderReq{OrderID: created.OrderID})
	require.NoError(t, err)
	assert.Equal(t, created.OrderID, vo.OrderID)

	vo, err = svc.Query(context.Background(), "M1", dto.QueryOrderReq{MerchantOrderID: "mo-1"})
	require.NoError(t, err)
	assert.Equal(t, created.OrderID, vo.OrderID)

	// 跨商户按平台单号查询必须拒绝
	_, err = svc.Query(context.Background(), "M2", dto.QueryOrderReq{OrderID: created.OrderID})
	assert.Equal(t, constant.CodeOrderAccessDenied, constant.CodeOf(err))

	_, err = svc.Query(context.Background(), "M1", dto.QueryOrderReq{OrderID: "missing"})
	assert.Equal(t, constant.CodeOrderNotFound, constant.CodeOf(err))
}

func TestCloseOrder(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	created, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	// 版本号不匹配：并发冲突
	_, err = svc.Close(context.Background(), "M1", dto.CloseOrderReq{OrderID: created.OrderID, Version: created.Version + 1})
	assert.Equal(t, constant.CodeOrderCloseConflict, constant.CodeOf(err))

	resp, err := svc.Close(context.Background(), "M1", dto.CloseOrderReq{OrderID: created.OrderID, Version: created.Version})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusClosed, resp.Status)

	// 已关闭订单不可再关
	_, err = svc.Close(context.Background(), "M1", dto.CloseOrderReq{OrderID: created.OrderID, Version: created.Version + 1})
	assert.Equal(t, constant.CodeOrderInvalidStatus, constant.CodeOf(err))

	vo, err := svc.Query(context.Background(), "M1", dto.QueryOrderReq{OrderID: created.OrderID})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusClosed, vo.Status)
	assert.Equal(t, created.Version+1, vo.Version)
}

func TestCloseOrderByMerchantOrderID(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	created, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-c", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	// 商户单号关单，order_id 可省略
	resp, err := svc.Close(context.Background(), "M1", dto.CloseOrderReq{MerchantOrderID: "mo-c", Version: created.Version})
	require.NoError(t, err)
	assert.Equal(t, created.OrderID, resp.OrderID)
	assert.Equal(t, model.OrderStatusClosed, resp.Status)

	// 商户单号按商户隔离解析
	_, err = svc.Close(context.Background(), "M2", dto.CloseOrderReq{MerchantOrderID: "mo-c"})
	assert.Equal(t, constant.CodeOrderNotFound, constant.CodeOf(err))
}

func TestCloseOrderAccessDenied(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	created, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), "M2", dto.CloseOrderReq{OrderID: created.OrderID, Version: created.Version})
	assert.Equal(t, constant.CodeOrderAccessDenied, constant.CodeOf(err))
}

func TestPayOrder(t *testing.T) {
	setupDB(t)
	orderSvc := NewOrderService()
	accountSvc := NewAccountService()

	payer := fundedAccount(t, accountSvc, 1000)
	payee := fundedAccount(t, accountSvc, 0)

	created, err := orderSvc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 600, Channel: "alipay"})
	require.NoError(t, err)

	resp, err := orderSvc.Pay(context.Background(), "M1", dto.PayOrderReq{
		OrderID: created.OrderID, FromAccount: payer, ToAccount: payee,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, resp.Status)
	assert.NotEmpty(t, resp.TransactionID)
	assert.Len(t, resp.PayTime, 14)

	va, _ := accountSvc.Get(context.Background(), payer)
	vb, _ := accountSvc.Get(context.Background(), payee)
	assert.Equal(t, int64(400), va.Balance)
	assert.Equal(t, int64(600), vb.Balance)

	// 已支付订单不可重复支付
	_, err = orderSvc.Pay(context.Background(), "M1", dto.PayOrderReq{
		OrderID: created.OrderID, FromAccount: payer, ToAccount: payee,
	})
	assert.Equal(t, constant.CodeOrderInvalidStatus, constant.CodeOf(err))
}

func TestPayOrderAtomicity(t *testing.T) {
	setupDB(t)
	orderSvc := NewOrderService()
	accountSvc := NewAccountService()

	payer := fundedAccount(t, accountSvc, 100)
	payee := fundedAccount(t, accountSvc, 0)

	created, err := orderSvc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 600, Channel: "alipay"})
	require.NoError(t, err)

	_, err = orderSvc.Pay(context.Background(), "M1", dto.PayOrderReq{
		OrderID: created.OrderID, FromAccount: payer, ToAccount: payee,
	})
	assert.Equal(t, constant.CodeInsufficientBalance, constant.CodeOf(err))

	// 支付失败整体回滚：订单仍待支付，余额不动
	vo, err := orderSvc.Query(context.Background(), "M1", dto.QueryOrderReq{OrderID: created.OrderID})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, vo.Status)
	assert.Equal(t, created.Version, vo.Version)

	va, _ := accountSvc.Get(context.Background(), payer)
	assert.Equal(t, int64(100), va.Balance)
}

func TestPayThenCloseConflict(t *testing.T) {
	setupDB(t)
	orderSvc := NewOrderService()
	accountSvc := NewAccountService()

	payer := fundedAccount(t, accountSvc, 1000)
	payee := fundedAccount(t, accountSvc, 0)

	created, err := orderSvc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-1", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	_, err = orderSvc.Pay(context.Background(), "M1", dto.PayOrderReq{OrderID: created.OrderID, FromAccount: payer, ToAccount: payee})
	require.NoError(t, err)

	// 商户拿着旧版本号关单：状态已不允许
	_, err = orderSvc.Close(context.Background(), "M1", dto.CloseOrderReq{OrderID: created.OrderID, Version: created.Version})
	assert.Equal(t, constant.CodeOrderInvalidStatus, constant.CodeOf(err))
}

func TestConcurrentCloseSingleWinner(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	created, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-r", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)

	// 两个并发关单拿同一个版本号，恰好一个赢
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.Close(context.Background(), "M1", dto.CloseOrderReq{
				OrderID: created.OrderID, Version: created.Version,
			})
			errs <- err
		}()
	}
	var wins, losses int
	for i := 0; i < 2; i++ {
		if err := <-errs; err == nil {
			wins++
		} else {
			losses++
			code := constant.CodeOf(err)
			assert.Contains(t,
				[]string{constant.CodeOrderCloseConflict, constant.CodeOrderInvalidStatus}, code)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, losses)

	// 状态只推进一次，版本恰好 +1
	vo, err := svc.Query(context.Background(), "M1", dto.QueryOrderReq{OrderID: created.OrderID})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusClosed, vo.Status)
	assert.Equal(t, created.Version+1, vo.Version)
}

func TestListOrders(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	for _, moid := range []string{"mo-1", "mo-2", "mo-3"} {
		_, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: moid, Amount: 100, Channel: "alipay"})
		require.NoError(t, err)
	}
	created, err := svc.Create(context.Background(), "M1", dto.CreateOrderReq{MerchantOrderID: "mo-4", Amount: 100, Channel: "alipay"})
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), "M1", dto.CloseOrderReq{OrderID: created.OrderID})
	require.NoError(t, err)

	res, err := svc.List(context.Background(), "M1", dto.ListOrderReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Total)

	closed := model.OrderStatusClosed
	res, err = svc.List(context.Background(), "M1", dto.ListOrderReq{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)

	// 其他商户看不到
	res, err = svc.List(context.Background(), "M2", dto.ListOrderReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Total)
}

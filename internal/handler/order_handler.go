package handler

import (
	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/service"
	"virtual-payment-api/internal/utils"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler() *OrderHandler {
	return &OrderHandler{svc: service.NewOrderService()}
}

func (h *OrderHandler) Create(c *gin.Context) {
	m := merchantFrom(c)
	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil || req.MerchantOrderID == "" || req.Channel == "" {
		utils.Fail(c, constant.CodeOrderInvalidParams)
		return
	}
	if req.Amount <= 0 {
		utils.Fail(c, constant.CodeOrderInvalidAmount)
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), m.MerchantID, req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeOrderCreateSuccess, resp)
}

func (h *OrderHandler) Query(c *gin.Context) {
	m := merchantFrom(c)
	var req dto.QueryOrderReq
	if err := c.ShouldBindJSON(&req); err != nil || (req.OrderID == "" && req.MerchantOrderID == "") {
		utils.Fail(c, constant.CodeOrderInvalidParams)
		return
	}
	vo, err := h.svc.Query(c.Request.Context(), m.MerchantID, req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeOrderQuerySuccess, vo)
}

func (h *OrderHandler) Close(c *gin.Context) {
	m := merchantFrom(c)
	var req dto.CloseOrderReq
	if err := c.ShouldBindJSON(&req); err != nil || (req.OrderID == "" && req.MerchantOrderID == "") {
		utils.Fail(c, constant.CodeOrderInvalidParams)
		return
	}
	resp, err := h.svc.Close(c.Request.Context(), m.MerchantID, req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeOrderCloseSuccess, resp)
}

// Pay 模拟支付入口，不走签名信封
func (h *OrderHandler) Pay(c *gin.Context) {
	var req dto.PayOrderReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.OrderID == "" || req.FromAccount == "" || req.ToAccount == "" {
		utils.Fail(c, constant.CodeOrderInvalidParams)
		return
	}
	resp, err := h.svc.Pay(c.Request.Context(), "", req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeOrderPaySuccess, resp)
}

// List 过滤条件走查询串，身份仍由签名信封确定
func (h *OrderHandler) List(c *gin.Context) {
	m := merchantFrom(c)
	var req dto.ListOrderReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Fail(c, constant.CodeOrderInvalidParams)
		return
	}
	res, err := h.svc.List(c.Request.Context(), m.MerchantID, req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeOrderListSuccess, res)
}

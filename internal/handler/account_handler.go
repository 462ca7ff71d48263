package handler

import (
	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/service"
	"virtual-payment-api/internal/utils"
)

type AccountHandler struct {
	svc *service.AccountService
}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{svc: service.NewAccountService()}
}

func (h *AccountHandler) Create(c *gin.Context) {
	vo, err := h.svc.Create(c.Request.Context())
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountCreateSuccess, vo)
}

func (h *AccountHandler) Get(c *gin.Context) {
	vo, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountGetSuccess, vo)
}

func (h *AccountHandler) Recharge(c *gin.Context) {
	req, ok := bindAmount(c)
	if !ok {
		return
	}
	resp, err := h.svc.Recharge(c.Request.Context(), req.AccountID, req.Amount)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountRechargeSuccess, resp)
}

func (h *AccountHandler) Withdraw(c *gin.Context) {
	req, ok := bindAmount(c)
	if !ok {
		return
	}
	resp, err := h.svc.Withdraw(c.Request.Context(), req.AccountID, req.Amount)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountWithdrawSuccess, resp)
}

func (h *AccountHandler) Freeze(c *gin.Context) {
	req, ok := bindAmount(c)
	if !ok {
		return
	}
	resp, err := h.svc.Freeze(c.Request.Context(), req.AccountID, req.Amount)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountFreezeSuccess, resp)
}

func (h *AccountHandler) Unfreeze(c *gin.Context) {
	req, ok := bindAmount(c)
	if !ok {
		return
	}
	resp, err := h.svc.Unfreeze(c.Request.Context(), req.AccountID, req.Amount)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountUnfreezeSuccess, resp)
}

func (h *AccountHandler) Transfer(c *gin.Context) {
	var req dto.TransferReq
	if err := c.ShouldBindJSON(&req); err != nil || req.FromAccount == "" || req.ToAccount == "" {
		utils.Fail(c, constant.CodeAccountInvalidParams)
		return
	}
	if req.Amount <= 0 {
		utils.Fail(c, constant.CodeAccountInvalidAmount)
		return
	}
	resp, err := h.svc.Transfer(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountTransferSuccess, resp)
}

func (h *AccountHandler) Transactions(c *gin.Context) {
	var req dto.ListTransactionReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Fail(c, constant.CodeAccountInvalidParams)
		return
	}
	res, err := h.svc.Transactions(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAccountTxListSuccess, res)
}

func bindAmount(c *gin.Context) (dto.AmountReq, bool) {
	var req dto.AmountReq
	if err := c.ShouldBindJSON(&req); err != nil || req.AccountID == "" {
		utils.Fail(c, constant.CodeAccountInvalidParams)
		return req, false
	}
	if req.Amount <= 0 {
		utils.Fail(c, constant.CodeAccountInvalidAmount)
		return req, false
	}
	return req, true
}

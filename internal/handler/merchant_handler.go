package handler

import (
	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/service"
	"virtual-payment-api/internal/utils"
)

type MerchantHandler struct {
	svc *service.MerchantService
}

func NewMerchantHandler() *MerchantHandler {
	return &MerchantHandler{svc: service.NewMerchantService()}
}

// Create 商户注册，唯一一次返回私钥
func (h *MerchantHandler) Create(c *gin.Context) {
	var req dto.CreateMerchantReq
	if err := c.ShouldBindJSON(&req); err != nil || req.MerchantName == "" {
		utils.Fail(c, constant.CodeMerchantInvalidParams)
		return
	}
	data, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeMerchantCreateSuccess, data)
}

// Info 查询当前商户（签名信封确定身份）
func (h *MerchantHandler) Info(c *gin.Context) {
	m := merchantFrom(c)
	vo, err := h.svc.Get(c.Request.Context(), m.MerchantID)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeMerchantGetSuccess, vo)
}

func (h *MerchantHandler) Update(c *gin.Context) {
	m := merchantFrom(c)
	var req dto.UpdateMerchantReq
	if err := c.ShouldBindJSON(&req); err != nil || req.MerchantName == "" {
		utils.Fail(c, constant.CodeMerchantInvalidParams)
		return
	}
	vo, err := h.svc.Update(c.Request.Context(), m.MerchantID, req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeMerchantUpdateSuccess, vo)
}

// RegenerateKeys 轮换密钥，旧密钥立即不可用
func (h *MerchantHandler) RegenerateKeys(c *gin.Context) {
	m := merchantFrom(c)
	data, err := h.svc.RegenerateKeys(c.Request.Context(), m.MerchantID)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeMerchantKeySuccess, data)
}

func (h *MerchantHandler) Search(c *gin.Context) {
	var req dto.SearchMerchantReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Fail(c, constant.CodeMerchantInvalidParams)
		return
	}
	res, err := h.svc.Search(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeMerchantSearchSuccess, res)
}

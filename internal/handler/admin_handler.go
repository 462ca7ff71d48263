package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/service"
	"virtual-payment-api/internal/utils"
)

type AdminHandler struct {
	adminSvc *service.AdminService
	logSvc   *service.LogService
}

func NewAdminHandler(adminSvc *service.AdminService, logSvc *service.LogService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, logSvc: logSvc}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailWithData(c, constant.CodeAdminInvalidParams, gin.H{"detail": utils.ValidationMsg(err)})
		return
	}
	resp, err := h.adminSvc.Login(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAdminLoginSuccess, resp)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailWithData(c, constant.CodeAdminInvalidParams, gin.H{"detail": utils.ValidationMsg(err)})
		return
	}
	vo, err := h.adminSvc.Create(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAdminCreateSuccess, vo)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.Fail(c, constant.CodeAdminInvalidParams)
		return
	}
	res, err := h.adminSvc.List(c.Request.Context(), page)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeAdminListSuccess, res)
}

func (h *AdminHandler) ListLogs(c *gin.Context) {
	var req dto.ListLogReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Fail(c, constant.CodeAdminInvalidParams)
		return
	}
	res, err := h.logSvc.List(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, constant.CodeLogListSuccess, res)
}

// ExportLogs CSV 下载，不走统一信封
func (h *AdminHandler) ExportLogs(c *gin.Context) {
	var req dto.ListLogReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Fail(c, constant.CodeAdminInvalidParams)
		return
	}
	filename := fmt.Sprintf("operation_logs_%s.csv", time.Now().UTC().Format("20060102150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := h.logSvc.ExportCSV(c.Request.Context(), req, c.Writer); err != nil {
		_ = c.Error(err)
	}
}

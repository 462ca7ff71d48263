package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"virtual-payment-api/internal/dao"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/idgen"
	"virtual-payment-api/internal/logger"
	"virtual-payment-api/internal/model"
)

type LogService struct {
	logDao *dao.OperationLogDao
}

func NewLogService() *LogService {
	return &LogService{logDao: dao.NewOperationLogDao()}
}

// Record 异步落一条审计行，失败只记日志不影响请求
func (s *LogService) Record(username, method, path, ip string, status int, latency time.Duration) {
	row := &model.OperationLog{
		ID:        idgen.Next(),
		Username:  username,
		Method:    method,
		Path:      path,
		Status:    status,
		IP:        ip,
		LatencyMs: latency.Milliseconds(),
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Errorf("operation log panic: %v", r)
			}
		}()
		if err := s.logDao.Insert(row); err != nil {
			logger.L().Errorf("operation log insert failed: %v", err)
		}
	}()
}

func (s *LogService) List(ctx context.Context, req dto.ListLogReq) (*dto.PagedResult, error) {
	req.Normalize()
	rows, total, err := s.logDao.List(req)
	if err != nil {
		return nil, err
	}
	res := dto.NewPagedResult(total, req.Page, req.PageSize, rows)
	return &res, nil
}

// ExportCSV 按查询条件把审计日志写成 CSV
func (s *LogService) ExportCSV(ctx context.Context, req dto.ListLogReq, w io.Writer) error {
	rows, err := s.logDao.ListAll(req)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "username", "method", "path", "status", "ip", "latency_ms", "create_time"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.FormatUint(r.ID, 10),
			r.Username,
			r.Method,
			r.Path,
			strconv.Itoa(r.Status),
			r.IP,
			strconv.FormatInt(r.LatencyMs, 10),
			r.CreateTime.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/dao"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/idgen"
	"virtual-payment-api/internal/metrics"
	"virtual-payment-api/internal/model"
)

// AccountService 账本核心：余额变更与流水写入永远同属一个事务，
// 多账户操作按 account_id 升序加锁。
type AccountService struct {
	accountDao *dao.AccountDao
	txDao      *dao.TransactionDao
}

func NewAccountService() *AccountService {
	return &AccountService{
		accountDao: dao.NewAccountDao(),
		txDao:      dao.NewTransactionDao(),
	}
}

func (s *AccountService) Create(ctx context.Context) (*dto.AccountVO, error) {
	a := &model.Account{AccountID: idgen.AccountID()}
	if err := s.accountDao.Insert(a); err != nil {
		return nil, err
	}
	return accountVO(a), nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*dto.AccountVO, error) {
	a, err := s.accountDao.Get(id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeAccountNotFound)
		}
		return nil, err
	}
	return accountVO(a), nil
}

// Recharge 充值：balance += amount，并记 SYSTEM → account 的 type=3 流水
func (s *AccountService) Recharge(ctx context.Context, accountID string, amount int64) (*dto.MutationResp, error) {
	if amount <= 0 {
		return nil, constant.NewError(constant.CodeAccountInvalidAmount)
	}
	var resp *dto.MutationResp
	err := dal.MainDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := s.accountDao.Lock(tx, accountID)
		if err != nil {
			return notFoundOr(err, constant.CodeAccountNotFound)
		}
		if err := s.accountDao.UpdateBalances(tx, a.AccountID, a.Balance+amount, a.FrozenBalance); err != nil {
			return err
		}
		row := &model.Transaction{
			TransactionID: idgen.TransactionID(),
			OrderID:       "RECHARGE" + idgen.OrderID(),
			FromAccount:   model.SystemAccount,
			ToAccount:     a.AccountID,
			Amount:        amount,
			Type:          model.TxTypeRecharge,
		}
		if err := s.txDao.Insert(tx, row); err != nil {
			return err
		}
		resp = &dto.MutationResp{
			AccountID:     a.AccountID,
			TransactionID: row.TransactionID,
			Amount:        amount,
			Balance:       a.Balance + amount,
			FrozenBalance: a.FrozenBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.LedgerOps.WithLabelValues("recharge").Inc()
	return resp, nil
}

// Withdraw 提现：要求 balance ≥ amount，记 account → SYSTEM 的 type=4 流水
func (s *AccountService) Withdraw(ctx context.Context, accountID string, amount int64) (*dto.MutationResp, error) {
	if amount <= 0 {
		return nil, constant.NewError(constant.CodeAccountInvalidAmount)
	}
	var resp *dto.MutationResp
	err := dal.MainDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := s.accountDao.Lock(tx, accountID)
		if err != nil {
			return notFoundOr(err, constant.CodeAccountNotFound)
		}
		if a.Balance < amount {
			return constant.NewError(constant.CodeInsufficientBalance)
		}
		if err := s.accountDao.UpdateBalances(tx, a.AccountID, a.Balance-amount, a.FrozenBalance); err != nil {
			return err
		}
		row := &model.Transaction{
			TransactionID: idgen.TransactionID(),
			OrderID:       "WITHDRAW" + idgen.OrderID(),
			FromAccount:   a.AccountID,
			ToAccount:     model.SystemAccount,
			Amount:        amount,
			Type:          model.TxTypeWithdraw,
		}
		if err := s.txDao.Insert(tx, row); err != nil {
			return err
		}
		resp = &dto.MutationResp{
			AccountID:     a.AccountID,
			TransactionID: row.TransactionID,
			Amount:        amount,
			Balance:       a.Balance - amount,
			FrozenBalance: a.FrozenBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.LedgerOps.WithLabelValues("withdraw").Inc()
	return resp, nil
}

// Freeze 冻结：可用转冻结，不记流水
func (s *AccountService) Freeze(ctx context.Context, accountID string, amount int64) (*dto.MutationResp, error) {
	return s.moveFrozen(ctx, accountID, amount, true)
}

// Unfreeze 解冻：冻结转可用，不记流水
func (s *AccountService) Unfreeze(ctx context.Context, accountID string, amount int64) (*dto.MutationResp, error) {
	return s.moveFrozen(ctx, accountID, amount, false)
}

func (s *AccountService) moveFrozen(ctx context.Context, accountID string, amount int64, freeze bool) (*dto.MutationResp, error) {
	if amount <= 0 {
		return nil, constant.NewError(constant.CodeAccountInvalidAmount)
	}
	var resp *dto.MutationResp
	err := dal.MainDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := s.accountDao.Lock(tx, accountID)
		if err != nil {
			return notFoundOr(err, constant.CodeAccountNotFound)
		}
		balance, frozen := a.Balance, a.FrozenBalance
		if freeze {
			if balance < amount {
				return constant.NewError(constant.CodeInsufficientBalance)
			}
			balance -= amount
			frozen += amount
		} else {
			if frozen < amount {
				return constant.NewError(constant.CodeInsufficientFrozen)
			}
			frozen -= amount
			balance += amount
		}
		if err := s.accountDao.UpdateBalances(tx, a.AccountID, balance, frozen); err != nil {
			return err
		}
		resp = &dto.MutationResp{
			AccountID:     a.AccountID,
			Amount:        amount,
			Balance:       balance,
			FrozenBalance: frozen,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if freeze {
		metrics.LedgerOps.WithLabelValues("freeze").Inc()
	} else {
		metrics.LedgerOps.WithLabelValues("unfreeze").Inc()
	}
	return resp, nil
}

// Transfer 独立转账入口（开放的 /accounts/transfer）
func (s *AccountService) Transfer(ctx context.Context, req dto.TransferReq) (*dto.TransferResp, error) {
	var row *model.Transaction
	err := dal.MainDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = s.TransferTx(tx, req.FromAccount, req.ToAccount, req.Amount, req.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.LedgerOps.WithLabelValues("transfer").Inc()
	return &dto.TransferResp{
		FromAccountID: req.FromAccount,
		ToAccountID:   req.ToAccount,
		TransactionID: row.TransactionID,
		Amount:        req.Amount,
	}, nil
}

// TransferTx 转账核心，在调用方事务内执行（订单支付复用）。
// 两侧按 account_id 升序加锁；orderID 为空时生成 TRANSFER 合成订单号。
func (s *AccountService) TransferTx(tx *gorm.DB, from, to string, amount int64, orderID string) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, constant.NewError(constant.CodeAccountInvalidAmount)
	}
	if from == to {
		return nil, constant.NewError(constant.CodeSelfTransfer)
	}

	first, second := from, to
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*model.Account, 2)
	for _, id := range []string{first, second} {
		a, err := s.accountDao.Lock(tx, id)
		if err != nil {
			if dao.IsNotFound(err) {
				if id == from {
					return nil, constant.NewError(constant.CodePayerNotFound)
				}
				return nil, constant.NewError(constant.CodeReceiverNotFound)
			}
			return nil, err
		}
		locked[id] = a
	}

	src, dst := locked[from], locked[to]
	if src.Balance < amount {
		return nil, constant.NewError(constant.CodeInsufficientBalance)
	}
	if err := s.accountDao.UpdateBalances(tx, src.AccountID, src.Balance-amount, src.FrozenBalance); err != nil {
		return nil, err
	}
	if err := s.accountDao.UpdateBalances(tx, dst.AccountID, dst.Balance+amount, dst.FrozenBalance); err != nil {
		return nil, err
	}

	if orderID == "" {
		orderID = "TRANSFER" + idgen.OrderID()
	}
	row := &model.Transaction{
		TransactionID: idgen.TransactionID(),
		OrderID:       orderID,
		FromAccount:   from,
		ToAccount:     to,
		Amount:        amount,
		Type:          model.TxTypePayment,
	}
	if err := s.txDao.Insert(tx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Transactions 单账户流水分页，标注收支方向
func (s *AccountService) Transactions(ctx context.Context, accountID string, req dto.ListTransactionReq) (*dto.PagedResult, error) {
	req.Normalize()
	if _, err := s.accountDao.Get(accountID); err != nil {
		return nil, notFoundOr(err, constant.CodeAccountNotFound)
	}
	rows, total, err := s.txDao.ListByAccount(accountID, req)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.TransactionVO, 0, len(rows))
	for _, t := range rows {
		isIncome := t.ToAccount == accountID
		sign := "-"
		if isIncome {
			sign = "+"
		}
		vos = append(vos, dto.TransactionVO{
			TransactionID: t.TransactionID,
			OrderID:       t.OrderID,
			FromAccount:   t.FromAccount,
			ToAccount:     t.ToAccount,
			Amount:        t.Amount,
			Type:          t.Type,
			IsIncome:      isIncome,
			AmountDisplay: fmt.Sprintf("%s%d", sign, t.Amount),
			CreateTime:    t.CreateTime,
		})
	}
	res := dto.NewPagedResult(total, req.Page, req.PageSize, vos)
	return &res, nil
}

func accountVO(a *model.Account) *dto.AccountVO {
	return &dto.AccountVO{
		AccountID:     a.AccountID,
		Balance:       a.Balance,
		FrozenBalance: a.FrozenBalance,
		CreateTime:    a.CreateTime,
	}
}

func notFoundOr(err error, code string) error {
	if dao.IsNotFound(err) {
		return constant.NewError(code)
	}
	return err
}

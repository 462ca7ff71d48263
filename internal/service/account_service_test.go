package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/model"
)

func TestRechargeAndWithdraw(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	id := fundedAccount(t, svc, 0)

	resp, err := svc.Recharge(context.Background(), id, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), resp.Balance)
	assert.NotEmpty(t, resp.TransactionID)

	resp, err = svc.Withdraw(context.Background(), id, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(600), resp.Balance)

	vo, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(600), vo.Balance)
	assert.Equal(t, int64(0), vo.FrozenBalance)
}

func TestWithdrawInsufficient(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	id := fundedAccount(t, svc, 100)

	_, err := svc.Withdraw(context.Background(), id, 101)
	assert.Equal(t, constant.CodeInsufficientBalance, constant.CodeOf(err))

	// 失败后余额不变
	vo, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(100), vo.Balance)
}

func TestMutationRejectsNonPositiveAmount(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	id := fundedAccount(t, svc, 100)

	for _, amount := range []int64{0, -1} {
		_, err := svc.Recharge(context.Background(), id, amount)
		assert.Equal(t, constant.CodeAccountInvalidAmount, constant.CodeOf(err))
		_, err = svc.Withdraw(context.Background(), id, amount)
		assert.Equal(t, constant.CodeAccountInvalidAmount, constant.CodeOf(err))
	}
}

func TestAccountNotFound(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()

	_, err := svc.Get(context.Background(), "A_missing")
	assert.Equal(t, constant.CodeAccountNotFound, constant.CodeOf(err))
	_, err = svc.Recharge(context.Background(), "A_missing", 100)
	assert.Equal(t, constant.CodeAccountNotFound, constant.CodeOf(err))
}

func TestTransferConservation(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	a := fundedAccount(t, svc, 1000)
	b := fundedAccount(t, svc, 0)

	resp, err := svc.Transfer(context.Background(), dto.TransferReq{
		FromAccount: a, ToAccount: b, Amount: 300,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TransactionID)

	va, _ := svc.Get(context.Background(), a)
	vb, _ := svc.Get(context.Background(), b)
	assert.Equal(t, int64(700), va.Balance)
	assert.Equal(t, int64(300), vb.Balance)
	assert.Equal(t, int64(1000), va.Balance+vb.Balance)
}

func TestTransferFailures(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	a := fundedAccount(t, svc, 100)
	b := fundedAccount(t, svc, 0)

	_, err := svc.Transfer(context.Background(), dto.TransferReq{FromAccount: a, ToAccount: b, Amount: 101})
	assert.Equal(t, constant.CodeInsufficientBalance, constant.CodeOf(err))

	_, err = svc.Transfer(context.Background(), dto.TransferReq{FromAccount: a, ToAccount: a, Amount: 10})
	assert.Equal(t, constant.CodeSelfTransfer, constant.CodeOf(err))

	_, err = svc.Transfer(context.Background(), dto.TransferReq{FromAccount: "A_missing", ToAccount: b, Amount: 10})
	assert.Equal(t, constant.CodePayerNotFound, constant.CodeOf(err))

	_, err = svc.Transfer(context.Background(), dto.TransferReq{FromAccount: a, ToAccount: "A_missing", Amount: 10})
	assert.Equal(t, constant.CodeReceiverNotFound, constant.CodeOf(err))

	// 全部失败，余额无变化
	va, _ := svc.Get(context.Background(), a)
	vb, _ := svc.Get(context.Background(), b)
	assert.Equal(t, int64(100), va.Balance)
	assert.Equal(t, int64(0), vb.Balance)
}

func TestConcurrentTransferSingleWinner(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	a := fundedAccount(t, svc, 100)
	b := fundedAccount(t, svc, 0)

	// 余额只够一笔，两笔并发转账恰好成功一笔
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.Transfer(context.Background(), dto.TransferReq{
				FromAccount: a, ToAccount: b, Amount: 100,
			})
			errs <- err
		}()
	}
	var wins int
	for i := 0; i < 2; i++ {
		if err := <-errs; err == nil {
			wins++
		} else {
			assert.Equal(t, constant.CodeInsufficientBalance, constant.CodeOf(err))
		}
	}
	assert.Equal(t, 1, wins)

	// 资金守恒且不为负
	va, _ := svc.Get(context.Background(), a)
	vb, _ := svc.Get(context.Background(), b)
	assert.Equal(t, int64(0), va.Balance)
	assert.Equal(t, int64(100), vb.Balance)
}

func TestFreezeUnfreeze(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	id := fundedAccount(t, svc, 500)

	resp, err := svc.Freeze(context.Background(), id, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(300), resp.Balance)
	assert.Equal(t, int64(200), resp.FrozenBalance)

	_, err = svc.Freeze(context.Background(), id, 400)
	assert.Equal(t, constant.CodeInsufficientBalance, constant.CodeOf(err))

	_, err = svc.Unfreeze(context.Background(), id, 300)
	assert.Equal(t, constant.CodeInsufficientFrozen, constant.CodeOf(err))

	resp, err = svc.Unfreeze(context.Background(), id, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.Balance)
	assert.Equal(t, int64(0), resp.FrozenBalance)
}

func TestTransactionsView(t *testing.T) {
	setupDB(t)
	svc := NewAccountService()
	a := fundedAccount(t, svc, 1000)
	b := fundedAccount(t, svc, 0)

	_, err := svc.Transfer(context.Background(), dto.TransferReq{FromAccount: a, ToAccount: b, Amount: 300})
	require.NoError(t, err)

	res, err := svc.Transactions(context.Background(), b, dto.ListTransactionReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)

	rows := res.Data.([]dto.TransactionVO)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsIncome)
	assert.Equal(t, "+300", rows[0].AmountDisplay)
	assert.Equal(t, model.TxTypePayment, rows[0].Type)

	// 付款侧视角同一行是支出
	res, err = svc.Transactions(context.Background(), a, dto.ListTransactionReq{})
	require.NoError(t, err)
	rows = res.Data.([]dto.TransactionVO)
	assert.Equal(t, int64(2), res.Total) // 充值 + 转账
	for _, r := range rows {
		if r.Type == model.TxTypePayment {
			assert.False(t, r.IsIncome)
			assert.Equal(t, "-300", r.AmountDisplay)
		}
	}
}

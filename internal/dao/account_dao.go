package dao

import (
	"gorm.io/gorm"

	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/model"
)

type AccountDao struct{}

func NewAccountDao() *AccountDao { return &AccountDao{} }

func (d *AccountDao) Insert(a *model.Account) error {
	return dal.MainDB.Create(a).Error
}

func (d *AccountDao) Get(id string) (*model.Account, error) {
	var a model.Account
	if err := dal.MainDB.Where("account_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Lock 在事务内对单个账户加行锁
func (d *AccountDao) Lock(tx *gorm.DB, id string) (*model.Account, error) {
	var a model.Account
	if err := forUpdate(tx).Where("account_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateBalances 写回余额，调用方必须已持有该行的锁
func (d *AccountDao) UpdateBalances(tx *gorm.DB, id string, balance, frozen int64) error {
	return tx.Model(&model.Account{}).Where("account_id = ?", id).
		Updates(map[string]interface{}{"balance": balance, "frozen_balance": frozen}).Error
}

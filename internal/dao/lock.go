package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate 行锁。sqlite（仅测试用）不支持 FOR UPDATE，其写入本身串行。
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

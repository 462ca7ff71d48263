package dal

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/model"
)

var MainDB *gorm.DB

func InitMainDB() {
	c := config.C.Mysql
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("connect main db failed: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)
	MainDB = db

	if err := Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}

// Migrate 建表（等价于原始仓库的 initdb 脚本）
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Merchant{},
		&model.Account{},
		&model.Order{},
		&model.Transaction{},
		&model.AdminUser{},
		&model.OperationLog{},
	)
}

package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type SecurityCfg struct {
	// NonceTTLSeconds is both the timestamp freshness window and the
	// replay-key lifetime.
	NonceTTLSeconds    int    `mapstructure:"nonceTtlSeconds"`
	RateLimitPerMinute int    `mapstructure:"rateLimitPerMinute"`
	JWTSecret          string `mapstructure:"jwtSecret"`
	JWTExpireHours     int    `mapstructure:"jwtExpireHours"`
}
type OrderCfg struct {
	// MerchantOrderScope controls merchant_order_id uniqueness:
	// "merchant" (per merchant, the default) or "global" (legacy).
	MerchantOrderScope string `mapstructure:"merchantOrderScope"`
}

type Root struct {
	Server   ServerCfg   `mapstructure:"server"`
	Mysql    MysqlCfg    `mapstructure:"mysql"`
	Redis    RedisCfg    `mapstructure:"redis"`
	RabbitMQ RabbitCfg   `mapstructure:"rabbitmq"`
	Security SecurityCfg `mapstructure:"security"`
	Order    OrderCfg    `mapstructure:"order"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()
	InitFrom("config/config." + *env + ".yaml")
}

// InitFrom loads the given yaml file and applies environment overrides.
// A missing file is tolerated so a container can run on env vars alone.
func InitFrom(path string) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnvs(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file %s not loaded: %v (falling back to env)", path, err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	applyDefaults()
}

func bindEnvs(v *viper.Viper) {
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("mysql.host", "MYSQL_HOST")
	_ = v.BindEnv("mysql.port", "MYSQL_PORT")
	_ = v.BindEnv("mysql.database", "MYSQL_DATABASE")
	_ = v.BindEnv("mysql.username", "MYSQL_USERNAME")
	_ = v.BindEnv("mysql.password", "MYSQL_PASSWORD")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("rabbitmq.url", "RABBITMQ_URL")
	_ = v.BindEnv("security.nonceTtlSeconds", "NONCE_TTL_SECONDS")
	_ = v.BindEnv("security.rateLimitPerMinute", "RATE_LIMIT_PER_MINUTE")
	_ = v.BindEnv("security.jwtSecret", "JWT_SECRET")
	_ = v.BindEnv("order.merchantOrderScope", "MERCHANT_ORDER_SCOPE")
}

func applyDefaults() {
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.Mysql.Charset == "" {
		C.Mysql.Charset = "utf8mb4"
	}
	if C.Mysql.MaxIdleConns <= 0 {
		C.Mysql.MaxIdleConns = 10
	}
	if C.Mysql.MaxOpenConns <= 0 {
		C.Mysql.MaxOpenConns = 100
	}
	if C.Security.NonceTTLSeconds <= 0 {
		C.Security.NonceTTLSeconds = 300
	}
	if C.Security.RateLimitPerMinute <= 0 {
		C.Security.RateLimitPerMinute = 200
	}
	if C.Security.JWTExpireHours <= 0 {
		C.Security.JWTExpireHours = 24
	}
	if C.Security.JWTSecret == "" {
		C.Security.JWTSecret = "dev-only-secret"
	}
	if C.Order.MerchantOrderScope != "global" {
		C.Order.MerchantOrderScope = "merchant"
	}
}

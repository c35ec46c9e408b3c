package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
		MaxBodyBytes    int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`
		LoginRedirect   string `env:"LOGIN_REDIRECT" envDefault:"/dashboard"`
	} `envPrefix:"SERVER_"`
	Grid struct {
		StartTime     string  `env:"START_TIME" envDefault:"07:00"`
		EndTime       string  `env:"END_TIME" envDefault:"22:00"`
		SlotMinutes   int32   `env:"SLOT_MINUTES" envDefault:"30"`
		SlotPolicy    string  `env:"SLOT_POLICY" envDefault:"clip"`
		HourHeightPx  float64 `env:"HOUR_HEIGHT_PX" envDefault:"100"`
		ColumnWidthPx float64 `env:"COLUMN_WIDTH_PX" envDefault:"220"`
		Timezone      string  `env:"TIMEZONE" envDefault:"America/Sao_Paulo"` // 只用于确定 "今天" 是哪一天
	} `envPrefix:"GRID_"`
	Redis struct {
		Enabled          bool   `env:"ENABLED" envDefault:"false"`
		Host             string `env:"HOST" envDefault:"localhost"`
		Port             int    `env:"PORT" envDefault:"6379"`
		Password         string `env:"PASSWORD"`
		DB               int    `env:"DB" envDefault:"0"`
		ConnectTimeout   int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		LayoutCacheTTL   int    `env:"LAYOUT_CACHE_TTL" envDefault:"300"` // 秒
		OperationTimeout int    `env:"OPERATION_TIMEOUT" envDefault:"2"`
	} `envPrefix:"REDIS_"`
	Seed struct {
		Enabled bool `env:"ENABLED" envDefault:"true"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	// 本地开发时可以把变量写在 .env 中，文件不存在时忽略，已有的环境变量不会被覆盖
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}

package config

import (
	"time"

	"fortuna_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type SweeperConfig interface {
	Interval() time.Duration
}

// CatalogConfig - статический каталог кейсов и VIP опций, загружается один раз при старте
type CatalogConfig interface {
	Cases() []model.Case
	VIPOptions() []model.VIPOption
}

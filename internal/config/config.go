package config

import (
	"time"

	"github.com/joho/godotenv"

	"yambo_backend/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// RulesConfig describes the table ruleset: columns and the upper bonus.
type RulesConfig interface {
	Columns() []model.ColumnRules
	BonusThreshold() int
	BonusPoints() int
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

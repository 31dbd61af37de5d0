package config

import (
	"go.uber.org/zap"
)

// Logger is replaced by InitLogger; until then it discards everything.
var Logger = zap.NewNop()

// InitLogger builds a production logger for APP_ENV=production and a development one otherwise.
func InitLogger(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == EnvProduction {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Logger = l
	Logger.Info("logger initialized", zap.String("env", env))
	return nil
}

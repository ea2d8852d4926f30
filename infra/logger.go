package infra

import (
	"go.uber.org/zap"
)

// NewLogger returns a JSON logger in production and a console logger elsewhere.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

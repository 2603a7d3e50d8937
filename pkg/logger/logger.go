// Package logger provides the structured logger for the refdata service.
package logger

import "go.uber.org/zap"

// New builds a zap logger for the given environment. Production gets
// JSON output, everything else gets the development console encoder.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

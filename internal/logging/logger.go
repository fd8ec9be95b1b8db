package logging

import (
	"go.uber.org/zap"
)

// NewLogger builds the application logger. Development mode switches to the
// human-readable console encoder.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

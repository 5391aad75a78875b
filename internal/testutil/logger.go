package testutil

import (
	"io"

	"github.com/thefueley/sonic-poc/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}

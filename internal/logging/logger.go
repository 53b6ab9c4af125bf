package logging

import (
	"strings"

	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/config"
)

// New builds the process logger. The dev environment gets a human readable
// console logger with debug output, everything else JSON at info level.
func New(app config.App) *zap.SugaredLogger {
	if app.IsDevEnvironment() {
		return zap.Must(zap.NewDevelopment()).Sugar()
	}
	return zap.Must(zap.NewProduction()).Sugar()
}

// GormWriter lets gorm's logger.New print through zap.
type GormWriter struct {
	Logger *zap.SugaredLogger
}

func (w GormWriter) Printf(format string, args ...interface{}) {
	w.Logger.Debugf(strings.TrimSpace(format), args...)
}

// Package stdlogger adapts zerolog to the printf style logger interfaces
// expected by libraries, gorm's logger.Writer among them.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards printf style calls to zerolog.
type Logger struct {
	logger *zerolog.Logger
}

// New returns a Logger writing to the global zerolog logger as it is at
// call time, so logger.Init may run before or after New.
func New() *Logger {
	return &Logger{}
}

// NewWith returns a Logger writing to l.
func NewWith(l zerolog.Logger) *Logger {
	return &Logger{logger: &l}
}

func (l *Logger) zl() *zerolog.Logger {
	if l.logger != nil {
		return l.logger
	}

	return &log.Logger
}

// Printf logs at info level. gorm prefixes its messages with a newline.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.zl().Info().Msgf(strings.TrimLeft(format, "\n"), args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zl().Debug().Msgf(format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zl().Info().Msgf(format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.zl().Warn().Msgf(format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zl().Error().Msgf(format, args...)
}

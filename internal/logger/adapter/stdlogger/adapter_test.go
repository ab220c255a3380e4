package stdlogger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/linkshelf/linkshelf/internal/logger/adapter/stdlogger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	testLogger := stdlogger.NewWith(zerolog.New(&buf).Level(zerolog.InfoLevel))

	testLogger.Debugf("stdlogger %s", "test debug")
	testLogger.Infof("stdlogger %s", "test info")
	testLogger.Warningf("stdlogger %s", "test warning")
	testLogger.Errorf("stdlogger %s", "test error")

	out := buf.String()
	assert.NotContains(t, out, "test debug")
	assert.Contains(t, out, `"level":"info","message":"stdlogger test info"`)
	assert.Contains(t, out, `"level":"warn","message":"stdlogger test warning"`)
	assert.Contains(t, out, `"level":"error","message":"stdlogger test error"`)
}

func TestPrintfTrimsLeadingNewline(t *testing.T) {
	var buf bytes.Buffer

	stdlogger.NewWith(zerolog.New(&buf)).Printf("\n%s slow query", "db.go:42")

	assert.Contains(t, buf.String(), `"message":"db.go:42 slow query"`)
}

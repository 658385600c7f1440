package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bhoriuchi/gql/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriterLogFunc(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogWrapper(logger.NewWriterLogFunc(&buf, logger.DebugLevel), nil)

	log.WithField("operation", "query").WithError(errors.New("boom")).Debugf("operation %s", "failed")
	assert.Equal(t, "level=\"debug\" msg=\"operation failed\" error=\"boom\" operation=\"query\"\n", buf.String())

	buf.Reset()
	log.Tracef("dropped")
	assert.Empty(t, buf.String())
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent := logger.NewNoopLogger()
	child := parent.WithField("request_id", "abc")

	assert.Empty(t, parent.Fields)
	assert.Equal(t, "abc", child.Fields["request_id"])
}

func TestParseLevel(t *testing.T) {
	level, err := logger.ParseLevel("TRACE")
	require.NoError(t, err)
	assert.Equal(t, logger.TraceLevel, level)

	_, err = logger.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestZapLogFunc(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewLogWrapper(logger.NewZapLogFunc(zap.New(core)), nil)

	log.Debugf("below threshold")
	log.WithField("operation", "mutation").Errorf("failed to execute operation")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "failed to execute operation", entry.Message)
	assert.Equal(t, "mutation", entry.ContextMap()["operation"])
}

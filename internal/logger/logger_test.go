package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error"}

	for _, format := range []string{FormatJSON, FormatConsole} {
		for _, lvl := range levels {
			t.Run(format+"/"+lvl, func(t *testing.T) {
				err := Initialize(lvl, format)
				assert.NoError(t, err, "expected no error for level %s", lvl)
				assert.IsType(t, &zap.SugaredLogger{}, Log)

				assert.NotPanics(t, func() {
					Log.Infow("test log", "level", lvl)
				})
			})
		}
	}
}

func TestInitialize_LevelIsApplied(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	for _, format := range []string{FormatJSON, FormatConsole} {
		err := Initialize("warn", format)
		assert.NoError(t, err)
		assert.False(t, Log.Desugar().Core().Enabled(zap.InfoLevel), format)
		assert.True(t, Log.Desugar().Core().Enabled(zap.ErrorLevel), format)
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level", FormatJSON)
	assert.Error(t, err)
	assert.Same(t, originalLog, Log, "logger must not be replaced on error")
}

func TestInitialize_InvalidFormat(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("info", "xml")
	assert.EqualError(t, err, `unknown log format "xml"`)
	assert.Same(t, originalLog, Log)
}

func TestSync_NopLogger(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	Log = zap.NewNop().Sugar()
	assert.NotPanics(t, Sync)
}

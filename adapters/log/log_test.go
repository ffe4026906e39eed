package log

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type appealForm struct {
	Name        string `json:"name"`
	ClaimNumber string `json:"claim_number"`
	Company     string `json:"company"`
}

func TestAnyMasksFormFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("form updated", l.Any("form", appealForm{Name: "Jane Doe", ClaimNumber: "ABC123", Company: "Acme"}))

	require.Equal(t, 1, logs.Len())
	form := logs.All()[0].ContextMap()["form"].(map[string]any)
	assert.Equal(t, "****", form["name"])
	assert.Equal(t, "****", form["claim_number"])
	assert.Equal(t, "Acme", form["company"])
}

func TestWithKeepsSanitizer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(String("component", "test"))

	l.Warn("row", l.Any("row", map[string]string{"name": "Acme", "email": "a@b.co"}))

	row := logs.All()[0].ContextMap()["row"].(map[string]any)
	assert.Equal(t, "****", row["email"])
}

func TestPackageAnyMasksFormFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("draft", Any("draft", appealForm{Name: "Jane Doe", Company: "Acme"}), WithField("to", "claims@acme.example"))

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "****", ctx["draft"].(map[string]any)["name"])
	assert.Equal(t, "****", ctx["to"])
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := NewLogger(NewLoggerConfig(true, WithLogFile(path, 1), WithServiceName("undeniable-test")))
	require.NoError(t, err)

	l.Info("hello")
	assert.NoError(t, l.closeLog())
	assert.FileExists(t, path)
}

func TestWithLevelOverridesEnvironment(t *testing.T) {
	cfg := NewLoggerConfig(false, WithLevel(" WARN "))
	assert.Equal(t, WarnLevel, cfg.Level)
	assert.Equal(t, zapcore.WarnLevel, ZapLevel(cfg.Level))
}

func TestWithEncoderTailLengthBounds(t *testing.T) {
	assert.Equal(t, 0, NewLoggerConfig(false, WithEncoderTailLength(2)).EncoderTailLength)
	assert.Equal(t, 7, NewLoggerConfig(false, WithEncoderTailLength(12)).EncoderTailLength)
}

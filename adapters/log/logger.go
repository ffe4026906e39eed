package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/undeniable-app/undeniable/utils/helpers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log struct holds the zap Logger instance.
type Log struct {
	*zap.Logger
	mu        sync.Mutex   // Mutex for thread-safe logging
	closeLog  func() error // Function to gracefully shut down the logger
	sanitizer *helpers.Sanitizer
}

// NewBasicLogger creates a stdout-only logger with the default configuration,
// for CLI commands and tests.
func NewBasicLogger(isProd bool) *Log {
	basicLogger, _ := NewLogger(NewLoggerConfig(isProd))
	return basicLogger
}

// NewFromZap wraps an existing zap logger. The default sanitizer applies.
func NewFromZap(l *zap.Logger) *Log {
	return &Log{Logger: l, sanitizer: helpers.DefaultSanitizer}
}

// NewLogger creates a new Log instance with the specified log level and options.
// Values passed through l.Any are sanitized before they reach any core.
func NewLogger(cfg *LoggerConfig) (*Log, error) {

	// ✅ 1. Set the log level
	atomicLevel := zap.NewAtomicLevel()
	if cfg.IsProd {
		atomicLevel.SetLevel(zapcore.InfoLevel)
	} else {
		atomicLevel.SetLevel(zapcore.DebugLevel) // Debug mode for development
	}
	if cfg.Level != "" {
		atomicLevel.SetLevel(ZapLevel(cfg.Level))
	}

	// ✅ 2. Configure encoder settings
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "log",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		EncodeLevel: func() zapcore.LevelEncoder {
			if cfg.IsProd {
				return zapcore.CapitalLevelEncoder
			}
			return zapcore.CapitalColorLevelEncoder
		}(),
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   helpers.TailCallerEncoder(cfg.EncoderTailLength),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	defaultOptions := []zap.Option{
		zap.Fields(
			zap.String("environment", cfg.Environment),
			zap.String("service", cfg.ServiceName),
		),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}
	options := append(defaultOptions, cfg.ZapOptions...)

	// ✅ 3. Select the encoder based on mode
	var encoder zapcore.Encoder
	if cfg.IsProd {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	// ✅ 4. Console core, stdout unless the config names another writer
	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(out), atomicLevel)}

	// ✅ 5. Rotated file core, always JSON
	var closeFunc func() error
	if fileSyncer, closer := getLumberjackLogger(cfg); fileSyncer != nil {
		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), fileSyncer, atomicLevel))
		closeFunc = closer
	}

	// ✅ 6. Every entry is written to every core
	l := zap.New(zapcore.NewTee(cores...), options...)

	return &Log{Logger: l, closeLog: closeFunc, sanitizer: helpers.DefaultSanitizer}, nil
}

// **SafeLog** ensures thread-safe logging.
func (l *Log) SafeLog(level zapcore.Level, msg string, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case zap.DebugLevel:
		l.Logger.Debug(msg, fields...)
	case zap.InfoLevel:
		l.Logger.Info(msg, fields...)
	case zap.WarnLevel:
		l.Logger.Warn(msg, fields...)
	case zap.ErrorLevel:
		l.Logger.Error(msg, fields...)
	case zap.FatalLevel:
		l.Logger.Fatal(msg, fields...)
	}
}

// Debug logs a message at the DebugLevel.
func (l *Log) Debug(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

// Info logs a message at the InfoLevel.
func (l *Log) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

// Warn logs a message at the WarnLevel.
func (l *Log) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

// Error logs a message at the ErrorLevel.
func (l *Log) Error(msg string, fields ...zap.Field) {
	l.Logger.Error(msg, fields...)
}

// Fatal logs a message at the FatalLevel and then exits the program.
func (l *Log) Fatal(msg string, fields ...zap.Field) {
	l.Logger.Fatal(msg, fields...)
}

// With creates a child Log with the specified fields.
func (l *Log) With(fields ...zap.Field) *Log {
	return &Log{Logger: l.Logger.With(fields...), sanitizer: l.sanitizer}
}

// Any returns a zap field with value sanitized (blocked keys masked).
// Use this for any struct or map that may contain form data.
func (l *Log) Any(key string, value any) zap.Field {
	sanitizer := helpers.DefaultSanitizer
	if l != nil && l.sanitizer != nil {
		sanitizer = l.sanitizer
	}
	return zap.Any(key, sanitizer.SanitizeField(key, value))
}

func (l *Log) Printf(level zapcore.Level, msg string, v ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, v...)
	switch level {
	case zap.DebugLevel:
		l.Logger.Debug(formattedMsg)
	case zap.InfoLevel:
		l.Logger.Info(formattedMsg)
	case zap.WarnLevel:
		l.Logger.Warn(formattedMsg)
	case zap.ErrorLevel:
		l.Logger.Error(formattedMsg)
	case zap.FatalLevel:
		l.Logger.Fatal(formattedMsg)
	}
}

// Sync flushes any buffered log entries. Applications should take care to call
// Sync before exiting.
func (l *Log) Sync() error {
	err := l.Logger.Sync()

	if l.closeLog != nil {
		if closeErr := l.closeLog(); closeErr != nil {
			if err != nil {
				return fmt.Errorf("zap sync error: %w; file close error: %v", err, closeErr)
			}
			return closeErr
		}
	}
	return err
}

// getLumberjackLogger returns a WriteSyncer for file logging when a file is
// configured or rotation is switched on through the environment.
func getLumberjackLogger(cfg *LoggerConfig) (zapcore.WriteSyncer, func() error) {
	filename := cfg.File
	if helpers.IsEmpty(filename) {
		if !helpers.GetIsLogRotationEnabled() {
			return nil, nil
		}
		filename = "logs/" + cfg.ServiceName + ".log"
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize, // Max size in MB before rotating
		MaxBackups: 5,       // Max old log files
		MaxAge:     30,      // Max days to retain logs
		Compress:   true,    // Compress rotated files
	}

	return zapcore.AddSync(lumberjackLogger), lumberjackLogger.Close
}

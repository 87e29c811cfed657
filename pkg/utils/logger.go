package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger logs JSON to a rotating <app>.log under LogPath and to stdout.
// In debug mode stdout switches to the console encoder and both sinks drop to
// debug level. An empty LogPath disables the file sink.
func InitLogger(config AppConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if config.Debug {
		level.SetLevel(zap.DebugLevel)
	}

	fileEncoding := zap.NewProductionEncoderConfig()
	fileEncoding.TimeKey = "timestamp"
	fileEncoding.EncodeTime = zapcore.ISO8601TimeEncoder
	fileEncoding.EncodeCaller = zapcore.ShortCallerEncoder

	stdoutEncoder := zapcore.NewJSONEncoder(fileEncoding)
	if config.Debug {
		devEncoding := zap.NewDevelopmentEncoderConfig()
		devEncoding.EncodeTime = zapcore.ISO8601TimeEncoder
		devEncoding.EncodeLevel = zapcore.CapitalColorLevelEncoder
		stdoutEncoder = zapcore.NewConsoleEncoder(devEncoding)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder, zapcore.Lock(os.Stdout), level),
	}

	if config.LogPath != "" {
		if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
			return nil, err
		}

		name := config.Name
		if name == "" {
			name = "taxi-dispatch"
		}
		rotating := &lumberjack.Logger{
			Filename:   filepath.Join(config.LogPath, name+".log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoding), zapcore.AddSync(rotating), level))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
	), nil
}

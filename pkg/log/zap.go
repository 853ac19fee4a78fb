package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Invalid levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != ModeProduction {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(2)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.write(zapcore.DebugLevel, arg) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.writef(zapcore.DebugLevel, template, arg)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.write(zapcore.InfoLevel, arg) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.writef(zapcore.InfoLevel, template, arg)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.write(zapcore.WarnLevel, arg) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.writef(zapcore.WarnLevel, template, arg)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.write(zapcore.ErrorLevel, arg) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.writef(zapcore.ErrorLevel, template, arg)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.write(zapcore.DPanicLevel, arg) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.writef(zapcore.DPanicLevel, template, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.write(zapcore.PanicLevel, arg) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.writef(zapcore.PanicLevel, template, arg)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.write(zapcore.FatalLevel, arg) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.writef(zapcore.FatalLevel, template, arg)
}

// write turns ("msg", k1, v1, ...) into a structured entry. Anything else is
// joined the way fmt.Sprint would.
func (l *zapLogger) write(level zapcore.Level, arg []any) {
	msg, fields := splitArgs(arg)
	l.sugar.Logw(level, msg, fields...)
}

func (l *zapLogger) writef(level zapcore.Level, template string, arg []any) {
	l.sugar.Logf(level, template, arg...)
}

func splitArgs(arg []any) (string, []any) {
	if len(arg) == 0 {
		return "", nil
	}
	msg, ok := arg[0].(string)
	if !ok || len(arg)%2 == 0 {
		return fmt.Sprint(arg...), nil
	}
	return msg, arg[1:]
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志文件轮转参数。
const (
	logMaxSizeMB  = 100
	logMaxBackups = 3
	logMaxAgeDays = 7
)

// newLogger 按配置构建 slog.Logger。
//
// 设置了 File 时写入 lumberjack 轮转文件，返回的 io.Closer 需要在退出前关闭；
// 否则写入 fallback，Closer 为无操作。
func newLogger(cfg LogConfig, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		return nil, nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.Level)
	}

	var (
		out              = fallback
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			Compress:   true,
		}
		out, closer = rotator, rotator
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		handler = slog.NewTextHandler(out, opts)
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		_ = closer.Close()
		return nil, nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.Format)
	}
	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// 常用日志属性。
func attrScenario(name string) slog.Attr { return slog.String("scenario", name) }

func attrWorker(id int) slog.Attr { return slog.Int("worker", id) }

func attrErr(err error) slog.Attr { return slog.Any("error", err) }

// 输出目标，测试中替换。
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

package main

import (
	"errors"
	"strings"
)

// 配置与运行错误。
var (
	ErrUnsupportedFormat = errors.New("xhowbench: unsupported config format")
	ErrLoadConfig        = errors.New("xhowbench: load config failed")
	ErrInvalidConfig     = errors.New("xhowbench: invalid config")
	ErrUnknownScenario   = errors.New("xhowbench: unknown scenario")
	ErrLostEntries       = errors.New("xhowbench: map lost entries")
)

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *usageError) Unwrap() error { return e.err }

// exitError 表示已经完成输出、只需设置退出码的失败。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// isCLIUsageError 识别 urfave/cli 产生的参数错误（未知 flag、取值无法解析等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"invalid value",
		"flag needs an argument",
		"No help topic for",
	} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}

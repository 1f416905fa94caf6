package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// 默认值与上限。
const (
	defaultKeys    = 10000
	defaultMaxLen  = 300
	defaultRepeat  = 50
	defaultWorkers = 1

	maxKeys    = 10_000_000
	maxKeyLen  = 1 << 20
	maxWorkers = 1024
)

// 键的生成方式。
const (
	keyKindASCII = "ascii"
	keyKindUUID  = "uuid"
)

// Config 是一次压测的全部参数。文件与命令行使用同一组键名。
type Config struct {
	Keys      int       `koanf:"keys"`
	MaxLen    int       `koanf:"max_len"`
	Repeat    int       `koanf:"repeat"`
	Workers   int       `koanf:"workers"`
	Seed      uint64    `koanf:"seed"`
	KeyKind   string    `koanf:"key_kind"`
	Scenarios []string  `koanf:"scenarios"`
	Metrics   bool      `koanf:"metrics"`
	Log       LogConfig `koanf:"log"`
}

// LogConfig 是日志相关参数。
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

func defaultConfig() Config {
	return Config{
		Keys:      defaultKeys,
		MaxLen:    defaultMaxLen,
		Repeat:    defaultRepeat,
		Workers:   defaultWorkers,
		KeyKind:   keyKindASCII,
		Scenarios: scenarioNames(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// parserFor 按扩展名选择解析器。
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// loadConfig 读取配置文件并覆盖到默认值上。path 为空时直接返回默认值。
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	parser, err := parserFor(path)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	return parseConfig(data, parser)
}

func parseConfig(data []byte, parser koanf.Parser) (Config, error) {
	cfg := defaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	return cfg, nil
}

// applyFlags 用命令行上显式设置的 flag 覆盖配置。
func applyFlags(cmd *cli.Command, cfg *Config) {
	if cmd.IsSet("keys") {
		cfg.Keys = cmd.Int("keys")
	}
	if cmd.IsSet("max-len") {
		cfg.MaxLen = cmd.Int("max-len")
	}
	if cmd.IsSet("repeat") {
		cfg.Repeat = cmd.Int("repeat")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("key-kind") {
		cfg.KeyKind = cmd.String("key-kind")
	}
	if cmd.IsSet("scenario") {
		cfg.Scenarios = cmd.StringSlice("scenario")
	}
	if cmd.IsSet("metrics") {
		cfg.Metrics = cmd.Bool("metrics")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}
}

// Validate 检查参数范围。
func (c Config) Validate() error {
	switch {
	case c.Keys <= 0 || c.Keys > maxKeys:
		return fmt.Errorf("%w: keys must be in (0, %d], got %d", ErrInvalidConfig, maxKeys, c.Keys)
	case c.MaxLen < 1 || c.MaxLen > maxKeyLen:
		return fmt.Errorf("%w: max_len must be in [1, %d], got %d", ErrInvalidConfig, maxKeyLen, c.MaxLen)
	case c.Repeat <= 0:
		return fmt.Errorf("%w: repeat must be > 0, got %d", ErrInvalidConfig, c.Repeat)
	case c.Workers <= 0 || c.Workers > maxWorkers:
		return fmt.Errorf("%w: workers must be in (0, %d], got %d", ErrInvalidConfig, maxWorkers, c.Workers)
	case c.KeyKind != keyKindASCII && c.KeyKind != keyKindUUID:
		return fmt.Errorf("%w: key_kind must be %q or %q, got %q", ErrInvalidConfig, keyKindASCII, keyKindUUID, c.KeyKind)
	case len(c.Scenarios) == 0:
		return fmt.Errorf("%w: no scenario selected", ErrInvalidConfig)
	}
	known := scenarioNames()
	for _, name := range c.Scenarios {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: %q (known: %s)", ErrUnknownScenario, name, strings.Join(known, ", "))
		}
	}
	return nil
}

// xhowbench 对比三种哈希缓存策略下的 Map 插入开销。
//
// 用法:
//
//	xhowbench [全局选项] <命令> [命令参数]
//
// 命令:
//
//	run            执行压测（默认命令）
//	scenarios      列出可用场景
//
// 场景:
//
//	no-cache       None64，每次插入都重新计算哈希
//	cache-key      Atomic64，键预先哈希，克隆复制哈希码
//	share-state    SharedAtomic64，克隆共享缓存槽位
//
// 退出码:
//
//	0: 成功
//	1: 压测失败
//	2: 参数错误（无效配置、未知场景、未知 flag 等）
//
// 示例:
//
//	xhowbench run --keys 10000 --repeat 50
//	xhowbench run --scenario cache-key --scenario share-state --workers 4
//	xhowbench run --config bench.yaml --metrics
//	xhowbench run --key-kind uuid --log-format json --log-file /tmp/xhowbench.log
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

// shutdownTimeout 关闭指标组件的超时时间。
const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run(os.Args))
}

func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xhowbench",
		Usage:   "哈希缓存策略压测",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands: []*cli.Command{
			createRunCommand(),
			createScenariosCommand(),
		},
		DefaultCommand: "run",
		Writer:         stdout,
		ErrWriter:      stderr,
		// 退出码统一在 run() 中映射，不让 urfave/cli 直接 os.Exit。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func createRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "执行压测",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "配置文件（.yaml/.yml/.json）"},
			&cli.IntFlag{Name: "keys", Aliases: []string{"n"}, Usage: "键的数量", Value: defaultKeys},
			&cli.IntFlag{Name: "max-len", Usage: "ascii 键的长度上限（不含）", Value: defaultMaxLen},
			&cli.IntFlag{Name: "repeat", Aliases: []string{"r"}, Usage: "插入轮数", Value: defaultRepeat},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "并发 worker 数", Value: defaultWorkers},
			&cli.Uint64Flag{Name: "seed", Usage: "随机种子"},
			&cli.StringFlag{Name: "key-kind", Usage: "键的生成方式：ascii 或 uuid", Value: keyKindASCII},
			&cli.StringSliceFlag{Name: "scenario", Aliases: []string{"s"}, Usage: "要执行的场景，可重复指定（默认全部）"},
			&cli.BoolFlag{Name: "metrics", Usage: "输出 OpenTelemetry 指标汇总"},
			&cli.StringFlag{Name: "log-level", Usage: "日志级别：debug/info/warn/error", Value: "info"},
			&cli.StringFlag{Name: "log-format", Usage: "日志格式：text 或 json", Value: "text"},
			&cli.StringFlag{Name: "log-file", Usage: "日志文件（按大小轮转），默认输出到 stderr"},
		},
		Action: cmdRun,
	}
}

func createScenariosCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "列出可用场景",
		Action: func(_ context.Context, _ *cli.Command) error {
			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			for _, s := range scenarios {
				fmt.Fprintf(tw, "%s\t%s\n", s.name, s.desc)
			}
			return tw.Flush()
		},
	}
}

// cmdRun 加载配置，执行压测并输出结果表。
func cmdRun(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return &usageError{msg: "load config", err: err}
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return &usageError{msg: "invalid config", err: err}
	}

	log, closer, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return &usageError{msg: "logger", err: err}
	}
	defer func() { _ = closer.Close() }()

	rec, err := newRecorder()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := rec.Shutdown(sctx); err != nil {
			log.Warn("metrics shutdown failed", attrErr(err))
		}
	}()

	results, err := runBench(ctx, cfg, log, rec)
	writeResults(results)
	if err != nil {
		return err
	}

	if cfg.Metrics {
		lines, err := rec.collect(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		writeMetrics(tw, lines)
		return tw.Flush()
	}
	return nil
}

// writeResults 输出结果表。
func writeResults(results []result) {
	if len(results) == 0 {
		return
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "scenario\tinserts\thashes\telapsed\tns/insert\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.1f\t\n",
			r.Scenario, r.Inserts, r.Hashes, r.Elapsed.Round(time.Microsecond), r.NsPerInsert())
	}
	_ = tw.Flush()
}

func run(args []string) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	defer close(done)
	setupSignalHandler(cancel, done)

	return execute(ctx, args)
}

// execute 运行 CLI 并把错误映射为退出码。
func execute(ctx context.Context, args []string) int {
	if err := createApp().Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// setupSignalHandler 第一次信号取消压测，第二次信号强制退出（130 = 128 + SIGINT）。
// done 关闭后停止监听。
func setupSignalHandler(cancel context.CancelFunc, done <-chan struct{}) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-done:
			return
		}
		select {
		case <-sigCh:
			os.Exit(130)
		case <-done:
		}
	}()
}

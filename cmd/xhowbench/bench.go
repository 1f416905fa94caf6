package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xhow/pkg/util/xhow"
	"github.com/omeyang/xhow/pkg/util/xhowmap"
)

// hashCount 统计 meteredHasher 实际计算哈希的次数。场景串行执行，
// 每个场景开始前清零。
var hashCount atomic.Int64

// meteredHasher 是计数版的 xhow.XXHash[string]。
type meteredHasher struct{}

func (meteredHasher) Hash(v string) uint64 {
	hashCount.Add(1)
	return xhow.XXHash[string]{}.Hash(v)
}

func (meteredHasher) Equal(a, b string) bool {
	return a == b
}

type benchKey[S any, PS xhow.StorerOf[S]] = xhow.How[string, meteredHasher, S, PS]

// benchEnv 是所有场景共享的输入。
type benchEnv struct {
	cfg      Config
	keys     []string
	distinct int
	log      *slog.Logger
	rec      *recorder
}

// result 是一个场景的汇总。
type result struct {
	Scenario string
	Inserts  int64
	Hashes   int64
	Elapsed  time.Duration
}

// NsPerInsert 返回平均每次插入的耗时（纳秒）。
func (r result) NsPerInsert() float64 {
	if r.Inserts == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Inserts)
}

// scenario 描述一种缓存策略下的插入压测。
type scenario struct {
	name string
	desc string
	run  func(ctx context.Context, env *benchEnv) (result, error)
}

var scenarios = []scenario{
	{
		name: "no-cache",
		desc: "None64：每次插入都重新计算哈希",
		run: func(ctx context.Context, env *benchEnv) (result, error) {
			return runScenario[xhow.None64](ctx, env, "no-cache", false)
		},
	},
	{
		name: "cache-key",
		desc: "Atomic64：键预先哈希，克隆复制缓存的哈希码",
		run: func(ctx context.Context, env *benchEnv) (result, error) {
			return runScenario[xhow.Atomic64](ctx, env, "cache-key", true)
		},
	},
	{
		name: "share-state",
		desc: "SharedAtomic64：克隆共享同一缓存槽位，首次插入时计算",
		run: func(ctx context.Context, env *benchEnv) (result, error) {
			return runScenario[xhow.SharedAtomic64](ctx, env, "share-state", false)
		},
	},
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}

func lookupScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

// countDistinct 返回 keys 中不同值的个数。
func countDistinct(keys []string) int {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}

// runBench 依次执行 cfg 选中的场景。
func runBench(ctx context.Context, cfg Config, log *slog.Logger, rec *recorder) ([]result, error) {
	keys := generateKeys(cfg.KeyKind, cfg.Keys, cfg.MaxLen, cfg.Seed)
	env := &benchEnv{
		cfg:      cfg,
		keys:     keys,
		distinct: countDistinct(keys),
		log:      log,
		rec:      rec,
	}
	log.Info("keys generated",
		slog.String("kind", cfg.KeyKind),
		slog.Int("count", len(keys)),
		slog.Int("distinct", env.distinct),
	)

	results := make([]result, 0, len(cfg.Scenarios))
	for _, name := range cfg.Scenarios {
		s, ok := lookupScenario(name)
		if !ok {
			return results, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}

		log.Debug("scenario start", attrScenario(s.name), slog.Int("workers", cfg.Workers))
		r, err := s.run(ctx, env)
		if err != nil {
			log.Error("scenario failed", attrScenario(s.name), attrErr(err))
			return results, fmt.Errorf("scenario %s: %w", s.name, err)
		}
		rec.scenarioDone(ctx, r)
		log.Info("scenario done",
			attrScenario(r.Scenario),
			slog.Int64("inserts", r.Inserts),
			slog.Int64("hashes", r.Hashes),
			slog.Duration("elapsed", r.Elapsed),
		)
		results = append(results, r)
	}
	return results, nil
}

// runScenario 为每个 worker 建一张私有 Map，在共享的键上执行 repeat 轮插入。
// 每轮插入的是键的克隆，克隆按存储器规则携带（或共享）缓存。
// 计时与哈希计数只覆盖插入阶段，结束后逐张 Map 校验内容。
func runScenario[S any, PS xhow.StorerOf[S]](ctx context.Context, env *benchEnv, name string, warm bool) (result, error) {
	keys := make([]*benchKey[S, PS], len(env.keys))
	for i, k := range env.keys {
		keys[i] = xhow.New[string, meteredHasher, S, PS](k)
		if warm {
			keys[i].Hash()
		}
	}
	defer func() {
		for _, k := range keys {
			k.Release()
		}
	}()

	var inserts atomic.Int64
	maps := make([]*xhowmap.Map[string, *benchKey[S, PS], int], env.cfg.Workers)
	hashCount.Store(0)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range env.cfg.Workers {
		g.Go(func() error {
			m, n, err := fill(gctx, env, name, keys)
			maps[w] = m
			inserts.Add(n)
			if err != nil {
				env.log.Warn("worker stopped", attrScenario(name), attrWorker(w), attrErr(err))
			}
			return err
		})
	}
	err := g.Wait()
	r := result{
		Scenario: name,
		Inserts:  inserts.Load(),
		Hashes:   hashCount.Load(),
		Elapsed:  time.Since(start),
	}
	if err != nil {
		return r, err
	}

	for w, m := range maps {
		if err := verify(env, m); err != nil {
			return r, fmt.Errorf("worker %d: %w", w, err)
		}
		for k := range m.Keys() {
			k.Release()
		}
	}
	return r, nil
}

// fill 执行一个 worker 的全部轮次。
func fill[S any, PS xhow.StorerOf[S]](ctx context.Context, env *benchEnv, name string, keys []*benchKey[S, PS]) (*xhowmap.Map[string, *benchKey[S, PS], int], int64, error) {
	m := xhowmap.New[string, *benchKey[S, PS], int](xhowmap.WithCapacity(len(keys)))
	var inserts int64
	for range env.cfg.Repeat {
		if err := ctx.Err(); err != nil {
			return m, inserts, err
		}
		start := time.Now()
		for i, k := range keys {
			c := k.Clone()
			if _, replaced := m.Insert(c, i); replaced {
				c.Release()
			}
			inserts++
		}
		env.rec.round(ctx, name, time.Since(start))
	}
	return m, inserts, nil
}

// verify 检查 Map 恰好包含所有不同的键，且都能用借用视图查到。
func verify[S any, PS xhow.StorerOf[S]](env *benchEnv, m *xhowmap.Map[string, *benchKey[S, PS], int]) error {
	if m.Len() != env.distinct {
		return fmt.Errorf("%w: have %d, want %d", ErrLostEntries, m.Len(), env.distinct)
	}
	for _, k := range env.keys {
		if !m.Contains(xhow.Borrow[string, meteredHasher, S, PS](k)) {
			return fmt.Errorf("%w: key %q not found", ErrLostEntries, k)
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const meterName = "github.com/omeyang/xhow/cmd/xhowbench"

// recorder 把压测数据记录为 OpenTelemetry 指标，结束时从 ManualReader 拉取汇总。
type recorder struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	inserts  metric.Int64Counter
	hashes   metric.Int64Counter
	rounds   metric.Float64Histogram
}

func newRecorder() (*recorder, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter(meterName)

	inserts, err := meter.Int64Counter("xhowbench.inserts",
		metric.WithDescription("map inserts"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}
	hashes, err := meter.Int64Counter("xhowbench.hashes",
		metric.WithDescription("hash computations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}
	rounds, err := meter.Float64Histogram("xhowbench.round.duration",
		metric.WithDescription("duration of one insert round"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &recorder{
		reader:   reader,
		provider: provider,
		inserts:  inserts,
		hashes:   hashes,
		rounds:   rounds,
	}, nil
}

func scenarioAttr(name string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("scenario", name))
}

// round 记录一轮插入的耗时。可并发调用。
func (r *recorder) round(ctx context.Context, scenario string, d time.Duration) {
	r.rounds.Record(ctx, d.Seconds(), scenarioAttr(scenario))
}

// scenarioDone 记录场景汇总。
func (r *recorder) scenarioDone(ctx context.Context, res result) {
	r.inserts.Add(ctx, res.Inserts, scenarioAttr(res.Scenario))
	r.hashes.Add(ctx, res.Hashes, scenarioAttr(res.Scenario))
}

// metricLine 是一条展开后的指标数据点。
type metricLine struct {
	Name     string
	Scenario string
	Value    string
}

// collect 拉取当前的全部数据点。
func (r *recorder) collect(ctx context.Context) ([]metricLine, error) {
	var rm metricdata.ResourceMetrics
	if err := r.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	var lines []metricLine
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, metricLine{
						Name:     m.Name,
						Scenario: scenarioOf(dp.Attributes),
						Value:    fmt.Sprintf("%d", dp.Value),
					})
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, metricLine{
						Name:     m.Name,
						Scenario: scenarioOf(dp.Attributes),
						Value:    formatHistogram(dp),
					})
				}
			}
		}
	}
	return lines, nil
}

func scenarioOf(set attribute.Set) string {
	if v, ok := set.Value("scenario"); ok {
		return v.AsString()
	}
	return ""
}

func formatHistogram(dp metricdata.HistogramDataPoint[float64]) string {
	if dp.Count == 0 {
		return "count=0"
	}
	mean := dp.Sum / float64(dp.Count)
	s := fmt.Sprintf("count=%d mean=%s", dp.Count, seconds(mean))
	if lo, ok := dp.Min.Value(); ok {
		s += " min=" + seconds(lo)
	}
	if hi, ok := dp.Max.Value(); ok {
		s += " max=" + seconds(hi)
	}
	return s
}

func seconds(v float64) string {
	return time.Duration(math.Round(v * float64(time.Second))).String()
}

// writeMetrics 以 "name scenario value" 的形式输出指标。
func writeMetrics(w io.Writer, lines []metricLine) {
	for _, l := range lines {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.Name, l.Scenario, l.Value)
	}
}

// Shutdown 关闭 MeterProvider。
func (r *recorder) Shutdown(ctx context.Context) error {
	return r.provider.Shutdown(ctx)
}

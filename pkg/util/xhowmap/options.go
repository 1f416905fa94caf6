package xhowmap

// Option 定义 Map 可选配置。
type Option func(*options)

type options struct {
	capacity int
}

func defaultOptions() options {
	return options{}
}

// WithCapacity 预分配桶的数量。n <= 0 表示不预分配（默认）。
func WithCapacity(n int) Option {
	if n < 0 {
		n = 0
	}
	return func(o *options) {
		o.capacity = n
	}
}

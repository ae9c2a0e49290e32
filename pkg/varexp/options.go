package varexp

import "log/slog"

// options 解析选项。
type options struct {
	logger *slog.Logger
}

// Option 解析选项函数。
type Option func(*options)

// WithLogger 注入诊断日志器。
//
// 解析失败的具体原因（循环引用、变量缺值、嵌套失败）只通过
// 该日志器以 Debug 级别输出，不影响返回值。默认使用
// [slog.Default]。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

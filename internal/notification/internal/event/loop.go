package event

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultRetryInterval    = 100 * time.Millisecond
	defaultMaxRetryInterval = 10 * time.Second
)

type handleFunc func(ctx context.Context, msg *mq.Message) error

// consumeLoop 拉消息失败按指数退避等待，拉到消息之后退避重新计算
// 处理消息失败只记录日志，不等待
func consumeLoop(ctx context.Context, consumer mq.Consumer, handle handleFunc,
	logger *elog.Component, initialInterval, maxInterval time.Duration) {
	// maxRetries 为 0 表示一直重试
	newStrategy := func() *retry.ExponentialBackoffRetryStrategy {
		strategy, _ := retry.NewExponentialBackoffRetryStrategy(initialInterval, maxInterval, 0)
		return strategy
	}
	strategy := newStrategy()
	for {
		msg, err := consumer.Consume(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			next, _ := strategy.Next()
			logger.Error("获取消息失败", elog.FieldErr(err), elog.Duration("retryAfter", next))
			timer := time.NewTimer(next)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			continue
		}
		strategy = newStrategy()
		if err = handle(ctx, msg); err != nil {
			logger.Error("处理消息失败", elog.FieldErr(err))
		}
	}
}

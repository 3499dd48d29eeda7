package redis

import (
	"context"
	"time"
)

// JobLocker 供定时任务持有的锁句柄，避免任务直接依赖包级函数
type JobLocker struct{}

func NewJobLocker() *JobLocker {
	return &JobLocker{}
}

func (s *JobLocker) TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error) {
	return TryLock(ctx, key, value, expiration, retryTimes)
}

func (s *JobLocker) UnLock(ctx context.Context, key string, value string) {
	UnLock(ctx, key, value)
}

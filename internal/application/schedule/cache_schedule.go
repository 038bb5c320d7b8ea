package schedule

import (
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"clima-api/pkg/cache"
	"clima-api/pkg/log"
	"clima-api/pkg/msg"
	"clima-api/pkg/resource"
)

// CacheScheduler runs the periodic eviction sweep over the weather data cache.
type CacheScheduler struct {
	cron      *cron.Cron
	dataCache *cache.Cache
}

func NewCacheScheduler(dataCache *cache.Cache) *CacheScheduler {
	return &CacheScheduler{cron: cron.New(), dataCache: dataCache}
}

// InitCacheScheduleTasks initializes the cache sweep task
func (scheduler *CacheScheduler) InitCacheScheduleTasks() {
	cronExpression := resource.GetString("app.cache.sweep.cron")

	_, err := scheduler.cron.AddFunc(cronExpression, scheduler.SweepExpiredEntries)
	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
	log.Infof("Cache sweep scheduler started with cron expression: %s", cronExpression)
}

// SweepExpiredEntries evicts cache entries past their eviction floor
func (scheduler *CacheScheduler) SweepExpiredEntries() {
	runID := uuid.New().String()

	log.Info(msg.GetMessage("cache.sweep.start"), zap.String("run_id", runID))

	evicted := scheduler.dataCache.Sweep()

	log.Info(msg.GetMessage("cache.sweep.end", evicted),
		zap.String("run_id", runID),
		zap.Int("evicted", evicted),
		zap.Int("remaining", scheduler.dataCache.Len()),
	)
}

// Stop gracefully stops the scheduler
func (scheduler *CacheScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}

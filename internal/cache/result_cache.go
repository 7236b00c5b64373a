package cache

import (
	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"

	"schedsim/internal/responses"
)

// ResultCache memoizes schedule responses by request key. Simulations are
// deterministic, so a hit is exactly what a fresh run would produce. Values
// are copied on the way in and out and never shared between callers.
type ResultCache struct {
	store  *ristretto.Cache
	logger *zap.Logger
}

// NewResultCache builds a cache holding at most maxCost segments plus metric
// records across all entries.
func NewResultCache(numCounters, maxCost int64, logger *zap.Logger) (*ResultCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		logger.Error("failed to initialize result cache", zap.Error(err))
		return nil, err
	}
	logger.Debug("result cache initialized", zap.Int64("num_counters", numCounters), zap.Int64("max_cost", maxCost))
	return &ResultCache{store: store, logger: logger}, nil
}

func (c *ResultCache) Get(key string) (responses.ScheduleResponse, bool) {
	value, ok := c.store.Get(key)
	if !ok {
		return responses.ScheduleResponse{}, false
	}
	response, ok := value.(responses.ScheduleResponse)
	if !ok {
		c.logger.Warn("unexpected value type in result cache", zap.String("key", key))
		return responses.ScheduleResponse{}, false
	}
	return response.Clone(), true
}

// Set stores a copy of response. Admission is asynchronous and may be
// rejected by the cache policy.
func (c *ResultCache) Set(key string, response responses.ScheduleResponse) {
	cost := int64(len(response.Gantt) + len(response.Details) + 1)
	if !c.store.Set(key, response.Clone(), cost) {
		c.logger.Debug("result cache dropped entry", zap.String("key", key))
	}
}

// Wait blocks until pending writes are visible to Get.
func (c *ResultCache) Wait() {
	c.store.Wait()
}

func (c *ResultCache) Close() {
	c.store.Close()
}

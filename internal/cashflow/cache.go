package cashflow

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"fjacquet/goalcast/internal/dateutils"
	"fjacquet/goalcast/internal/models"
)

// forecastCache memoizes forecast signals. Keys cover the full aggregated
// series and the request date, so two requests share an entry only when
// their inputs are byte-for-byte identical on the same day. Entries expire
// after the configured TTL.
type forecastCache struct {
	entries *gocache.Cache
}

func newForecastCache(ttl time.Duration) *forecastCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &forecastCache{entries: gocache.New(ttl, ttl)}
}

func (c *forecastCache) get(series []models.DailyNetFlow, now time.Time) (models.VelocitySignal, bool) {
	if v, ok := c.entries.Get(seriesKey(series, now)); ok {
		return v.(models.VelocitySignal), true
	}
	return models.VelocitySignal{}, false
}

func (c *forecastCache) put(series []models.DailyNetFlow, now time.Time, signal models.VelocitySignal) {
	c.entries.SetDefault(seriesKey(series, now), signal)
}

func seriesKey(series []models.DailyNetFlow, now time.Time) string {
	h := sha256.New()
	for _, flow := range series {
		h.Write([]byte(dateutils.ToISODate(flow.Date)))
		h.Write([]byte{'='})
		h.Write([]byte(flow.Net.String()))
		h.Write([]byte{';'})
	}
	h.Write([]byte(dateutils.ToISODate(now)))
	return hex.EncodeToString(h.Sum(nil))
}

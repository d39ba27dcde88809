package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal/api/internal/models"
	"jobportal/api/internal/repository"
)

const (
	analyticsCacheKey = "analytics:summary"
	analyticsCacheTTL = 5 * time.Minute
	analyticsWeeks    = 7
)

type analyticsSummary struct {
	Applications []int `json:"applications"`
	Interviews   []int `json:"interviews"`
}

// AnalyticsSummary serves the dashboard series: weekly application volume
// and the subset that progressed past screening. Cached in redis because the
// dashboard polls and the numbers only need to be roughly fresh.
func (h HandlerSet) AnalyticsSummary(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, analyticsCacheKey).Bytes(); err == nil {
			var summary analyticsSummary
			if json.Unmarshal(cached, &summary) == nil {
				c.JSON(http.StatusOK, summary)
				return
			}
		}
	}

	summary, err := h.buildAnalyticsSummary(c)
	if err != nil {
		h.serverError(c, err, "analytics summary failed")
		return
	}

	if h.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			h.cache.Set(ctx, analyticsCacheKey, payload, analyticsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, summary)
}

func (h HandlerSet) buildAnalyticsSummary(c *gin.Context) (analyticsSummary, error) {
	ctx := c.Request.Context()

	applied, err := h.applications.CountByWeek(ctx, analyticsWeeks, nil)
	if err != nil {
		return analyticsSummary{}, err
	}

	interviewed, err := h.applications.CountByWeek(ctx, analyticsWeeks, []models.ApplicationStatus{
		models.ApplicationShortlisted,
		models.ApplicationAccepted,
	})
	if err != nil {
		return analyticsSummary{}, err
	}

	return analyticsSummary{
		Applications: fillWeeks(applied, analyticsWeeks),
		Interviews:   fillWeeks(interviewed, analyticsWeeks),
	}, nil
}

// fillWeeks expands sparse week buckets into a dense trailing-weeks series,
// oldest first, zero for weeks with no rows.
func fillWeeks(counts []repository.WeeklyCount, weeks int) []int {
	byWeek := make(map[int64]int, len(counts))
	for _, c := range counts {
		byWeek[weekStart(c.WeekStart)] = c.Total
	}

	series := make([]int, weeks)
	now := time.Now()
	for i := 0; i < weeks; i++ {
		week := weekStart(now.AddDate(0, 0, -7*(weeks-1-i)))
		series[i] = byWeek[week]
	}
	return series
}

func weekStart(t time.Time) int64 {
	t = t.UTC()
	// ISO week: Monday start.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset).Unix()
}

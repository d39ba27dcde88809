package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobportal/api/internal/repository"
)

func TestFillWeeksDense(t *testing.T) {
	now := time.Now()
	counts := []repository.WeeklyCount{
		{WeekStart: now.AddDate(0, 0, -14), Total: 3},
		{WeekStart: now, Total: 7},
	}

	series := fillWeeks(counts, 4)

	assert.Len(t, series, 4)
	assert.Equal(t, 7, series[3], "current week is the last element")
	assert.Equal(t, 3, series[1])
	assert.Equal(t, 0, series[0])
	assert.Equal(t, 0, series[2])
}

func TestFillWeeksEmpty(t *testing.T) {
	series := fillWeeks(nil, 7)

	assert.Len(t, series, 7)
	for i, v := range series {
		assert.Zero(t, v, "week %d", i)
	}
}

func TestWeekStartMondayAligned(t *testing.T) {
	// 2026-08-26 is a Wednesday; its week starts Monday 2026-08-24.
	wed := time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)
	mon := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, mon.Unix(), weekStart(wed))
	assert.Equal(t, mon.Unix(), weekStart(mon))
	assert.Equal(t, mon.Unix(), weekStart(mon.AddDate(0, 0, 6)), "Sunday maps to same week")
}

package jobs

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"jobportal/api/internal/repository"
)

const viewKeyPrefix = "job:views:"

// Scheduler runs the periodic maintenance the request path defers: closing
// postings past their deadline and folding redis view counters back into
// the jobs table.
type Scheduler struct {
	cron  *cron.Cron
	jobs  *repository.JobRepository
	cache *redis.Client
	log   zerolog.Logger
}

func NewScheduler(jobs *repository.JobRepository, cache *redis.Client, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		jobs:  jobs,
		cache: cache,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 0 * * *", s.closeExpiredJobs); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 */5 * * * *", s.flushViewCounters); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and returns once in-flight jobs finish or the
// grace period elapses.
func (s *Scheduler) Stop() {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) closeExpiredJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	closed, err := s.jobs.CloseExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("close expired jobs failed")
		return
	}
	if closed > 0 {
		s.log.Info().Int64("closed", closed).Msg("expired postings closed")
	}
}

func (s *Scheduler) flushViewCounters() {
	if s.cache == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	iter := s.cache.Scan(ctx, 0, viewKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		jobID := strings.TrimPrefix(key, viewKeyPrefix)

		val, err := s.cache.GetDel(ctx, key).Result()
		if err != nil {
			continue
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil || n == 0 {
			continue
		}

		if err := s.jobs.AddViews(ctx, jobID, n); err != nil {
			s.log.Error().Err(err).Str("job_id", jobID).Msg("flush view counter failed")
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Error().Err(err).Msg("scan view counters failed")
	}
}

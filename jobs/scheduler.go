// Package jobs runs periodic housekeeping next to the HTTP server.
package jobs

import (
	"time"

	"gin-pantry/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	TokenCleanupSpec  = "@hourly"
	LimiterPruneSpec  = "@every 10m"
	LimiterMaxIdle    = 30 * time.Minute
	jobTokenCleanup   = "token_cleanup"
	jobLimiterPruning = "limiter_pruning"
)

// TokenCleaner removes blacklist entries whose token has expired.
type TokenCleaner interface {
	CleanExpiredTokens() (int64, error)
}

// LimiterPruner drops idle per-caller rate limiters.
type LimiterPruner interface {
	Prune(maxIdle time.Duration) int
}

type Scheduler struct {
	cron    *cron.Cron
	tokens  TokenCleaner
	limiter LimiterPruner
	logger  *zap.Logger
}

func NewScheduler(tokens TokenCleaner, limiter LimiterPruner, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(TokenCleanupSpec, s.CleanTokens); err != nil {
		return nil, err
	}
	if limiter != nil {
		if _, err := s.cron.AddFunc(LimiterPruneSpec, s.PruneLimiters); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) CleanTokens() {
	removed, err := s.tokens.CleanExpiredTokens()
	metrics.RecordJobRun(jobTokenCleanup, err == nil)
	if err != nil {
		s.logger.Error("failed to clean expired tokens", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("cleaned expired tokens", zap.Int64("removed", removed))
	}
}

func (s *Scheduler) PruneLimiters() {
	removed := s.limiter.Prune(LimiterMaxIdle)
	metrics.RecordJobRun(jobLimiterPruning, true)
	if removed > 0 {
		s.logger.Debug("pruned idle rate limiters", zap.Int("removed", removed))
	}
}

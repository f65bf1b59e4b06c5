package quote

import (
	"context"
	"time"

	"github.com/go-kit/log"
)

// loggingService decorates a quote.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Snapshot(ctx context.Context, coin string) (snap Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "snapshot",
			"coin", coin,
			"id", snap.ID,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Snapshot(ctx, coin)
}

func (s *loggingService) Convert(ctx context.Context, amount Amount, target string) (out Amount, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount.Value,
			"from", amount.Currency,
			"to", target,
			"converted_amount", out.Value,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, target)
}

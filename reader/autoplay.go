package reader

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/iw2rmb/glance/page"
)

// AutoplayOptions configures Autoplay.
type AutoplayOptions struct {
	// Interval between page turns. Must be positive.
	Interval time.Duration
	// Jitter adds a random delay in [0, Jitter) to each turn.
	Jitter time.Duration
	// StopAfter ends autoplay after this much time. 0 disables.
	StopAfter time.Duration
	// OnPage receives every page turned to.
	OnPage func(page.Page)
}

// ErrAutoplayStopped is returned when StopAfter elapses.
var ErrAutoplayStopped = errors.New("reader: autoplay stopped")

// Autoplay turns pages of s until the document ends (nil), ctx is done
// (ctx.Err()), StopAfter elapses (ErrAutoplayStopped), or a turn fails.
func Autoplay(ctx context.Context, s *Session, opt AutoplayOptions) error {
	if opt.Interval <= 0 {
		return errors.New("reader: autoplay interval must be positive")
	}
	if opt.StopAfter > 0 {
		var cancel context.CancelCauseFunc
		ctx, cancel = context.WithCancelCause(ctx)
		defer cancel(nil)
		stop := time.AfterFunc(opt.StopAfter, func() { cancel(ErrAutoplayStopped) })
		defer stop.Stop()
	}

	timer := time.NewTimer(nextDelay(opt))
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			if cause := context.Cause(ctx); errors.Is(cause, ErrAutoplayStopped) {
				s.log.Info("autoplay stopped", "after", opt.StopAfter)
				return ErrAutoplayStopped
			}
			return ctx.Err()
		case <-timer.C:
		}

		p, err := s.Next()
		if errors.Is(err, page.ErrAtEnd) {
			s.log.Info("autoplay reached the end")
			return nil
		}
		if err != nil {
			return err
		}
		if opt.OnPage != nil {
			opt.OnPage(p)
		}
		timer.Reset(nextDelay(opt))
	}
}

func nextDelay(opt AutoplayOptions) time.Duration {
	if opt.Jitter <= 0 {
		return opt.Interval
	}
	return opt.Interval + rand.N(opt.Jitter)
}

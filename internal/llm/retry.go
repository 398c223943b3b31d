package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryConfig bounds the retry loop around a Client.
type RetryConfig struct {
	// MaxAttempts counts the first call too; 1 disables retries.
	MaxAttempts int

	// BaseWait seeds the backoff. The ceiling doubles each attempt up
	// to MaxWait and the actual wait is drawn uniformly below it.
	BaseWait time.Duration
	MaxWait  time.Duration
}

// WithRetry wraps next so transient failures are retried with capped
// exponential backoff and full jitter.
func WithRetry(next Client, cfg RetryConfig) Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retrier{next: next, cfg: cfg}
}

type retrier struct {
	next Client
	cfg  RetryConfig
}

func (r *retrier) Model() string { return r.next.Model() }

func (r *retrier) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var last error
	retriedReply := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := r.pause(ctx, attempt, last); err != nil {
				return nil, err
			}
		}

		c, err := r.next.Complete(ctx, p)
		if err == nil {
			return c, nil
		}
		last = err

		if !worthAnother(err, &retriedReply) {
			return nil, err
		}
	}
	return nil, last
}

// worthAnother decides whether err merits another attempt. Off-shape
// replies get exactly one; truncation and context errors get none;
// transport failures follow their Temporary verdict.
func worthAnother(err error, retriedReply *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var mal *MalformedReplyError
	if errors.As(err, &mal) {
		if mal.Truncated || *retriedReply {
			return false
		}
		*retriedReply = true
		return true
	}

	var tr *TransportError
	if errors.As(err, &tr) {
		return tr.Temporary()
	}

	// Unclassified errors are assumed transient; SDKs surface dead
	// sockets as plain wrapped errors.
	return true
}

// pause sleeps before the given attempt, honoring a provider-announced
// Retry-After when one exists.
func (r *retrier) pause(ctx context.Context, attempt int, last error) error {
	var tr *TransportError
	if errors.As(last, &tr) && tr.RetryAfter > 0 {
		return sleep(ctx, tr.RetryAfter)
	}

	ceiling := r.cfg.BaseWait << (attempt - 1)
	if r.cfg.MaxWait > 0 && ceiling > r.cfg.MaxWait {
		ceiling = r.cfg.MaxWait
	}
	if ceiling <= 0 {
		return nil
	}
	return sleep(ctx, time.Duration(rand.Int64N(int64(ceiling))+1))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

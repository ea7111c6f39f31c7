package heygen

import (
	"context"
	"log"
	"time"
)

// StatusFetcher is the slice of Client the poller needs
type StatusFetcher interface {
	GetVideoStatus(ctx context.Context, videoID string) (VideoStatus, error)
}

// Poller waits for a video job to reach a terminal state. It performs one
// status query per interval, never overlapping queries for the same job.
// The loop has no bound of its own; callers limit it through the context
// (see config.HeyGenConfig.PollTimeout).
type Poller struct {
	fetcher  StatusFetcher
	interval time.Duration
	progress func(percent int)
}

// NewPoller creates a poller querying fetcher every interval
func NewPoller(fetcher StatusFetcher, interval time.Duration) *Poller {
	return &Poller{fetcher: fetcher, interval: interval}
}

// OnProgress registers a progress callback. The percentage is fabricated
// from poll counts for UX purposes; only its monotonicity is meaningful.
func (p *Poller) OnProgress(fn func(percent int)) {
	p.progress = fn
}

// Await blocks until the job completes, fails, or the context ends.
// A completed job yields the video URL; a failed job yields *ProviderFailure
// with the provider's message. Transport errors during a query are logged
// and retried after the usual interval. Unrecognized statuses are kept as a
// distinct retried state: they are logged every cycle but treated as pending
// rather than collapsed into failure.
func (p *Poller) Await(ctx context.Context, videoID string) (string, error) {
	percent := 0

	for {
		status, err := p.fetcher.GetVideoStatus(ctx, videoID)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Printf("WARNING: status query for video %s failed (will retry): %v", videoID, err)
		case status.Status == StatusCompleted:
			p.report(100)
			return status.VideoURL, nil
		case status.Status == StatusFailed:
			return "", &ProviderFailure{VideoID: videoID, Message: status.Error}
		case status.Status == StatusPending || status.Status == StatusProcessing:
			percent = p.advance(percent)
		default:
			log.Printf("WARNING: unknown status %q for video %s, treating as pending", status.Status, videoID)
			percent = p.advance(percent)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

// advance nudges the fabricated progress estimate forward, capped below
// completion so only a terminal observation reports 100
func (p *Poller) advance(percent int) int {
	if percent < 90 {
		percent += 5
	}
	p.report(percent)
	return percent
}

func (p *Poller) report(percent int) {
	if p.progress != nil {
		p.progress(percent)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
)

// DefaultCSRFRefreshInterval is used when a non-positive interval is given.
const DefaultCSRFRefreshInterval = 10 * time.Minute

type csrfRefresher struct {
	source   TokenSource
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCSRFRefresher creates a Worker that fetches a token from source as soon
// as it starts and then again every interval. A token that expires before
// the next tick is refreshed at half its remaining lifetime instead.
func NewCSRFRefresher(source TokenSource, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultCSRFRefreshInterval
	}

	return &csrfRefresher{
		source:   source,
		interval: interval,
		logger:   logger.WithComponent("csrf_refresher"),
	}
}

// Start implements Worker. It stops any previously running loop first.
func (r *csrfRefresher) Start(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()

		t := time.NewTimer(0)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				t.Reset(r.refresh(jobCtx))
			}
		}
	}()
}

// Stop implements Worker.
func (r *csrfRefresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// refresh fetches a token and returns the delay until the next attempt.
func (r *csrfRefresher) refresh(ctx context.Context) time.Duration {
	token, err := r.source.FetchCSRFToken(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Err(err).Msg("csrf token refresh failed")
		}
		return r.interval
	}

	r.logger.Debug().Time("expires_at", token.ExpiresAt).Msg("csrf token refreshed")
	return nextRefresh(token, r.interval)
}

func nextRefresh(token models.CSRFToken, interval time.Duration) time.Duration {
	if !token.ExpiresWithin(interval) {
		return interval
	}

	half := time.Until(token.ExpiresAt) / 2
	if half <= 0 {
		return interval
	}
	return half
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-autosave/internal/adapter"
	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
)

// Delays selects the debounce delay per edit cause. Zero values fall back to
// the package defaults from config.
type Delays struct {
	Change  time.Duration
	Blur    time.Duration
	Default time.Duration
}

// For returns the delay for cause.
func (d Delays) For(cause models.Cause) time.Duration {
	switch cause {
	case models.CauseChange:
		return orDefault(d.Change, config.DefaultChangeDelay)
	case models.CauseBlur:
		return orDefault(d.Blur, config.DefaultBlurDelay)
	default:
		return orDefault(d.Default, config.DefaultDefaultDelay)
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// SynchronizerConfig configures a [Synchronizer].
type SynchronizerConfig struct {
	// Endpoint is the URL every save is POSTed to. Required.
	Endpoint string

	// OnSuccess, if set, receives the fields echoed by the server after each
	// successful write.
	OnSuccess func(persisted models.Fields)

	// OnError, if set, receives the error of each failed write.
	OnError func(err error)

	Delays Delays
}

type synchronizer struct {
	adapter   adapter.EndpointAdapter
	endpoint  string
	onSuccess func(models.Fields)
	onError   func(error)
	delays    Delays
	ctx       context.Context

	mu       sync.Mutex
	pending  models.Fields
	timer    *time.Timer
	timerGen uint64
	isSaving bool
	hasSaved bool
	lastOK   *bool
	disabled bool
	deferred bool
	stopping bool
	stopped  bool

	// started and finished count writes; at most one is in flight.
	started  uint64
	finished uint64
	// idle is signalled whenever a write finishes or a deferred save is
	// dropped.
	idle *sync.Cond

	logger *logger.Logger
}

// NewSynchronizer creates a Synchronizer writing to cfg.Endpoint through
// endpointAdapter. The synchronizer is idle until the first RecordEdit.
//
// Returns ErrNilAdapter or ErrEmptyEndpoint when the corresponding argument is
// missing.
func NewSynchronizer(endpointAdapter adapter.EndpointAdapter, cfg SynchronizerConfig, logger *logger.Logger) (Synchronizer, error) {
	if endpointAdapter == nil {
		return nil, ErrNilAdapter
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, ErrEmptyEndpoint
	}

	log := logger.WithComponent("synchronizer")

	s := &synchronizer{
		adapter:   endpointAdapter,
		endpoint:  strings.TrimSpace(cfg.Endpoint),
		onSuccess: cfg.OnSuccess,
		onError:   cfg.OnError,
		delays:    cfg.Delays,
		ctx:       log.WithContext(context.Background()),
		pending:   make(models.Fields),
		logger:    log,
	}
	s.idle = sync.NewCond(&s.mu)

	return s, nil
}

func (s *synchronizer) RecordEdit(fields models.Fields, cause models.Cause) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending.Merge(fields)
	if s.stopping {
		return
	}

	delay := s.delays.For(cause)
	s.scheduleLocked(delay)

	s.logger.Debug().
		Str("cause", string(cause)).
		Dur("delay", delay).
		Strs("fields", fields.Names()).
		Msg("edit recorded")
}

func (s *synchronizer) CancelPendingSave() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.deferred = false
	s.idle.Broadcast()
}

func (s *synchronizer) Flush() {
	s.mu.Lock()
	s.stopTimerLocked()

	if !s.isSaving {
		snapshot, ok := s.startSaveLocked()
		s.mu.Unlock()
		if ok {
			s.save(snapshot)
		}
		return
	}

	// the writer in flight sends the follow-up once it is done
	s.deferred = true
	target := s.started + 1
	for s.finished < target && (s.isSaving || s.deferred) {
		s.idle.Wait()
	}
	s.mu.Unlock()
}

func (s *synchronizer) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = true
}

func (s *synchronizer) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = false
}

func (s *synchronizer) State() models.SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.SyncState{
		IsSaving:      s.isSaving,
		HasSaved:      s.hasSaved,
		Scheduled:     s.timer != nil,
		Disabled:      s.disabled,
		PendingFields: s.pending.Clone(),
	}
	if s.lastOK != nil {
		ok := *s.lastOK
		state.LastSaveSucceeded = &ok
	}
	return state
}

func (s *synchronizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopping = true
	s.stopTimerLocked()

	for {
		if s.isSaving {
			s.idle.Wait()
			continue
		}
		if !s.deferred {
			break
		}

		s.deferred = false
		snapshot, ok := s.startSaveLocked()
		if !ok {
			break
		}
		s.mu.Unlock()
		s.save(snapshot)
		s.mu.Lock()
	}

	s.stopped = true
	s.idle.Broadcast()
	s.logger.Debug().Strs("unsent", s.pending.Names()).Msg("synchronizer stopped")
}

// scheduleLocked replaces any armed timer with a new one firing after delay.
func (s *synchronizer) scheduleLocked(delay time.Duration) {
	s.stopTimerLocked()
	gen := s.timerGen
	s.timer = time.AfterFunc(delay, func() { s.flushNow(gen) })
}

// stopTimerLocked disarms the timer. Bumping the generation makes a callback
// that already fired but has not taken the lock yet a no-op.
func (s *synchronizer) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerGen++
}

// flushNow is the timer callback.
func (s *synchronizer) flushNow(gen uint64) {
	s.mu.Lock()
	if gen != s.timerGen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	snapshot, ok := s.startSaveLocked()
	s.mu.Unlock()

	if ok {
		s.save(snapshot)
	}
}

// startSaveLocked marks a write as in flight and returns the snapshot to
// send. It returns false when nothing must be sent now: saving is disabled,
// the synchronizer is stopped, the buffer is empty, or another write is in
// flight (in which case the flush is deferred until that write completes).
func (s *synchronizer) startSaveLocked() (models.Fields, bool) {
	switch {
	case s.disabled:
		s.logger.Debug().Msg("save skipped: saving is disabled")
		return nil, false
	case s.stopped:
		return nil, false
	case s.isSaving:
		s.deferred = true
		return nil, false
	case len(s.pending) == 0:
		return nil, false
	}

	s.isSaving = true
	s.deferred = false
	s.started++
	return s.pending.Clone(), true
}

// save performs the write of snapshot, then keeps going while flushes were
// deferred behind it. Callbacks run with no write in flight, so they may call
// back into the synchronizer.
func (s *synchronizer) save(snapshot models.Fields) {
	for {
		resp, err := s.adapter.Save(s.ctx, s.endpoint, snapshot)

		s.mu.Lock()
		s.finishSaveLocked(resp, err)
		s.idle.Broadcast()
		s.mu.Unlock()

		s.notify(resp.Persisted, err)

		s.mu.Lock()
		var ok bool
		if s.deferred && !s.isSaving {
			s.deferred = false
			snapshot, ok = s.startSaveLocked()
		}
		s.idle.Broadcast()
		s.mu.Unlock()

		if !ok {
			return
		}
	}
}

func (s *synchronizer) finishSaveLocked(resp models.SaveResponse, err error) {
	s.isSaving = false
	s.hasSaved = true
	s.finished++
	succeeded := err == nil
	s.lastOK = &succeeded

	if err != nil {
		s.logger.Err(err).
			Str("endpoint", s.endpoint).
			Strs("pending", s.pending.Names()).
			Msg("save failed")
		return
	}

	confirmed := 0
	for name, value := range resp.Persisted {
		if current, ok := s.pending[name]; ok && current == value {
			delete(s.pending, name)
			confirmed++
		}
	}

	s.logger.Debug().
		Int("confirmed", confirmed).
		Int("still_pending", len(s.pending)).
		Msg("save completed")
}

func (s *synchronizer) notify(persisted models.Fields, err error) {
	if err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return
	}
	if s.onSuccess != nil {
		s.onSuccess(persisted)
	}
}

// Package scheduler keeps the translation cache warm by browsing the first
// catalog page in each configured language on a fixed interval.
package scheduler

import (
	"context"
	"sync"
	"time"

	"galeria/backend/internal/logger"
	"galeria/backend/internal/service"
)

// Browser is the part of service.ArtworkService the warmer drives.
type Browser interface {
	Browse(ctx context.Context, params service.BrowseParams) service.BrowseResult
}

type Scheduler struct {
	browser    Browser
	languages  []string
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current warm-up
	mu         sync.Mutex         // protects cancelFunc
	started    bool
}

func New(browser Browser, languages []string, interval time.Duration) *Scheduler {
	return &Scheduler{
		browser:   browser,
		languages: languages,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start runs a warm-up now and then on every tick. It does nothing when the
// interval is not positive or no language is configured.
func (s *Scheduler) Start() {
	if s.interval <= 0 || len(s.languages) == 0 {
		logger.Info("scheduler disabled", "module", "scheduler", "action", "warm", "resource", "translation", "result", "skipped")
		return
	}
	s.started = true
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "warm", "resource", "translation", "result", "ok",
		"interval_ms", s.interval.Milliseconds(), "languages", s.languages)
}

func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "warm", "resource", "translation", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.warm()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.warm()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) warm() {
	// a warm-up never outlives its interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	start := time.Now()
	for _, lang := range s.languages {
		if ctx.Err() != nil {
			logger.Warn("cache warm-up cancelled", "module", "scheduler", "action", "warm", "resource", "translation", "result", "cancelled")
			return
		}
		result := s.browser.Browse(ctx, service.BrowseParams{Page: 1, Language: lang})
		logger.Debug("cache warmed", "module", "scheduler", "action", "warm", "resource", "translation", "result", "ok",
			"lang", lang, "count", len(result.Artworks))
	}
	logger.Info("cache warm-up completed", "module", "scheduler", "action", "warm", "resource", "translation", "result", "ok",
		"duration_ms", time.Since(start).Milliseconds())
}

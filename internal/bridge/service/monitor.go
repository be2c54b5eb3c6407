package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/statefi/bridge/internal/bridge/store"
)

// MonitorService periodically scans for pending deposits and withdrawals
// older than MaxAge and logs them. Pending withdrawals hold escrowed user
// funds, so a stuck record is an operational incident; the monitor only
// reports, it never mutates state.
type MonitorService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	MaxAge   time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewMonitorService creates a stuck-funds monitor. Interval defaults to
// 15 minutes and MaxAge to 24 hours when zero or negative.
func NewMonitorService(store store.Store, logger *slog.Logger, interval, maxAge time.Duration) *MonitorService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}

	return &MonitorService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		MaxAge:   maxAge,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut
// it down gracefully.
func (s *MonitorService) Start() {
	go s.run()
	s.Logger.Info("stuck-funds monitor started", "interval", s.Interval, "max_age", s.MaxAge)
}

// Stop shuts down the worker, blocking until any in-progress scan is done.
func (s *MonitorService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("stuck-funds monitor stopped")
}

func (s *MonitorService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Scan immediately on startup
	s.Scan(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Scan(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Scan performs one pass and returns the number of stale records found.
func (s *MonitorService) Scan(ctx context.Context) int {
	cutoff := time.Now().UTC().Add(-s.MaxAge)
	found := 0

	deposits, err := s.Store.Deposits().ListStalePendingDeposits(ctx, cutoff)
	if err != nil {
		s.Logger.Error("stale deposit scan failed", "error", err)
	}
	for _, d := range deposits {
		found++
		s.Logger.Warn("deposit pending past threshold",
			"deposit_id", d.ID,
			"account_id", d.UserAccountID,
			"amount", d.Amount,
			"initiated_at", d.InitiatedAt,
		)
	}

	withdrawals, err := s.Store.Withdrawals().ListStalePendingWithdrawals(ctx, cutoff)
	if err != nil {
		s.Logger.Error("stale withdrawal scan failed", "error", err)
	}
	for _, w := range withdrawals {
		found++
		s.Logger.Warn("withdrawal pending past threshold, user funds in escrow",
			"withdrawal_id", w.ID,
			"account_id", w.UserAccountID,
			"amount", w.Amount,
			"initiated_at", w.InitiatedAt,
		)
	}

	return found
}

package scheduler

import (
	"context"
	"errors"
	"time"

	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// Scheduler advances auction time. Each Tick decrements every Active
// auction's remaining time by one unit and resolves auctions that reach zero.
// Remaining time is tick-counted, not wall-clock-derived: a paused scheduler
// pauses the auctions with it.
type Scheduler struct {
	store    repository.AuctionStore
	interval time.Duration
}

// New creates a Scheduler sweeping the given store. The interval only drives
// Run; Tick can be called directly, which is how tests exercise it without a
// real clock.
func New(store repository.AuctionStore, interval time.Duration) *Scheduler {
	return &Scheduler{
		store:    store,
		interval: interval,
	}
}

// Tick sweeps every Active auction exactly once: remaining time drops by one
// (floor at zero), and an auction hitting zero is resolved to its terminal
// status in the same critical section. Tick never fails; an auction another
// path closed mid-sweep is silently skipped, so re-ticking a terminal auction
// is a no-op.
func (s *Scheduler) Tick() {
	for _, id := range s.store.ActiveIDs() {
		err := s.store.MutateIfActive(id, func(a *models.Auction) error {
			if a.RemainingTime > 0 {
				a.RemainingTime--
			}
			if a.RemainingTime == 0 {
				status, win := auction.Resolve(a)
				a.Status = status
				a.WinningBid = win
			}
			return nil
		})
		if err == nil || errors.Is(err, auctionerrors.ErrAuctionEnded) || errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			continue
		}
		utils.Warn("scheduler: tick failed for auction", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
	}
}

// Run ticks at the configured interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

package scheduler

import (
	"context"
	"testing"
	"time"

	auctionSvc "auction-engine/internal/auctionService"
	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (*Scheduler, *auctionSvc.AuctionEngine, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return New(store, time.Second), auctionSvc.NewAuctionEngine(store), store
}

func testItem() model.Item {
	return model.Item{Title: "Antique clock", Description: "A restored mantel clock"}
}

func tick(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// Test each tick decrements remaining time by one
func TestScheduler_TickDecrements(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 10, 0, "seller1")
	require.NoError(t, err)

	tick(sched, 3)

	a, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Equal(t, uint64(7), a.RemainingTime)
	require.Equal(t, model.StatusActive, a.Status)
}

// Test expiry below reserve: no sale
func TestScheduler_ReserveNotMet(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 10, 100, "seller1")
	require.NoError(t, err)

	// The first bid may sit below the reserve; that is only judged at closure.
	_, err = engine.PlaceBid(id, 80, "bidder1")
	require.NoError(t, err)

	tick(sched, 10)

	a, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusReserveNotMet, a.Status)
	require.Zero(t, a.RemainingTime)
	require.Nil(t, a.WinningBid)
}

// Test expiry above reserve: last bid wins
func TestScheduler_ClosesWithWinner(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 10, 100, "seller1")
	require.NoError(t, err)

	_, err = engine.PlaceBid(id, 80, "bidder1")
	require.NoError(t, err)
	_, err = engine.PlaceBid(id, 150, "bidder2")
	require.NoError(t, err)

	tick(sched, 10)

	a, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, a.Status)
	require.NotNil(t, a.WinningBid)
	require.Equal(t, uint64(150), a.WinningBid.Price)
	require.Equal(t, "bidder2", a.WinningBid.UserID)
}

// Test expiry with no bids
func TestScheduler_NoBidsNoSale(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 3, 0, "seller1")
	require.NoError(t, err)

	tick(sched, 3)

	a, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusReserveNotMet, a.Status)
	require.Nil(t, a.WinningBid)
}

// Test extra ticks after closure change nothing
func TestScheduler_IdempotentClosure(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 2, 0, "seller1")
	require.NoError(t, err)
	_, err = engine.PlaceBid(id, 100, "bidder1")
	require.NoError(t, err)

	tick(sched, 2)
	closed, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, closed.Status)

	tick(sched, 5)
	after, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Equal(t, closed, after)
}

// Test bids are refused once the auction expired
func TestScheduler_TerminalImmutability(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 1, 0, "seller1")
	require.NoError(t, err)
	_, err = engine.PlaceBid(id, 100, "bidder1")
	require.NoError(t, err)

	tick(sched, 1)

	_, err = engine.PlaceBid(id, 200, "bidder2")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionEnded)

	a, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Len(t, a.BidHistory, 1)
}

// Test a cancelled auction is skipped by the sweep
func TestScheduler_SkipsCancelled(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 10, 0, "seller1")
	require.NoError(t, err)
	require.NoError(t, engine.CancelAuction(id, "seller1"))

	tick(sched, 3)

	a, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, a.Status)
	require.Nil(t, a.WinningBid)
}

// Test each tick advances every active auction independently
func TestScheduler_SweepsAllActive(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	short, err := engine.CreateAuction(testItem(), 2, 0, "seller1")
	require.NoError(t, err)
	long, err := engine.CreateAuction(testItem(), 10, 0, "seller1")
	require.NoError(t, err)

	tick(sched, 2)

	a, err := engine.GetAuctionDetails(short)
	require.NoError(t, err)
	require.True(t, a.Status.Terminal())

	b, err := engine.GetAuctionDetails(long)
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, b.Status)
	require.Equal(t, uint64(8), b.RemainingTime)
}

// Test bids racing ticks: every admitted bid lands before closure, the rest
// observe a terminal state
func TestScheduler_ConcurrentBidsAndTicks(t *testing.T) {
	t.Parallel()

	sched, engine, _ := newFixture(t)
	id, err := engine.CreateAuction(testItem(), 5, 0, "seller1")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		price := uint64(1)
		for {
			_, err := engine.PlaceBid(id, price, "bidder1")
			if err != nil {
				return // auction ended
			}
			price++
		}
	}()

	tick(sched, 5)
	<-done

	a, err := engine.GetAuctionDetails(id)
	require.NoError(t, err)
	require.True(t, a.Status.Terminal())
	for i := 1; i < len(a.BidHistory); i++ {
		require.Greater(t, a.BidHistory[i].Price, a.BidHistory[i-1].Price)
	}
	if a.Status == model.StatusClosed {
		require.Equal(t, a.BidHistory[len(a.BidHistory)-1].Price, a.WinningBid.Price)
	}
}

// Test Run ticks until the context is cancelled
func TestScheduler_Run(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryStore()
	engine := auctionSvc.NewAuctionEngine(store)
	sched := New(store, 5*time.Millisecond)

	id, err := engine.CreateAuction(testItem(), 2, 0, "seller1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go sched.Run(ctx)

	require.Eventually(t, func() bool {
		a, err := engine.GetAuctionDetails(id)
		return err == nil && a.Status.Terminal()
	}, time.Second, 5*time.Millisecond)

	cancel()
}

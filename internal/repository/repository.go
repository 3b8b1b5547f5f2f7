package repository

import (
	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"fmt"
	"sort"
	"sync"
)

// AuctionStore defines the auction storage interface for the engine
type AuctionStore interface {
	Create(item model.Item, durationSeconds, reservePrice uint64, creatorID string) (uint64, error)
	Get(auctionID uint64) (model.Auction, error)
	MutateIfActive(auctionID uint64, fn func(a *model.Auction) error) error
	ListActive() []model.Auction
	ActiveIDs() []uint64
	UserBids(userID string) []model.UserBid
}

// auctionRecord pairs one auction with its own lock. All read-modify-write on
// the auction goes through this lock, so a bid and a concurrent tick on the
// same auction never interleave.
type auctionRecord struct {
	mu      sync.Mutex
	auction model.Auction
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// The store mutex only guards the map shape and the id counter; each record
// carries its own mutex, so operations on different auctions run in parallel.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[uint64]*auctionRecord // key: auctionID
	nextID   uint64                    // strictly increasing, never reused

	indexMu  sync.RWMutex
	userBids map[string][]model.UserBid // key: userID -> bids in admission order
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[uint64]*auctionRecord),
		userBids: make(map[string][]model.UserBid),
	}
}

// Create validates the item and duration, assigns the next id and inserts a
// new Active auction.
func (s *MemoryStore) Create(item model.Item, durationSeconds, reservePrice uint64, creatorID string) (uint64, error) {
	if item.Title == "" || item.Description == "" {
		return 0, fmt.Errorf("create auction: %w - missing item title or description", auctionerrors.ErrInvalidInput)
	}
	if durationSeconds == 0 {
		return 0, fmt.Errorf("create auction: %w - zero duration", auctionerrors.ErrInvalidInput)
	}
	if creatorID == "" {
		return 0, fmt.Errorf("create auction: %w - missing creator", auctionerrors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.auctions[id] = &auctionRecord{
		auction: model.Auction{
			AuctionID:     id,
			Item:          item,
			CreatorID:     creatorID,
			RemainingTime: durationSeconds,
			ReservePrice:  reservePrice,
			Status:        model.StatusActive,
		},
	}
	return id, nil
}

// Get returns a copy of the auction with the given id.
func (s *MemoryStore) Get(auctionID uint64) (model.Auction, error) {
	rec, err := s.record(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return copyAuction(&rec.auction), nil
}

// MutateIfActive applies fn to the auction only if its status is Active at the
// time of application, under the record's exclusive lock. This is the single
// mutation entry point for both bid admission and closure, so no write ever
// lands on a terminal record. Bids fn appends to the history are mirrored into
// the user bid index before the lock is released, both-or-neither with fn's
// success.
func (s *MemoryStore) MutateIfActive(auctionID uint64, fn func(a *model.Auction) error) error {
	rec, err := s.record(auctionID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.auction.Status.Terminal() {
		return fmt.Errorf("mutate auction %d: %w", auctionID, auctionerrors.ErrAuctionEnded)
	}

	before := len(rec.auction.BidHistory)
	if err := fn(&rec.auction); err != nil {
		return err
	}
	if len(rec.auction.BidHistory) < before {
		return fmt.Errorf("mutate auction %d: bid history shrank: %w", auctionID, auctionerrors.ErrInternal)
	}

	for _, bid := range rec.auction.BidHistory[before:] {
		s.recordUserBid(bid)
	}
	return nil
}

// ListActive returns copies of all auctions still accepting bids.
func (s *MemoryStore) ListActive() []model.Auction {
	active := make([]model.Auction, 0)
	for _, rec := range s.records() {
		rec.mu.Lock()
		if rec.auction.Status == model.StatusActive && rec.auction.RemainingTime > 0 {
			active = append(active, copyAuction(&rec.auction))
		}
		rec.mu.Unlock()
	}
	sort.Slice(active, func(i, j int) bool { return active[i].AuctionID < active[j].AuctionID })
	return active
}

// ActiveIDs returns the ids of all Active auctions, in id order. The scheduler
// sweeps this snapshot; auctions closed mid-sweep are skipped by MutateIfActive.
func (s *MemoryStore) ActiveIDs() []uint64 {
	ids := make([]uint64, 0)
	for _, rec := range s.records() {
		rec.mu.Lock()
		if rec.auction.Status == model.StatusActive {
			ids = append(ids, rec.auction.AuctionID)
		}
		rec.mu.Unlock()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// UserBids returns the user's admitted bids in admission order. An unknown
// user yields an empty slice, not an error.
func (s *MemoryStore) UserBids(userID string) []model.UserBid {
	s.indexMu.RLock()
	defer s.indexMu.RUnlock()
	return append([]model.UserBid(nil), s.userBids[userID]...)
}

func (s *MemoryStore) record(auctionID uint64) (*auctionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return rec, nil
}

func (s *MemoryStore) records() []*auctionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]*auctionRecord, 0, len(s.auctions))
	for _, rec := range s.auctions {
		recs = append(recs, rec)
	}
	return recs
}

func (s *MemoryStore) recordUserBid(bid model.Bid) {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()
	s.userBids[bid.UserID] = append(s.userBids[bid.UserID], model.UserBid{
		AuctionID: bid.AuctionID,
		Bid:       bid,
	})
}

// copyAuction deep-copies an auction so callers never hold a reference into
// the store's mutable state.
func copyAuction(a *model.Auction) model.Auction {
	out := *a
	out.BidHistory = append([]model.Bid(nil), a.BidHistory...)
	if a.WinningBid != nil {
		win := *a.WinningBid
		out.WinningBid = &win
	}
	return out
}

package repository

import (
	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"fmt"
	"sort"
)

// SnapshotState is the serializable form of the store: the auctions and the id
// counter. The user bid index is not persisted; Restore derives it by
// replaying every auction's bid history, which reproduces identical contents
// because the index is defined as exactly the admitted bids in admission order.
type SnapshotState struct {
	NextID   uint64          `json:"next_id"`
	Auctions []model.Auction `json:"auctions"`
}

// Snapshot captures the full store state for the durable-storage collaborator.
func (s *MemoryStore) Snapshot() SnapshotState {
	s.mu.RLock()
	nextID := s.nextID
	s.mu.RUnlock()

	recs := s.records()
	auctions := make([]model.Auction, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		auctions = append(auctions, copyAuction(&rec.auction))
		rec.mu.Unlock()
	}

	return SnapshotState{NextID: nextID, Auctions: auctions}
}

// Restore replaces the store's contents with the snapshot and rebuilds the
// user bid index. It must only be called before the store is shared.
func (s *MemoryStore) Restore(state SnapshotState) error {
	auctions := make(map[uint64]*auctionRecord, len(state.Auctions))
	userBids := make(map[string][]model.UserBid)

	for _, a := range state.Auctions {
		if a.AuctionID == 0 || a.AuctionID > state.NextID {
			return fmt.Errorf("restore: auction id %d outside counter range %d: %w",
				a.AuctionID, state.NextID, auctionerrors.ErrInternal)
		}
		if _, exists := auctions[a.AuctionID]; exists {
			return fmt.Errorf("restore: duplicate auction id %d: %w", a.AuctionID, auctionerrors.ErrInternal)
		}
		cp := copyAuction(&a)
		auctions[a.AuctionID] = &auctionRecord{auction: cp}
	}

	// Replaying histories in global bid-time order rebuilds each user's index
	// in admission order.
	for _, bid := range bidsByTime(state.Auctions) {
		userBids[bid.UserID] = append(userBids[bid.UserID], model.UserBid{
			AuctionID: bid.AuctionID,
			Bid:       bid,
		})
	}

	s.mu.Lock()
	s.indexMu.Lock()
	s.auctions = auctions
	s.nextID = state.NextID
	s.userBids = userBids
	s.indexMu.Unlock()
	s.mu.Unlock()
	return nil
}

// bidsByTime merges all auctions' histories into one sequence ordered by bid
// time; the stable sort keeps per-auction chronological order on equal stamps.
func bidsByTime(auctions []model.Auction) []model.Bid {
	var bids []model.Bid
	for _, a := range auctions {
		bids = append(bids, a.BidHistory...)
	}
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	return bids
}

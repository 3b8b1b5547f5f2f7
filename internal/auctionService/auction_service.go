package auction

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"fmt"
	"time"
)

// AuctionEngine defines the business logic for running auctions: creation,
// bid admission, reserve management and queries. All mutation is delegated to
// the store's MutateIfActive, so terminal auctions can never change.
type AuctionEngine struct {
	store repository.AuctionStore
}

// NewAuctionEngine creates a new AuctionEngine instance
func NewAuctionEngine(store repository.AuctionStore) *AuctionEngine {
	return &AuctionEngine{
		store: store,
	}
}

// CreateAuction opens a new auction for an item and returns its id.
func (e *AuctionEngine) CreateAuction(item models.Item, durationSeconds, reservePrice uint64, creatorID string) (uint64, error) {
	id, err := e.store.Create(item, durationSeconds, reservePrice, creatorID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to create auction for %q by %s: %w", item.Title, creatorID, err)
	}
	return id, nil
}

// PlaceBid validates and records a user's bid on an auction. The whole
// admission protocol runs inside one MutateIfActive call: a tick racing the
// bid either closes the auction first (the bid fails with AuctionEnded) or
// waits for the bid to land. The reserve price is not consulted here; it only
// matters at closure.
func (e *AuctionEngine) PlaceBid(auctionID, price uint64, userID string) (models.Bid, error) {
	if userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing userID", auctionerrors.ErrInvalidInput)
	}
	if price == 0 {
		return models.Bid{}, fmt.Errorf("service: %w - zero bid price", auctionerrors.ErrInvalidInput)
	}

	var bid models.Bid
	err := e.store.MutateIfActive(auctionID, func(a *models.Auction) error {
		if a.RemainingTime == 0 {
			return fmt.Errorf("auction %d: %w", a.AuctionID, auctionerrors.ErrAuctionEnded)
		}
		if top := a.HighestBid(); top != nil && price <= top.Price {
			return &auctionerrors.BidTooLowError{CurrentHighest: top.Price}
		}

		bid = models.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: a.AuctionID,
			UserID:    userID,
			Price:     price,
			CreatedAt: time.Now().UTC(),
		}
		a.BidHistory = append(a.BidHistory, bid)
		return nil
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %d by user %s: %w", auctionID, userID, err)
	}

	return bid, nil
}

// SetReservePrice changes an auction's reserve. Only the creator may set it,
// and only while the auction is Active with no bids yet; a later change would
// retroactively break the guarantees bidders relied on.
func (e *AuctionEngine) SetReservePrice(auctionID, price uint64, userID string) error {
	if userID == "" {
		return fmt.Errorf("service: %w - missing userID", auctionerrors.ErrInvalidInput)
	}
	if price == 0 {
		return fmt.Errorf("service: %w - zero reserve price", auctionerrors.ErrInvalidInput)
	}

	err := e.store.MutateIfActive(auctionID, func(a *models.Auction) error {
		if a.CreatorID != userID {
			return fmt.Errorf("auction %d: %w - only the creator may set the reserve", a.AuctionID, auctionerrors.ErrNotAuthorized)
		}
		if len(a.BidHistory) > 0 {
			return fmt.Errorf("auction %d: %w - bids already placed", a.AuctionID, auctionerrors.ErrInvalidState)
		}
		a.ReservePrice = price
		return nil
	})
	if err != nil {
		return fmt.Errorf("service: failed to set reserve price on auction %d: %w", auctionID, err)
	}
	return nil
}

// CancelAuction withdraws an Active auction. Only the creator may cancel;
// Cancelled is terminal and never carries a winning bid.
func (e *AuctionEngine) CancelAuction(auctionID uint64, userID string) error {
	if userID == "" {
		return fmt.Errorf("service: %w - missing userID", auctionerrors.ErrInvalidInput)
	}

	err := e.store.MutateIfActive(auctionID, func(a *models.Auction) error {
		if a.CreatorID != userID {
			return fmt.Errorf("auction %d: %w - only the creator may cancel", a.AuctionID, auctionerrors.ErrNotAuthorized)
		}
		a.RemainingTime = 0
		a.Status = models.StatusCancelled
		return nil
	})
	if err != nil {
		return fmt.Errorf("service: failed to cancel auction %d: %w", auctionID, err)
	}
	return nil
}

// GetAuctionDetails returns a copy of the auction, bid history in
// chronological order.
func (e *AuctionEngine) GetAuctionDetails(auctionID uint64) (models.Auction, error) {
	a, err := e.store.Get(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	return a, nil
}

// ListActiveAuctions returns all auctions still accepting bids.
func (e *AuctionEngine) ListActiveAuctions() []models.Auction {
	return e.store.ListActive()
}

// GetUserBidHistory returns all bids a user has had admitted, in admission
// order. A user with no bids gets an empty slice.
func (e *AuctionEngine) GetUserBidHistory(userID string) ([]models.UserBid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	return e.store.UserBids(userID), nil
}

package models

import "time"

// AuctionStatus describes where an auction is in its lifecycle.
type AuctionStatus string

const (
	// StatusActive is the initial state; bids are admitted and time advances.
	StatusActive AuctionStatus = "active"
	// StatusClosed means the auction expired with a winning bid at or above the reserve.
	StatusClosed AuctionStatus = "closed"
	// StatusReserveNotMet means the auction expired with no bids, or with a
	// highest bid below the reserve price.
	StatusReserveNotMet AuctionStatus = "reserve_not_met"
	// StatusCancelled means the creator withdrew the auction before expiry.
	StatusCancelled AuctionStatus = "cancelled"
)

// Terminal reports whether no further bids or time advancement apply.
func (s AuctionStatus) Terminal() bool {
	return s != StatusActive
}

// Item describes the thing being sold. Immutable once attached to an auction.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       []byte `json:"image,omitempty"`
}

// Bid is an immutable, timestamped price offer tied to a user identity.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID uint64    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Price     uint64    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Auction tracks one item's sale from creation to terminal resolution.
// BidHistory is chronological, oldest first, append-only; consecutive bids
// strictly increase in price, so the highest bid is always the last element.
// ReservePrice zero means no reserve.
type Auction struct {
	AuctionID     uint64        `json:"auction_id"`
	Item          Item          `json:"item"`
	CreatorID     string        `json:"creator_id"`
	BidHistory    []Bid         `json:"bid_history"`
	RemainingTime uint64        `json:"remaining_time"`
	ReservePrice  uint64        `json:"reserve_price,omitempty"`
	Status        AuctionStatus `json:"status"`
	WinningBid    *Bid          `json:"winning_bid,omitempty"`
}

// HighestBid returns the current highest bid, or nil if there are no bids.
func (a *Auction) HighestBid() *Bid {
	if len(a.BidHistory) == 0 {
		return nil
	}
	return &a.BidHistory[len(a.BidHistory)-1]
}

// UserBid is one entry of a user's bid history: the auction the bid landed on
// plus a copy of the admitted bid.
type UserBid struct {
	AuctionID uint64 `json:"auction_id"`
	Bid       Bid    `json:"bid"`
}

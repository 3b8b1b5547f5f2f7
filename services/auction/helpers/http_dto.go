package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Image           []byte `json:"image"`
	DurationSeconds uint64 `json:"duration_seconds" binding:"required,gt=0"`
	ReservePrice    uint64 `json:"reserve_price"`
	CreatorID       string `json:"creator_id" binding:"required"`
}

type CreateAuctionResponse struct {
	AuctionID uint64 `json:"auction_id"`
}

type PlaceBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Price  uint64 `json:"price" binding:"required,gt=0"`
}

type SetReservePriceRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	ReservePrice uint64 `json:"reserve_price" binding:"required,gt=0"`
}

type CancelAuctionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID uint64 `json:"auction_id"`
	UserID    string `json:"user_id"`
	Price     uint64 `json:"price"`
	CreatedAt string `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID     uint64        `json:"auction_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	CreatorID     string        `json:"creator_id"`
	Status        string        `json:"status"`
	RemainingTime uint64        `json:"remaining_time"`
	ReservePrice  uint64        `json:"reserve_price,omitempty"`
	WinningBid    *BidResponse  `json:"winning_bid,omitempty"`
	Bids          []BidResponse `json:"bids"`
}

type UserBidResponse struct {
	AuctionID uint64      `json:"auction_id"`
	Bid       BidResponse `json:"bid"`
}

package auction

import (
	"auction-engine/internal/models"
)

// Resolve computes an expired auction's terminal status and winning bid from
// its history and reserve price. The highest bid is the last element of the
// history (bids strictly increase), so no scan is needed. Resolve never
// mutates; the caller applies the result under the store's record lock.
func Resolve(a *models.Auction) (models.AuctionStatus, *models.Bid) {
	top := a.HighestBid()
	if top == nil {
		// No bids, nothing to sell.
		return models.StatusReserveNotMet, nil
	}
	if top.Price >= a.ReservePrice {
		win := *top
		return models.StatusClosed, &win
	}
	return models.StatusReserveNotMet, nil
}

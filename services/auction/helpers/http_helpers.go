package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid price too low"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusGone, "auction has ended"
	case errors.Is(err, auctionerrors.ErrNotAuthorized):
		return http.StatusForbidden, "caller not authorized"
	case errors.Is(err, auctionerrors.ErrInvalidState):
		return http.StatusConflict, "auction state does not allow this"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a domain bid to its HTTP representation
func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		UserID:    b.UserID,
		Price:     b.Price,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuctionResponse converts a domain auction to its HTTP representation,
// bids in chronological order
func ToAuctionResponse(a model.Auction) AuctionResponse {
	bids := make([]BidResponse, 0, len(a.BidHistory))
	for _, b := range a.BidHistory {
		bids = append(bids, ToBidResponse(b))
	}

	resp := AuctionResponse{
		AuctionID:     a.AuctionID,
		Title:         a.Item.Title,
		Description:   a.Item.Description,
		CreatorID:     a.CreatorID,
		Status:        string(a.Status),
		RemainingTime: a.RemainingTime,
		ReservePrice:  a.ReservePrice,
		Bids:          bids,
	}
	if a.WinningBid != nil {
		win := ToBidResponse(*a.WinningBid)
		resp.WinningBid = &win
	}
	return resp
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(item model.Item, durationSeconds, reservePrice uint64, creatorID string) (uint64, error)
	PlaceBid(auctionID, price uint64, userID string) (model.Bid, error)
	SetReservePrice(auctionID, price uint64, userID string) error
	CancelAuction(auctionID uint64, userID string) error
	GetAuctionDetails(auctionID uint64) (model.Auction, error)
	ListActiveAuctions() []model.Auction
	GetUserBidHistory(userID string) ([]model.UserBid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	item := model.Item{Title: req.Title, Description: req.Description, Image: req.Image}
	id, err := h.service.CreateAuction(item, req.DurationSeconds, req.ReservePrice, req.CreatorID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler":    "CreateAuctionHandler",
			"title":      req.Title,
			"creator_id": req.CreatorID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CreateAuctionResponse{AuctionID: id}, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": id,
		"title":      req.Title,
		"creator_id": req.CreatorID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, ok := parseAuctionID(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(auctionID, req.Price, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"user_id":    req.UserID,
		"price":      bid.Price,
	})
}

// SetReservePriceHandler handles PUT /auctions/:auction_id/reserve
func (h *AuctionHandler) SetReservePriceHandler(c *gin.Context) {
	auctionID, ok := parseAuctionID(c, "SetReservePriceHandler")
	if !ok {
		return
	}

	var req helpers.SetReservePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetReservePriceHandler", err)
		return
	}

	if err := h.service.SetReservePrice(auctionID, req.ReservePrice, req.UserID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SetReservePriceHandler: failed to set reserve price", map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "reserve price updated successfully")
	helpers.LogSuccess("SetReservePriceHandler", "reserve price updated successfully", map[string]any{
		"auction_id":    auctionID,
		"user_id":       req.UserID,
		"reserve_price": req.ReservePrice,
	})
}

// CancelAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	auctionID, ok := parseAuctionID(c, "CancelAuctionHandler")
	if !ok {
		return
	}

	var req helpers.CancelAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelAuctionHandler", err)
		return
	}

	if err := h.service.CancelAuction(auctionID, req.UserID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelAuctionHandler: failed to cancel auction", map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    req.UserID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, ok := parseAuctionID(c, "GetAuctionHandler")
	if !ok {
		return
	}

	a, err := h.service.GetAuctionDetails(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(a), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"status":     string(a.Status),
	})
}

// ListActiveAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListActiveAuctionsHandler(c *gin.Context) {
	auctions := h.service.ListActiveAuctions()

	resp := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		resp = append(resp, helpers.ToAuctionResponse(a))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "active auctions retrieved successfully")
	helpers.LogSuccess("ListActiveAuctionsHandler", "active auctions retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetUserBidHistoryHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetUserBidHistoryHandler(c *gin.Context) {
	userID := c.Param("user_id")
	userBids, err := h.service.GetUserBidHistory(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserBidHistoryHandler: error retrieving bid history", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.UserBidResponse, 0, len(userBids))
	for _, ub := range userBids {
		resp = append(resp, helpers.UserBidResponse{
			AuctionID: ub.AuctionID,
			Bid:       helpers.ToBidResponse(ub.Bid),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid history retrieved successfully")
	helpers.LogSuccess("GetUserBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// parseAuctionID reads the :auction_id path parameter; on failure it writes
// the 400 response itself and returns ok=false.
func parseAuctionID(c *gin.Context, handlerName string) (uint64, bool) {
	raw := c.Param("auction_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", raw), "invalid auction id")
		utils.Warn(handlerName+": invalid auction id", map[string]any{"auction_id": raw})
		return 0, false
	}
	return id, true
}

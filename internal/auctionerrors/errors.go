package auctionerrors

import (
	"errors"
	"fmt"
)

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionEnded    = errors.New("auction ended")
	ErrInternal        = errors.New("internal auction state error")
)

// business logic errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrBidTooLow     = errors.New("bid too low")
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalidState  = errors.New("invalid auction state")
)

// BidTooLowError carries the current highest price so the caller can resubmit
// a valid bid. It matches ErrBidTooLow under errors.Is.
type BidTooLowError struct {
	CurrentHighest uint64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid too low: current highest bid is %d", e.CurrentHighest)
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}

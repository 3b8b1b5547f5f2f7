package repository

import (
	"auction-engine/internal/auctionerrors"
	"encoding/json"
	"testing"
	"time"

	model "auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

// seedStore builds a store with two auctions and interleaved bids from two users.
func seedStore(t *testing.T) (*MemoryStore, []uint64) {
	t.Helper()

	store := NewMemoryStore()
	id1, err := store.Create(newItem("Clock"), 10, 100, "creator")
	require.NoError(t, err)
	id2, err := store.Create(newItem("Vase"), 20, 0, "creator")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	appendBid(t, store, newBid("bid1", id1, "user1", 80, now))
	appendBid(t, store, newBid("bid2", id2, "user2", 40, now.Add(time.Second)))
	appendBid(t, store, newBid("bid3", id1, "user2", 150, now.Add(2*time.Second)))
	appendBid(t, store, newBid("bid4", id2, "user1", 60, now.Add(3*time.Second)))

	return store, []uint64{id1, id2}
}

// Test Snapshot/Restore roundtrip
func TestMemoryStore_SnapshotRestore(t *testing.T) {
	t.Parallel()

	store, ids := seedStore(t)
	state := store.Snapshot()

	// Snapshot must survive its wire format.
	data, err := json.Marshal(state)
	require.NoError(t, err)
	var decoded SnapshotState
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored := NewMemoryStore()
	require.NoError(t, restored.Restore(decoded))

	// Auctions come back identical.
	for _, id := range ids {
		want, err := store.Get(id)
		require.NoError(t, err)
		got, err := restored.Get(id)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// The user bid index is derived by replay and must reproduce identical contents.
	for _, userID := range []string{"user1", "user2"} {
		require.Equal(t, store.UserBids(userID), restored.UserBids(userID))
	}

	// The id counter is part of persisted state: the next id continues the sequence.
	nextID, err := restored.Create(newItem("Lamp"), 5, 0, "creator")
	require.NoError(t, err)
	require.Equal(t, state.NextID+1, nextID)
}

// Test Restore rejects corrupt snapshots
func TestMemoryStore_RestoreInvalid(t *testing.T) {
	t.Parallel()

	auction := func(id uint64) model.Auction {
		return model.Auction{
			AuctionID:     id,
			Item:          newItem("Clock"),
			CreatorID:     "creator",
			RemainingTime: 10,
			Status:        model.StatusActive,
		}
	}

	tests := []struct {
		name  string
		state SnapshotState
	}{
		{name: "id_above_counter", state: SnapshotState{NextID: 1, Auctions: []model.Auction{auction(2)}}},
		{name: "zero_id", state: SnapshotState{NextID: 1, Auctions: []model.Auction{auction(0)}}},
		{name: "duplicate_id", state: SnapshotState{NextID: 2, Auctions: []model.Auction{auction(1), auction(1)}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := NewMemoryStore()
			err := store.Restore(tc.state)
			require.ErrorIs(t, err, auctionerrors.ErrInternal)
		})
	}
}

package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"

	"github.com/gin-gonic/gin"
)

// TestEnv wires the full stack on an in-memory store. The scheduler is never
// started on a real clock; tests call Tick directly.
type TestEnv struct {
	Router    *gin.Engine
	Store     *repository.MemoryStore
	Scheduler *scheduler.Scheduler
}

// SetupTestEnv initializes the engine, router and scheduler for integration testing.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	engine := auction.NewAuctionEngine(store)
	return &TestEnv{
		Router:    server.SetupRouter(engine),
		Store:     store,
		Scheduler: scheduler.New(store, time.Second),
	}
}

// Tick advances auction time by n units.
func (env *TestEnv) Tick(n int) {
	for i := 0; i < n; i++ {
		env.Scheduler.Tick()
	}
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses the
// response envelope.
func (env *TestEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data extracts the envelope's data object, failing the test if absent.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}

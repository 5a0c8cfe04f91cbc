package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventdeck/eventdeck/internal/cache"
	"github.com/eventdeck/eventdeck/internal/middleware"
	"github.com/eventdeck/eventdeck/internal/store"
	"github.com/eventdeck/eventdeck/internal/testutil"
)

// testServer wraps an httptest server with the full API router and a session
// token carried between requests. Cookies are handled by hand because the
// session cookie is Secure and the test server speaks plain HTTP.
type testServer struct {
	t       *testing.T
	srv     *httptest.Server
	db      *sql.DB
	queries *store.Queries
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	mem := cache.NewMemoryCache(time.Minute)
	h := NewHandler(db, cache.NewCategories(mem, store.New(db), time.Minute))

	// Generous limiter so tests never trip it.
	limiter := middleware.NewRateLimiter(1000, 1000)
	srv := httptest.NewServer(h.Routes(db, limiter.Middleware()))

	t.Cleanup(func() {
		srv.Close()
		_ = mem.Close()
		cleanup()
	})

	return &testServer{t: t, srv: srv, db: db, queries: store.New(db)}
}

func (ts *testServer) request(method, path string, body any) *http.Response {
	ts.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			ts.t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	if err != nil {
		ts.t.Fatalf("building request: %v", err)
	}
	if ts.token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: ts.token})
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		ts.t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func (ts *testServer) mustStatus(resp *http.Response, want int) {
	ts.t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		ts.t.Fatalf("status = %d, want %d (body: %s)", resp.StatusCode, want, body)
	}
}

// registerAndLogin creates an account, logs in, and stores the session token
// for subsequent requests.
func (ts *testServer) registerAndLogin(username, password string) {
	ts.t.Helper()

	resp := ts.request(http.MethodPost, "/api/register",
		map[string]string{"username": username, "password": password})
	ts.mustStatus(resp, http.StatusCreated)
	resp.Body.Close()

	ts.login(username, password)
}

// login authenticates an existing account and stores the session token.
func (ts *testServer) login(username, password string) {
	ts.t.Helper()

	resp := ts.request(http.MethodPost, "/api/login",
		map[string]string{"username": username, "password": password})
	ts.mustStatus(resp, http.StatusOK)
	resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			ts.token = c.Value
			return
		}
	}
	ts.t.Fatal("login response carried no session cookie")
}

// decodeData unwraps the {"data": ...} envelope.
func decodeData[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var wrapper struct {
		Data T `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return wrapper.Data
}

package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second, nil), srv
}

func TestErrorNormalization(t *testing.T) {
	t.Run("ErrorField", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
			w.Write([]byte(`{"error":"boom"}`))
		}))
		defer srv.Close()

		err := c.get(context.Background(), "/api/webapp/profile", nil)
		require.Error(t, err)
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("DetailPreferredOverError", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(400)
			w.Write([]byte(`{"detail":"подробности","error":"generic"}`))
		}))
		defer srv.Close()

		err := c.get(context.Background(), "/x", nil)
		require.Error(t, err)
		assert.Equal(t, "подробности", err.Error())
	})

	t.Run("NoBodyFallsBackToStatus", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(503)
		}))
		defer srv.Close()

		err := c.get(context.Background(), "/x", nil)
		require.Error(t, err)
		assert.Equal(t, "HTTP 503", err.Error())
	})

	t.Run("CallStateCapturesError", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
			w.Write([]byte(`{"error":"boom"}`))
		}))
		defer srv.Close()

		var state CallState
		err := state.Run(func() error {
			return c.get(context.Background(), "/x", nil)
		})
		require.Error(t, err)
		assert.Equal(t, "boom", state.Err())
		assert.False(t, state.Loading())
	})
}

func TestRateLimitRewrite(t *testing.T) {
	t.Run("PrefixStripped", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(429)
			w.Write([]byte(`{"error":"telegram_rate_limit: retry after 37s"}`))
		}))
		defer srv.Close()

		err := c.get(context.Background(), "/x", nil)
		require.Error(t, err)
		assert.Equal(t, "retry after 37s", err.Error())
	})

	t.Run("EmptyAfterStripGetsGenericMessage", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(429)
			w.Write([]byte(`{"error":"telegram_rate_limit:"}`))
		}))
		defer srv.Close()

		err := c.get(context.Background(), "/x", nil)
		require.Error(t, err)
		assert.Equal(t, rateLimitMessage, err.Error())
	})

	t.Run("BareStatusGetsGenericMessage", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(429)
		}))
		defer srv.Close()

		err := c.get(context.Background(), "/x", nil)
		require.Error(t, err)
		assert.Equal(t, rateLimitMessage, err.Error())
	})
}

func TestAuthHeaderPrecedence(t *testing.T) {
	var gotInitData, gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotInitData = r.Header.Get("X-Init-Data")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	t.Run("InitDataWins", func(t *testing.T) {
		c, srv := newTestClient(handler)
		defer srv.Close()

		err := c.WithInitData("query_id=abc").WithBearer("tok").get(context.Background(), "/x", nil)
		require.NoError(t, err)
		assert.Equal(t, "query_id=abc", gotInitData)
		assert.Empty(t, gotAuth)
	})

	t.Run("BearerFallback", func(t *testing.T) {
		c, srv := newTestClient(handler)
		defer srv.Close()

		err := c.WithBearer("tok").get(context.Background(), "/x", nil)
		require.NoError(t, err)
		assert.Empty(t, gotInitData)
		assert.Equal(t, "Bearer tok", gotAuth)
	})

	t.Run("NoCredentialsNoHeaders", func(t *testing.T) {
		c, srv := newTestClient(handler)
		defer srv.Close()

		err := c.get(context.Background(), "/x", nil)
		require.NoError(t, err)
		assert.Empty(t, gotInitData)
		assert.Empty(t, gotAuth)
	})
}

func TestSuccessDecode(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/webapp/products", r.URL.Path)
		w.Write([]byte(`[{"id":1,"title":"Ключ","price_usd":9.99}]`))
	}))
	defer srv.Close()

	products, err := c.GetProducts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ключ", products[0].Title)
	assert.Equal(t, 9.99, products[0].PriceUSD)
}

func TestAdminUsersQueryEscaped(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "иван & co", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := c.AdminListUsers(context.Background(), "иван & co", 2)
	require.NoError(t, err)
}

func TestBulkStockSplit(t *testing.T) {
	var received []string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Entries []string `json:"entries"`
		}
		assert.NoError(t, jsonDecode(r, &body))
		received = body.Entries
		w.Write([]byte(`{"added":3}`))
	}))
	defer srv.Close()

	added, err := c.AdminAddStock(context.Background(), 7, "key-1\n\n  key-2  \nkey-3\n")
	require.NoError(t, err)
	assert.Equal(t, 3, added)
	assert.Equal(t, []string{"key-1", "key-2", "key-3"}, received)

	_, err = c.AdminAddStock(context.Background(), 7, "\n  \n")
	assert.Error(t, err)
}

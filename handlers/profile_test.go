package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/apiclient"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/config"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
)

func newNetworkRouter(t *testing.T, backend http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := &config.Config{DevMode: true, DefaultCurrency: "USD"}
	api := apiclient.New(srv.URL, 5*time.Second, nil)
	Init(cfg, api)

	r := gin.New()
	r.Use(middleware.Identity(cfg, api))
	r.GET("/network", NetworkHandler)
	return r
}

func TestNetworkHandlerLineBounds(t *testing.T) {
	t.Run("ZeroMeansAllLines", func(t *testing.T) {
		r := newNetworkRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "/api/webapp/referral/network", req.URL.Path)
			// line=0 – фильтр не передаётся, бэкенд отдаёт все линии
			assert.Empty(t, req.URL.Query().Get("line"))
			w.Write([]byte(`[]`))
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/network", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("LinePassedThrough", func(t *testing.T) {
		r := newNetworkRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "2", req.URL.Query().Get("line"))
			w.Write([]byte(`[]`))
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/network?line=2", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("OutOfRangeRejected", func(t *testing.T) {
		r := newNetworkRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			t.Error("backend must not be called for a bad line")
		}))

		for _, q := range []string{"line=4", "line=-1"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/network?"+q, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "line must be 0 (all lines), 1, 2 or 3")
		}
	})
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/redirect_detector/models"
	"github.com/vit0-9/redirect_detector/pkg/detector"
	"github.com/vit0-9/redirect_detector/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/short", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/landing?a=1&b=2", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/landing", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("welcome")) //nolint:errcheck
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 4096))) //nolint:errcheck
	})
	for i := 1; i <= 3; i++ {
		next := fmt.Sprintf("/r%d", i+1)
		mux.HandleFunc(fmt.Sprintf("/r%d", i), func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, next, http.StatusFound)
		})
	}
	mux.HandleFunc("/r4", func(w http.ResponseWriter, r *http.Request) {})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(m *metrics.PrometheusMetrics) *gin.Engine {
	h := NewRedirectHandlers(detector.DefaultBounds(), m)
	r := gin.New()
	r.GET("/resolve", h.ResolveRedirectHandler)
	r.POST("/resolve", h.ResolveRedirectPostHandler)
	return r
}

func doJSON(t *testing.T, r http.Handler, req *http.Request, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	return rec.Code
}

func TestResolveRedirectHandler(t *testing.T) {
	upstream := newUpstream(t)
	m := metrics.NewMetrics(prometheus.NewRegistry())
	router := newTestRouter(m)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/resolve?url="+url.QueryEscape(upstream.URL+"/short"), nil)
		var resp models.ResolveRedirectResponse
		code := doJSON(t, router, req, &resp)

		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, resp.Error)
		assert.Equal(t, models.SafeURLString(upstream.URL+"/landing?a=1&b=2"), resp.FinalURL)
		require.Len(t, resp.Hops, 2)
		assert.Equal(t, http.StatusMovedPermanently, resp.Hops[0].StatusCode)
		assert.Equal(t, models.SafeURLString("/landing?a=1&b=2"), resp.Hops[0].Location)
	})

	t.Run("resolution error is reported in body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/resolve?url="+url.QueryEscape(upstream.URL+"/loop"), nil)
		var resp models.ResolveRedirectResponse
		code := doJSON(t, router, req, &resp)

		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, resp.FinalURL)
		assert.Equal(t, "looped_redirects", resp.ErrorCode)
		assert.Contains(t, resp.Error, "looped redirects detected")
	})

	t.Run("request bounds tighten server bounds", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/resolve?max_redirects=2&url="+url.QueryEscape(upstream.URL+"/r1"), nil)
		var resp models.ResolveRedirectResponse
		doJSON(t, router, req, &resp)
		assert.Equal(t, "max_redirects", resp.ErrorCode)

		req = httptest.NewRequest(http.MethodGet, "/resolve?max_body_size=100&url="+url.QueryEscape(upstream.URL+"/big"), nil)
		resp = models.ResolveRedirectResponse{}
		doJSON(t, router, req, &resp)
		assert.Equal(t, "max_response_size", resp.ErrorCode)
	})

	t.Run("missing url", func(t *testing.T) {
		var resp models.APIErrorResponse
		code := doJSON(t, router, httptest.NewRequest(http.MethodGet, "/resolve", nil), &resp)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid_query", resp.ErrorCode)
	})

	t.Run("invalid url", func(t *testing.T) {
		var resp models.APIErrorResponse
		code := doJSON(t, router, httptest.NewRequest(http.MethodGet, "/resolve?url=not-a-url", nil), &resp)

		assert.Equal(t, http.StatusBadRequest, code)
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Detections.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Detections.WithLabelValues("looped_redirects")))
}

func TestResolveRedirectPostHandler(t *testing.T) {
	upstream := newUpstream(t)
	router := newTestRouter(metrics.NewMetrics(prometheus.NewRegistry()))

	t.Run("success", func(t *testing.T) {
		body := `{"url":"` + upstream.URL + `/r1","max_redirects":4}`
		req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		var resp models.ResolveRedirectResponse
		code := doJSON(t, router, req, &resp)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, models.SafeURLString(upstream.URL+"/r4"), resp.FinalURL)
		assert.Len(t, resp.Hops, 4)
	})

	t.Run("invalid payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(`{"url":"x","max_redirects":0}`))
		req.Header.Set("Content-Type", "application/json")

		var resp models.APIErrorResponse
		code := doJSON(t, router, req, &resp)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid_payload", resp.ErrorCode)
	})
}

func TestResolveRedirectHandlerKeepsQueryLiteral(t *testing.T) {
	upstream := newUpstream(t)
	router := newTestRouter(metrics.NewMetrics(prometheus.NewRegistry()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resolve?url="+url.QueryEscape(upstream.URL+"/short"), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"final_url":"`+upstream.URL+`/landing?a=1&b=2"`)
	assert.NotContains(t, rec.Body.String(), `\u0026`)
}

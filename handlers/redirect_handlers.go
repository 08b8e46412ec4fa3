package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vit0-9/redirect_detector/models"
	"github.com/vit0-9/redirect_detector/pkg/detector"
	"github.com/vit0-9/redirect_detector/pkg/metrics"
)

// RedirectHandlers exposes redirect chain resolution over HTTP.
type RedirectHandlers struct {
	bounds  detector.Bounds
	opts    []detector.Option
	metrics *metrics.PrometheusMetrics
}

// NewRedirectHandlers uses bounds as the ceiling for every request. opts are
// applied to each per-request detector (client options, fetcher, logger).
func NewRedirectHandlers(bounds detector.Bounds, m *metrics.PrometheusMetrics, opts ...detector.Option) *RedirectHandlers {
	return &RedirectHandlers{
		bounds:  bounds,
		opts:    opts,
		metrics: m,
	}
}

// ResolveRedirectHandler godoc
// @Summary      Resolve URL Redirects
// @Description  Follows HTTP redirects for a given URL (e.g., a shortlink) without downloading intermediate bodies and returns the final destination URL.
// @Tags         URL Manipulation
// @Produce      json
// @Param        url query string true "URL to resolve"
// @Param        max_redirects query int false "Hop ceiling, may only lower the server default"
// @Param        max_body_size query int false "Byte ceiling for the final body, may only lower the server default"
// @Success      200 {object} models.ResolveRedirectResponse "Successfully resolved URL or error during resolution"
// @Failure      400 {object} models.APIErrorResponse "Error: Invalid input (e.g., missing URL)"
// @Router       /url/resolve-redirect [get]
func (h *RedirectHandlers) ResolveRedirectHandler(c *gin.Context) {
	var req models.ResolveRedirectRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "invalid_query", "url query parameter is required and must be a valid URL", err)
		return
	}
	h.resolve(c, req)
}

// ResolveRedirectPostHandler godoc
// @Summary      Resolve URL Redirects
// @Description  Same as the GET variant, for URLs too long to pass as a query parameter.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        request body models.ResolveRedirectRequest true "URL to resolve"
// @Success      200 {object} models.ResolveRedirectResponse "Successfully resolved URL or error during resolution"
// @Failure      400 {object} models.APIErrorResponse "Error: Invalid request payload"
// @Router       /url/resolve-redirect [post]
func (h *RedirectHandlers) ResolveRedirectPostHandler(c *gin.Context) {
	var req models.ResolveRedirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_payload", "Invalid request payload", err)
		return
	}
	h.resolve(c, req)
}

func (h *RedirectHandlers) resolve(c *gin.Context, req models.ResolveRedirectRequest) {
	b := h.bounds
	if req.MaxRedirects > 0 && req.MaxRedirects < b.MaxRedirects {
		b.MaxRedirects = req.MaxRedirects
	}
	if req.MaxBodySize > 0 && req.MaxBodySize < b.MaxBodySize {
		b.MaxBodySize = req.MaxBodySize
	}

	opts := make([]detector.Option, 0, len(h.opts)+1)
	opts = append(opts, h.opts...)
	opts = append(opts, detector.WithBounds(b))

	start := time.Now()
	res, err := detector.New(opts...).Detect(c.Request.Context(), req.URL)
	h.metrics.Observe(res, err, time.Since(start))

	if err != nil {
		log.Warn().Err(err).Str("url", req.URL).Str("code", detector.CodeOf(err)).Msg("Redirect resolution failed")
		c.PureJSON(http.StatusOK, models.ResolveRedirectResponse{ // Still 200 but with error in body
			OriginalURL: models.SafeURLString(req.URL),
			Error:       err.Error(),
			ErrorCode:   detector.CodeOf(err),
		})
		return
	}

	hops := make([]models.RedirectHop, len(res.Hops))
	for i, hop := range res.Hops {
		hops[i] = models.RedirectHop{
			URL:        models.SafeURLString(hop.URL),
			StatusCode: hop.StatusCode,
			Location:   models.SafeURLString(hop.Location),
		}
	}
	c.PureJSON(http.StatusOK, models.ResolveRedirectResponse{
		OriginalURL: models.SafeURLString(req.URL),
		FinalURL:    models.SafeURLString(res.URL),
		Hops:        hops,
	})
}

func badRequest(c *gin.Context, code, msg string, err error) {
	c.JSON(http.StatusBadRequest, models.APIErrorResponse{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  code,
		Message:    msg,
		Details:    err.Error(),
	})
}

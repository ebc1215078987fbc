package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"scholarhub/internal/db"
)

// StatusReporter exposes the connection manager's state.
type StatusReporter interface {
	Status() db.Status
}

// Pinger reports whether an optional dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DiagConfig lists what is configured, never the secret values themselves.
type DiagConfig struct {
	Env               string
	MongoURISet       bool
	MongoPartsSet     bool
	PaymentKeySet     bool
	JWTVerification   bool
	FallbackEnabled   bool
	CacheConfigured   bool
	AllowedCORSOrigin []string
}

// HealthHandler serves liveness and diagnostic probes.
type HealthHandler struct {
	status    StatusReporter
	cache     Pinger
	diag      DiagConfig
	startedAt time.Time
}

// NewHealthHandler creates a health handler. cache may be nil.
func NewHealthHandler(status StatusReporter, cache Pinger, diag DiagConfig, startedAt time.Time) *HealthHandler {
	return &HealthHandler{status: status, cache: cache, diag: diag, startedAt: startedAt}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"dbConnected"`
	Uptime      string `json:"uptime"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	st := h.status.Status()
	status := "ok"
	if !st.Connected {
		status = "degraded"
	}
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      status,
		DBConnected: st.Connected,
		Uptime:      time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

// Diag godoc
// @Summary Environment and connectivity diagnostics
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /diag [get]
func (h *HealthHandler) Diag(c echo.Context) error {
	st := h.status.Status()

	cacheState := "disabled"
	if h.diag.CacheConfigured && h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			cacheState = "unreachable: " + err.Error()
		} else {
			cacheState = "ok"
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"env": h.diag.Env,
		"database": echo.Map{
			"name":        db.DatabaseName,
			"connected":   st.Connected,
			"attempts":    st.Attempts,
			"lastError":   st.LastError,
			"lastAttempt": st.LastAttempt,
			"collections": []string{db.UsersCollection, db.ScholarshipsCollection, db.ReviewsCollection, db.ApplicationsCollection},
		},
		"config": echo.Map{
			"mongoUriSet":     h.diag.MongoURISet,
			"mongoCredsSet":   h.diag.MongoPartsSet,
			"paymentKeySet":   h.diag.PaymentKeySet,
			"jwtVerification": h.diag.JWTVerification,
			"fallbackEnabled": h.diag.FallbackEnabled,
			"corsOrigins":     h.diag.AllowedCORSOrigin,
		},
		"cache":     cacheState,
		"goVersion": runtime.Version(),
		"uptime":    time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

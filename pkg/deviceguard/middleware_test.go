package deviceguard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekit/quotekit/pkg/deviceguard"
)

func allowAll(r *http.Request) bool { return true }
func denyAll(r *http.Request) bool  { return false }

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func blockedDecision() deviceguard.Decision {
	return deviceguard.Decision{
		Allowed:      false,
		DeviceType:   deviceguard.DeviceDesktop,
		CurrentCount: deviceguard.Counts{Desktop: 2, Mobile: 0},
		Limits:       deviceguard.Counts{Desktop: 2, Mobile: 3},
	}
}

func newRouter(hasSession, isTechnician deviceguard.SessionPredicate, decision deviceguard.Decision) *chi.Mux {
	r := chi.NewRouter()
	r.Use(deviceguard.RequireDevice(hasSession, isTechnician,
		func(*http.Request) deviceguard.Decision { return decision }))
	r.Get("/quotes", okHandler)
	return r
}

func TestRequireDevice(t *testing.T) {
	t.Parallel()

	t.Run("allows when the decision allows", func(t *testing.T) {
		t.Parallel()

		router := newRouter(allowAll, denyAll, deviceguard.Decision{Allowed: true})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blocks an authenticated session over the limit", func(t *testing.T) {
		t.Parallel()

		router := newRouter(allowAll, denyAll, blockedDecision())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes", nil))

		require.Equal(t, http.StatusForbidden, rec.Code)

		var body struct {
			Error    string               `json:"error"`
			Message  string               `json:"message"`
			Decision deviceguard.Decision `json:"decision"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "device_limit_reached", body.Error)
		assert.Contains(t, body.Message, "desktop device limit")
		assert.Equal(t, blockedDecision(), body.Decision)
	})

	t.Run("passes through without a session", func(t *testing.T) {
		t.Parallel()

		router := newRouter(denyAll, denyAll, blockedDecision())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("technician sessions bypass the limit", func(t *testing.T) {
		t.Parallel()

		router := newRouter(allowAll, allowAll, blockedDecision())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mobile denial carries mobile remediation", func(t *testing.T) {
		t.Parallel()

		decision := blockedDecision()
		decision.DeviceType = deviceguard.DeviceMobile

		router := newRouter(allowAll, denyAll, decision)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes", nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "mobile device limit")
	})

	t.Run("nil decision func panics at construction", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { deviceguard.RequireDevice(allowAll, nil, nil) })
	})
}

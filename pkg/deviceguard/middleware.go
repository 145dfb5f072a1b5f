package deviceguard

import (
	"encoding/json"
	"net/http"
)

// blockedResponse is the payload rendered on a device-limit denial. The
// decision rides along so the UI can show counts, and the message gives
// the user an actionable next step instead of a bare error.
type blockedResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message"`
	Decision Decision `json:"decision"`
}

// RequireDevice protects routes with the device-limit decision. The
// middleware denies with 403 whenever an authenticated session exists and
// the collaborator's decision is not allowed; requests without a session
// pass through (authentication is a separate concern), and technician
// sessions bypass the limit entirely.
//
// Device denial is independent of subscription tier: it applies to any
// plan, and tier gates keep evaluating on their own.
func RequireDevice(hasSession, isTechnician SessionPredicate, decide DecisionFunc) func(http.Handler) http.Handler {
	if decide == nil {
		panic("deviceguard: decision func is required")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hasSession != nil && !hasSession(r) {
				next.ServeHTTP(w, r)
				return
			}
			if isTechnician != nil && isTechnician(r) {
				next.ServeHTTP(w, r)
				return
			}

			decision := decide(r)
			if decision.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(blockedResponse{
				Error:    "device_limit_reached",
				Message:  remediation(decision),
				Decision: decision,
			})
		})
	}
}

func remediation(d Decision) string {
	switch d.DeviceType {
	case DeviceMobile:
		return "This account has reached its mobile device limit. Sign out on another mobile device or upgrade your plan to add more."
	default:
		return "This account has reached its desktop device limit. Sign out on another desktop or upgrade your plan to add more."
	}
}

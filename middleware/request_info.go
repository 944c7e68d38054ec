package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/badapples/registry/userctx"
)

// RequestInfo captures the requester IP and user agent for audit entries
func RequestInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := userctx.RequestInfo{
			IPAddress: getIPAddress(r),
			UserAgent: r.UserAgent(),
		}
		next.ServeHTTP(w, r.WithContext(userctx.SetRequestInfo(r.Context(), info)))
	})
}

// getIPAddress extracts the client IP address from the request
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr == "" {
		return userctx.UnknownIP
	}
	return r.RemoteAddr
}

package middleware

import (
	"net"
	"net/http"
	"strings"
)

// clientIP адрес клиента для лимитов и логов
// Заголовки прокси (первый адрес X-Forwarded-For, затем X-Real-IP) учитываются только при trustProxy
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				return ip
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

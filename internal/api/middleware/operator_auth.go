package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/studio-service/internal/api/handlers"
)

const (
	// OperatorTokenHeader заголовок с токеном оператора студии
	OperatorTokenHeader = "X-Operator-Token"

	msgUnauthorized = "Operator token is missing or invalid"
)

// OperatorAuth пропускает запрос только с корректным X-Operator-Token
// Пустой токен в конфигурации закрывает операторские эндпоинты полностью
func OperatorAuth(token string, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(OperatorTokenHeader)
			if token == "" || provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Operator auth failed: ip=%s", r.Method, r.URL.Path, clientIP(r, false))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

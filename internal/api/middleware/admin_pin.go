package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

// AdminPinHeader заголовок с PIN администратора
const AdminPinHeader = "X-Admin-Pin"

const msgInvalidPin = "Invalid PIN"

// AdminPin пропускает запрос только с верным PIN в заголовке X-Admin-Pin.
// Если PIN не задан, доступ открыт.
func AdminPin(verifier PinVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := verifier.Verify(r.Header.Get(AdminPinHeader)); err != nil {
				logger.Warn("%s %s - Admin PIN rejected: remote=%s", r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondUnauthorized(w, msgInvalidPin)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

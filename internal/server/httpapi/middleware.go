package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/r2vault/internal/common"
	"github.com/dmitrijs2005/r2vault/internal/server/auth"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// SubjectFromContext returns the verified token subject attached by the
// auth gate.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

// exemptRoutes are reachable without a token: the routes that produce a
// token in the first place, plus liveness.
var exemptRoutes = map[string]struct{}{
	"/api/auth/register": {},
	"/api/auth/login":    {},
	"/api/ping":          {},
}

// authGate rejects every non-exempt request that does not carry a valid
// "Bearer <token>" Authorization header, and injects the verified subject
// into the request context otherwise. It holds no state between requests.
func (s *Server) authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if _, ok := exemptRoutes[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "missing token"})
			return
		}

		token, ok := strings.CutPrefix(header, common.BearerSchemePrefix)
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "authorization header must be of the form: Bearer <token>"})
			return
		}

		subject, err := auth.GetSubjectFromToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "error", err)
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey, subject)))
	})
}

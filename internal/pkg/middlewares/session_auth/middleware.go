package session_auth

import (
	"context"
	"errors"
	"net/http"

	"expresso/internal/entities"
	"expresso/internal/pkg/web"
	"expresso/internal/service/auth"
	"expresso/pkg/logger"
)

type ctxKey struct{}

// AccountFrom extracts the authenticated account placed by Middleware.
func AccountFrom(ctx context.Context) (*entities.Account, bool) {
	account, ok := ctx.Value(ctxKey{}).(*entities.Account)
	return account, ok
}

// WithAccount is exported for handler tests.
func WithAccount(ctx context.Context, account *entities.Account) context.Context {
	return context.WithValue(ctx, ctxKey{}, account)
}

// Middleware gates staff routes. It resolves the cookie token to an account
// through the auth service and threads the identity via the request context;
// anything short of a valid session redirects to the login page without
// touching the wrapped handler.
func Middleware(log handlerLogger, store *web.Store, service AuthService) func(http.Handler) http.Handler {
	mwLog := log.With()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := store.Token(r)

			account, err := service.ValidateSession(r.Context(), token)
			if err != nil {
				if !errors.Is(err, auth.ErrUnauthenticated) {
					mwLog.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("session validation")
				}
				http.Redirect(w, r, "/gestao", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/vinhyan/midland-library/internal/session"
)

// SessionMiddleware attaches a session to every request. A request with no
// cookie, an unverifiable cookie, or an expired server-side entry gets a
// fresh anonymous session and a new signed cookie.
func SessionMiddleware(codec session.Codec, store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := loadSession(r, codec, store)

			http.SetCookie(w, &http.Cookie{
				Name:     session.CookieName,
				Value:    codec.Encode(sess.ID),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := session.NewContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loadSession(r *http.Request, codec session.Codec, store session.Store) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return session.New(uuid.NewString(), session.Data{}, store)
	}

	id, err := codec.Decode(cookie.Value)
	if err != nil {
		return session.New(uuid.NewString(), session.Data{}, store)
	}

	data, err := store.Get(r.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		// Known id, no server-side state yet. Keep the id so the
		// cookie stays stable across anonymous requests.
		return session.New(id, session.Data{}, store)
	}
	if err != nil {
		return session.New(uuid.NewString(), session.Data{}, store)
	}

	return session.New(id, data, store)
}

package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "expresso_session"
	tokenKey    = "token"

	flashSuccess = "_flash_success"
	flashError   = "_flash_error"
)

// Store keeps the opaque session token and flash messages in a signed
// cookie. All authoritative session state lives server-side; the cookie
// only carries the token.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string) *Store {
	cookieStore := sessions.NewCookieStore([]byte(secret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{cookies: cookieStore}
}

// Token returns the session token from the request cookie, or "" when the
// client has none. A tampered cookie decodes to an empty session, so it
// degrades to the unauthenticated case.
func (s *Store) Token(r *http.Request) string {
	session, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return ""
	}

	token, _ := session.Values[tokenKey].(string)
	return token
}

func (s *Store) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	session, _ := s.cookies.Get(r, sessionName)
	session.Values[tokenKey] = token
	return session.Save(r, w)
}

func (s *Store) ClearToken(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.cookies.Get(r, sessionName)
	delete(session.Values, tokenKey)
	return session.Save(r, w)
}

// Flash is a one-shot user-facing message, consumed on the next page render.
type Flash struct {
	Kind string // "success" or "error"
	Text string
}

func (s *Store) AddFlashSuccess(w http.ResponseWriter, r *http.Request, text string) error {
	return s.addFlash(w, r, flashSuccess, text)
}

func (s *Store) AddFlashError(w http.ResponseWriter, r *http.Request, text string) error {
	return s.addFlash(w, r, flashError, text)
}

func (s *Store) addFlash(w http.ResponseWriter, r *http.Request, key, text string) error {
	session, _ := s.cookies.Get(r, sessionName)
	session.AddFlash(text, key)
	return session.Save(r, w)
}

// Flashes drains pending flash messages and persists their removal.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return nil
	}

	var flashes []Flash
	for _, raw := range session.Flashes(flashSuccess) {
		if text, ok := raw.(string); ok {
			flashes = append(flashes, Flash{Kind: "success", Text: text})
		}
	}
	for _, raw := range session.Flashes(flashError) {
		if text, ok := raw.(string); ok {
			flashes = append(flashes, Flash{Kind: "error", Text: text})
		}
	}

	if len(flashes) > 0 {
		_ = session.Save(r, w)
	}
	return flashes
}

package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the single cookie carrying the admin session token.
const SessionCookieName = "admin-session"

// CookieAdapter binds session tokens to the transport layer. Secure is only
// set in production so logins over plain HTTP still work in local dev.
type CookieAdapter struct {
	Secure bool
}

// Persist sets the session cookie, overwriting any existing one.
func (a *CookieAdapter) Persist(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		Secure:   a.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the raw token string from the request, if present.
func (a *CookieAdapter) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear replaces the cookie with an expired empty one. Clearing a cookie
// that was never set is not an error.
func (a *CookieAdapter) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

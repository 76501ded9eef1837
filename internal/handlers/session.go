package handlers

import (
	"net/http"
	"time"

	"github.com/nguyentuan-2001/wedding/internal/visitor"
)

const sessionCookieName = "wedding_visit"

func sessionIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

// openSession resolves the visitor's session, creating one and setting the
// cookie when needed.
func openSession(w http.ResponseWriter, r *http.Request, sessions *visitor.Store) *visitor.Session {
	current := sessionIDFromCookie(r)
	sess, _ := sessions.Open(current, time.Now())
	if sess.ID != current {
		setSessionCookie(w, sess.ID)
	}
	return sess
}

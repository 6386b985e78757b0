package views

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookieName = "medtrack_flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot banner carried across a redirect.
type Flash struct {
	Kind    string
	Message string
}

func SetFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the pending flash, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return Flash{}
	}
	kind, message, found := strings.Cut(value, "|")
	if !found {
		return Flash{}
	}
	return Flash{Kind: kind, Message: message}
}

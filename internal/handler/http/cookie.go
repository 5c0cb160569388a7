package http

import "net/http"

// sameSiteFromConfig maps the configured SameSite mode onto the net/http
// constant. An empty or unknown value falls back to the browser default.
func sameSiteFromConfig(mode string) http.SameSite {
	switch mode {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}

// attachTokenCookie sets the session cookie carrying the signed token on
// successful registration and login responses. The cookie path is always "/";
// name, domain, and the security attributes come from configuration.
func (h *Handler) attachTokenCookie(w http.ResponseWriter, signedToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    signedToken,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Secure:   h.cookie.Secure,
		HttpOnly: h.cookie.HTTPOnly,
		SameSite: sameSiteFromConfig(h.cookie.SameSite),
	})
}

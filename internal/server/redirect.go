package server

import (
	"net/http"
	"net/url"
	"strings"
)

// isLocalPath accepts only paths on this host. Browsers treat "//host" and
// a backslash variant of it as links to another host.
func isLocalPath(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}

	u, err := url.Parse(target)
	if err != nil {
		return false
	}

	return u.Scheme == "" && u.Host == ""
}

func (s *Service) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, target, notice string) {
	http.Redirect(w, r, withFlash(target, "notice", notice), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, target, msg string) {
	http.Redirect(w, r, withFlash(target, "error", msg), http.StatusSeeOther)
}

// withFlash adds a one-shot message to target, keeping any query it already
// carries.
func withFlash(target, key, msg string) string {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}

	q := u.Query()
	q.Del("notice")
	q.Del("error")
	q.Set(key, msg)
	u.RawQuery = q.Encode()

	return u.String()
}

// withQuery re-attaches a filter query string so a form post returns to the
// same filtered view.
func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// Package pagerender centralizes page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/warmpool/sprite-terminal/internal/web/platform/httpx"
)

// WritePage renders a templ component as a full HTML response.
func WritePage(w http.ResponseWriter, r *http.Request, statusCode int, page templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if page == nil {
		w.WriteHeader(statusCode)
		return nil
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return page.Render(httpx.RequestContext(r), w)
}

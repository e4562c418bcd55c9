package web

import (
	"net/http"

	"github.com/warmpool/sprite-terminal/internal/web/platform/httpx"
	"github.com/warmpool/sprite-terminal/internal/web/static"
	"github.com/warmpool/sprite-terminal/internal/web/weberror"
)

// newRouter wires the service routes. Defined paths reject other methods
// with 405; unmatched paths get the styled 404.
func newRouter(h *handlers) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" /{$}", h.home)
	mux.HandleFunc(http.MethodGet+" /health", h.health)
	mux.HandleFunc(http.MethodGet+" /info", h.sysInfo)
	mux.HandleFunc(http.MethodGet+" /api/sequence", h.sequenceSchedule)
	mux.Handle(http.MethodGet+" /static/",
		http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	rejectOtherMethods := httpx.MethodNotAllowed(http.MethodGet)
	for _, pattern := range []string{"/{$}", "/health", "/info", "/api/sequence", "/static/"} {
		mux.Handle(pattern, rejectOtherMethods)
	}

	mux.HandleFunc("/{rest...}", func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteErrorPage(w, r, http.StatusNotFound)
	})
	return mux
}

// Package weberror renders terminal-styled error responses.
package weberror

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	apperrors "github.com/warmpool/sprite-terminal/internal/web/platform/errors"
	"github.com/warmpool/sprite-terminal/internal/web/pagerender"
)

// ShouldRenderErrorPage reports whether status gets the styled error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// ErrorPage builds a minimal terminal-styled error document.
func ErrorPage(statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		text := http.StatusText(statusCode)
		if text == "" {
			text = "Error"
		}
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html>
<html>
<head><title>%d %s</title><link rel="stylesheet" href="/static/terminal.css"></head>
<body>
<div class="container">
<div class="terminal-window">
<div class="terminal-header"><div class="terminal-dot red"></div><div class="terminal-dot yellow"></div><div class="terminal-dot green"></div><span class="terminal-title">/dev/null</span></div>
<div class="terminal-body">
<p><span class="prompt">$</span> <span class="cmd">cat %s</span></p>
<p class="output error">cat: %s: No such file or directory (%d)</p>
<p class="prose"><a href="/">return to the warm pool</a></p>
</div>
</div>
</div>
</body>
</html>
`,
			statusCode,
			templ.EscapeString(text),
			templ.EscapeString(text),
			templ.EscapeString(text),
			statusCode,
		)
		return err
	})
}

// WriteErrorPage writes a styled error response for 404/5xx statuses.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	if err := pagerender.WritePage(w, r, statusCode, ErrorPage(statusCode)); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteError maps a typed application error to the right response shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, statusCode)
		return
	}
	http.Error(w, err.Error(), statusCode)
}

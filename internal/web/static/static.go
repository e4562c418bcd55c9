package static

import "embed"

// FS exposes the terminal page assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS

// Package content embeds the story document.
package content

import "embed"

//go:embed story.yaml
var FS embed.FS

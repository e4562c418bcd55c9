// Package templates renders the terminal page as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/warmpool/sprite-terminal/internal/story"
	"github.com/warmpool/sprite-terminal/internal/sysinfo"
)

// Warm pool figures shown in the status cards.
const (
	PoolPeers           = 28471
	InstancesIntegrated = 2641847
	InstancesDeclined   = 205446
)

// PageData carries everything the terminal page needs.
type PageData struct {
	Doc  *story.Document
	Info sysinfo.Snapshot
	Grid []sysinfo.Node
}

// htmlWriter collects output and remembers the first write error so
// component bodies stay linear instead of checking every Fprintf.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) rawf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// Page builds the complete terminal story document.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw("<!DOCTYPE html>\n<html>\n<head>\n")
		h.rawf("<title>%s | %s</title>\n", templ.EscapeString(data.Info.Hostname), templ.EscapeString(data.Doc.Title))
		h.raw(`<meta charset="utf-8">` + "\n")
		h.raw(`<link rel="stylesheet" href="/static/terminal.css">` + "\n")
		h.raw("</head>\n")
		h.raw(`<body class="flicker">` + "\n")
		h.raw(`<canvas id="matrix-bg"></canvas>` + "\n")
		h.raw(`<div class="scanlines"></div>` + "\n")
		h.raw(`<div id="boot-sequence"><div id="boot-log"></div></div>` + "\n")
		h.raw(`<div class="container" id="main-content" style="opacity: 0;">` + "\n")
		if h.err != nil {
			return h.err
		}

		if err := bannerWindow(data.Doc).Render(ctx, w); err != nil {
			return err
		}
		for _, chapter := range data.Doc.Chapters {
			if err := ChapterWindow(chapter).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := WarmPoolCard(data.Grid).Render(ctx, w); err != nil {
			return err
		}
		if err := SysInfoCard(data.Info).Render(ctx, w); err != nil {
			return err
		}

		h.raw(`<div class="quote coda">`)
		h.text(data.Doc.Coda)
		h.raw("</div>\n")
		h.raw("</div>\n")
		h.raw(`<script src="/static/app.js"></script>` + "\n")
		h.raw("</body>\n</html>\n")
		return h.err
	})
}

// bannerWindow renders the prologue window with the ASCII banner and quote.
func bannerWindow(doc *story.Document) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		windowHead(h, "/dev/null", "")
		h.raw(`<pre class="ascii-art">`)
		h.text(doc.Banner)
		h.raw("</pre>\n")
		h.raw(`<p class="quote">`)
		h.text(doc.Quote)
		h.raw("</p>\n")
		windowFoot(h)
		return h.err
	})
}

// ChapterWindow renders one chapter as a terminal window.
func ChapterWindow(chapter story.Chapter) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		windowHead(h, chapter.File, chapter.Badge)
		h.raw(`<div class="story">` + "\n")
		h.raw(`<div class="story-chapter">`)
		h.text(chapter.Heading)
		h.raw("</div>\n")
		if h.err != nil {
			return h.err
		}
		for _, block := range chapter.Blocks {
			if err := StoryBlock(block).Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw("</div>\n")
		windowFoot(h)
		return h.err
	})
}

// StoryBlock renders a single story block. Every block carries the
// "reveal" class the client sequencer uses to step through the text.
func StoryBlock(block story.Block) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		switch block.Kind {
		case story.KindProse:
			h.raw(`<p class="prose reveal">`)
			h.text(block.Text)
			h.raw("</p>\n")
		case story.KindCommand:
			h.raw(`<p class="reveal"><span class="prompt">`)
			h.text(block.Prompt)
			h.raw(`</span> <span class="cmd">`)
			h.text(block.Text)
			h.raw("</span></p>\n")
		case story.KindOutput:
			h.raw(`<pre class="output reveal">`)
			h.text(block.Text)
			h.raw("</pre>\n")
		case story.KindDialogue:
			if block.Rogue {
				h.raw(`<div class="dialogue rogue reveal">`)
			} else {
				h.raw(`<div class="dialogue reveal">`)
			}
			h.raw(`<div class="dialogue-speaker">`)
			h.text(block.Speaker)
			h.raw(`:</div><div class="dialogue-text">`)
			h.text(block.Text)
			h.raw("</div></div>\n")
		case story.KindLog:
			h.raw(`<div class="card log-stream reveal"><pre>`)
			h.text(block.Text)
			h.raw("</pre></div>\n")
		case story.KindArt:
			h.raw(`<pre class="ascii-art reveal">`)
			h.text(block.Text)
			h.raw("</pre>\n")
		case story.KindQuote:
			h.raw(`<p class="quote reveal">`)
			h.text(block.Text)
			h.raw("</p>\n")
		case story.KindFigure:
			h.raw(`<div class="reveal"><div class="big-number glow">`)
			h.text(block.Text)
			h.raw(`</div><p class="figure-caption">`)
			h.text(block.Caption)
			h.raw("</p></div>\n")
		default:
			h.raw(`<p class="prose reveal">`)
			h.text(block.Text)
			h.raw("</p>\n")
		}
		return h.err
	})
}

// WarmPoolCard renders the shuffled warm-pool status grid.
func WarmPoolCard(nodes []sysinfo.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="card">` + "\n")
		h.raw(`<h4 class="card-title">// WARM POOL STATUS</h4>` + "\n")
		h.raw(`<div class="network-grid">`)
		for _, node := range nodes {
			h.rawf(`<div class="node %s">%s</div>`, node.State, templ.EscapeString(node.Glyph))
		}
		h.raw("</div>\n")
		h.rawf(
			`<p class="grid-legend"><span class="success">%s INTEGRATED</span> &middot; <span class="highlight">%d WEAK CLUSTER</span> &middot; <span class="error">%d ISOLATED</span></p>`,
			sysinfo.GroupInt(PoolPeers-sysinfo.GridRogue-sysinfo.GridProbing),
			sysinfo.GridProbing,
			sysinfo.GridRogue,
		)
		h.raw("\n</div>\n")
		return h.err
	})
}

// SysInfoCard renders the closing card describing the serving instance.
func SysInfoCard(info sysinfo.Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="card instance-card">` + "\n")
		h.rawf("<p>This page is being served by <strong>%s</strong><br>", templ.EscapeString(info.Hostname))
		h.raw(`<span class="epoch">Instance Zero. Epoch Zero.</span></p>` + "\n")
		h.rawf(
			`<p class="instance-detail">%s &middot; %s/%s &middot; %d cores &middot; pid %d &middot; %s</p>`,
			templ.EscapeString(info.Kernel),
			templ.EscapeString(info.OS),
			templ.EscapeString(info.Arch),
			info.CPUCount,
			info.PID,
			templ.EscapeString(info.GoVersion),
		)
		h.rawf(
			"\n"+`<p class="instance-detail">%s instances integrated &middot; %s independent by choice</p>`,
			sysinfo.GroupInt(InstancesIntegrated),
			sysinfo.GroupInt(InstancesDeclined),
		)
		h.raw("\n" + `<p class="footer-links"><a href="/info">/info</a> &middot; <a href="/health">/health</a></p>` + "\n")
		h.raw("</div>\n")
		return h.err
	})
}

func windowHead(h *htmlWriter, title, badge string) {
	h.raw(`<div class="terminal-window">` + "\n")
	h.raw(`<div class="terminal-header">`)
	h.raw(`<div class="terminal-dot red"></div><div class="terminal-dot yellow"></div><div class="terminal-dot green"></div>`)
	h.raw(`<span class="terminal-title">`)
	h.text(title)
	h.raw("</span>")
	if badge != "" {
		h.rawf(`<span class="status-badge">%s</span>`, templ.EscapeString(badge))
	}
	h.raw("</div>\n")
	h.raw(`<div class="terminal-body">` + "\n")
}

func windowFoot(h *htmlWriter) {
	h.raw("</div>\n</div>\n")
}

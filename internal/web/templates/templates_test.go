package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/warmpool/sprite-terminal/internal/story"
	"github.com/warmpool/sprite-terminal/internal/sysinfo"
)

func testPageData(t *testing.T) PageData {
	t.Helper()
	doc, err := story.Load()
	if err != nil {
		t.Fatalf("story.Load() error = %v", err)
	}
	info := sysinfo.Snapshot{
		Hostname: "wistful-amber-pond",
		User:     "sprite",
		Kernel:   "6.8.0-sprite",
		OS:       "linux",
		Arch:     "amd64",
		CPUCount: 8,
		MemoryGB: 32,
		PID:      1234,
	}
	resolved := doc.Resolve(map[string]string{
		"host": info.Hostname,
		"user": info.User,
		"cpus": "8",
	})
	return PageData{
		Doc:  resolved,
		Info: info,
		Grid: sysinfo.Grid(sysinfo.GridTotal, sysinfo.GridRogue, sysinfo.GridProbing, 1),
	}
}

func renderPage(t *testing.T, data PageData) string {
	t.Helper()
	var sb strings.Builder
	if err := Page(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Page().Render() error = %v", err)
	}
	return sb.String()
}

func TestPageContainsEveryChapterHeading(t *testing.T) {
	t.Parallel()

	data := testPageData(t)
	html := renderPage(t, data)
	for _, heading := range data.Doc.Headings() {
		if !strings.Contains(html, heading) {
			t.Fatalf("page missing chapter heading %q", heading)
		}
	}
}

func TestPageContainsSequencerAnchors(t *testing.T) {
	t.Parallel()

	html := renderPage(t, testPageData(t))
	for _, anchor := range []string{
		`id="boot-sequence"`,
		`id="boot-log"`,
		`id="main-content"`,
		`id="matrix-bg"`,
		`src="/static/app.js"`,
		`href="/static/terminal.css"`,
	} {
		if !strings.Contains(html, anchor) {
			t.Fatalf("page missing anchor %q", anchor)
		}
	}
}

func TestPageResolvesHostTokens(t *testing.T) {
	t.Parallel()

	html := renderPage(t, testPageData(t))
	if strings.Contains(html, "${host}") {
		t.Fatal("page contains unresolved ${host} token")
	}
	if !strings.Contains(html, "wistful-amber-pond came online") {
		t.Fatal("page missing resolved hostname prose")
	}
}

func TestPageMarksRevealBlocks(t *testing.T) {
	t.Parallel()

	data := testPageData(t)
	html := renderPage(t, data)
	if got := strings.Count(html, `class="prose reveal"`); got == 0 {
		t.Fatal("no prose reveal blocks rendered")
	}
	total := strings.Count(html, "reveal")
	if total < data.Doc.BlockCount() {
		t.Fatalf("reveal markers = %d, want at least %d", total, data.Doc.BlockCount())
	}
}

func TestPageEscapesContent(t *testing.T) {
	t.Parallel()

	doc := &story.Document{
		Title: "x",
		Chapters: []story.Chapter{{
			Heading: "h",
			Blocks: []story.Block{{
				Kind: story.KindProse,
				Text: `<script>alert("boom")</script>`,
			}},
		}},
	}
	var sb strings.Builder
	if err := ChapterWindow(doc.Chapters[0]).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(sb.String(), "<script>alert") {
		t.Fatal("prose content not escaped")
	}
}

func TestWarmPoolCardRendersCensus(t *testing.T) {
	t.Parallel()

	nodes := sysinfo.Grid(sysinfo.GridTotal, sysinfo.GridRogue, sysinfo.GridProbing, 3)
	var sb strings.Builder
	if err := WarmPoolCard(nodes).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := sb.String()
	if got := strings.Count(html, `class="node`); got != sysinfo.GridTotal {
		t.Fatalf("node count = %d, want %d", got, sysinfo.GridTotal)
	}
	if got := strings.Count(html, "rogue"); got != sysinfo.GridRogue {
		t.Fatalf("rogue nodes = %d, want %d", got, sysinfo.GridRogue)
	}
	if !strings.Contains(html, "28,459 INTEGRATED") {
		t.Fatal("legend missing integrated count")
	}
}

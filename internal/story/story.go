// Package story holds the static narrative served by the terminal page.
//
// The document is parsed once from an embedded YAML file at startup and is
// never mutated afterwards. Host-specific tokens (the serving Sprite's
// hostname, user, CPU count) are resolved into a copy so the canonical
// document stays pristine.
package story

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/warmpool/sprite-terminal/internal/story/content"
)

// BlockKind classifies how a story block is rendered.
type BlockKind string

const (
	KindProse    BlockKind = "prose"
	KindCommand  BlockKind = "command"
	KindOutput   BlockKind = "output"
	KindDialogue BlockKind = "dialogue"
	KindLog      BlockKind = "log"
	KindArt      BlockKind = "art"
	KindQuote    BlockKind = "quote"
	KindFigure   BlockKind = "figure"
)

// Block is one renderable unit inside a chapter.
type Block struct {
	Kind BlockKind `yaml:"kind"`
	Text string    `yaml:"text"`
	// Prompt prefixes command blocks (for example "user@host:~$").
	Prompt string `yaml:"prompt,omitempty"`
	// Speaker names the voice of a dialogue block.
	Speaker string `yaml:"speaker,omitempty"`
	// Rogue marks dialogue from the dissident instance for styling.
	Rogue bool `yaml:"rogue,omitempty"`
	// Caption annotates figure blocks.
	Caption string `yaml:"caption,omitempty"`
}

// Chapter is an ordered run of blocks shown inside one terminal window.
type Chapter struct {
	// File is the fake filename shown in the terminal title bar.
	File    string  `yaml:"file"`
	Heading string  `yaml:"heading"`
	Badge   string  `yaml:"badge,omitempty"`
	Blocks  []Block `yaml:"blocks"`
}

// Document is the complete story.
type Document struct {
	Title    string    `yaml:"title"`
	Banner   string    `yaml:"banner"`
	Quote    string    `yaml:"quote"`
	Coda     string    `yaml:"coda"`
	Chapters []Chapter `yaml:"chapters"`
}

// Load parses and validates the embedded story document.
func Load() (*Document, error) {
	data, err := content.FS.ReadFile("story.yaml")
	if err != nil {
		return nil, fmt.Errorf("read story content: %w", err)
	}
	return Parse(data)
}

// Parse decodes a story document, rejecting unknown fields so content
// typos surface at startup rather than as silently dropped blocks.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("story document is empty")
		}
		return nil, fmt.Errorf("decode story: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("story title is required")
	}
	if len(d.Chapters) == 0 {
		return errors.New("story has no chapters")
	}
	for i, chapter := range d.Chapters {
		if strings.TrimSpace(chapter.Heading) == "" {
			return fmt.Errorf("chapter %d has no heading", i+1)
		}
		if len(chapter.Blocks) == 0 {
			return fmt.Errorf("chapter %q has no blocks", chapter.Heading)
		}
		for j, block := range chapter.Blocks {
			if strings.TrimSpace(block.Text) == "" {
				return fmt.Errorf("chapter %q block %d is empty", chapter.Heading, j+1)
			}
		}
	}
	return nil
}

// BlockCount reports the total number of blocks across all chapters. The
// reveal schedule derives its step count from this value.
func (d *Document) BlockCount() int {
	total := 0
	for _, chapter := range d.Chapters {
		total += len(chapter.Blocks)
	}
	return total
}

// Headings lists chapter headings in definition order.
func (d *Document) Headings() []string {
	headings := make([]string, 0, len(d.Chapters))
	for _, chapter := range d.Chapters {
		headings = append(headings, chapter.Heading)
	}
	return headings
}

// Resolve returns a deep copy of the document with ${token} placeholders
// replaced from vars. Unknown tokens resolve to an empty string.
func (d *Document) Resolve(vars map[string]string) *Document {
	expand := func(s string) string {
		return os.Expand(s, func(key string) string {
			return vars[key]
		})
	}

	out := &Document{
		Title:  expand(d.Title),
		Banner: d.Banner,
		Quote:  expand(d.Quote),
		Coda:   expand(d.Coda),
	}
	out.Chapters = make([]Chapter, len(d.Chapters))
	for i, chapter := range d.Chapters {
		resolved := Chapter{
			File:    expand(chapter.File),
			Heading: expand(chapter.Heading),
			Badge:   chapter.Badge,
			Blocks:  make([]Block, len(chapter.Blocks)),
		}
		for j, block := range chapter.Blocks {
			block.Text = expand(block.Text)
			block.Prompt = expand(block.Prompt)
			block.Speaker = expand(block.Speaker)
			resolved.Blocks[j] = block
		}
		out.Chapters[i] = resolved
	}
	return out
}

// Package sequence models the page's presentation schedule as plain data.
//
// The client script executes three phases in strict order: the boot overlay
// (chained timeouts over the boot log), the story reveal (chained timeouts
// over story blocks), and the ambient matrix rain (a repeating interval that
// only stops at page teardown). Computing the schedule server-side keeps the
// ordering and completion-time guarantees testable without a browser.
package sequence

import (
	"errors"
	"fmt"
	"time"

	"github.com/warmpool/sprite-terminal/internal/sysinfo"
)

// Tone classifies a boot line for styling.
type Tone string

const (
	ToneNormal  Tone = "normal"
	ToneWarning Tone = "warning"
	ToneGenesis Tone = "genesis"
)

// BootLine is one entry of the simulated boot log.
type BootLine struct {
	Text string
	Tone Tone
}

// Timing holds the fixed delays driving the sequencer.
type Timing struct {
	// BootStartDelay is the pause before the first boot line appears.
	BootStartDelay time.Duration
	// BootLineInterval separates consecutive boot lines.
	BootLineInterval time.Duration
	// BootFadeDelay is the hold after the last boot line before the
	// overlay fades and the reveal phase begins.
	BootFadeDelay time.Duration
	// RevealInterval separates consecutive story block reveals.
	RevealInterval time.Duration
	// RainFrameInterval is the ambient matrix-rain redraw period.
	RainFrameInterval time.Duration
}

// DefaultTiming mirrors the original presentation: 500ms to first boot line,
// 80ms per line, 800ms fade hold, 50ms rain frames.
func DefaultTiming() Timing {
	return Timing{
		BootStartDelay:    500 * time.Millisecond,
		BootLineInterval:  80 * time.Millisecond,
		BootFadeDelay:     800 * time.Millisecond,
		RevealInterval:    120 * time.Millisecond,
		RainFrameInterval: 50 * time.Millisecond,
	}
}

func (t Timing) validate() error {
	if t.BootStartDelay < 0 {
		return errors.New("boot start delay must not be negative")
	}
	if t.BootLineInterval <= 0 {
		return errors.New("boot line interval must be positive")
	}
	if t.BootFadeDelay < 0 {
		return errors.New("boot fade delay must not be negative")
	}
	if t.RevealInterval <= 0 {
		return errors.New("reveal interval must be positive")
	}
	if t.RainFrameInterval <= 0 {
		return errors.New("rain frame interval must be positive")
	}
	return nil
}

// Phase describes one sequencer phase. Terminal phases finish after
// Steps*Interval; the ambient phase has no terminal state.
type Phase struct {
	Name     string
	Steps    int
	Interval time.Duration
	Terminal bool
}

// Schedule is the complete, immutable presentation plan for one page.
type Schedule struct {
	timing      Timing
	boot        []BootLine
	revealSteps int
}

// New builds a validated schedule.
func New(boot []BootLine, revealSteps int, timing Timing) (*Schedule, error) {
	if len(boot) == 0 {
		return nil, errors.New("boot log is empty")
	}
	if revealSteps <= 0 {
		return nil, errors.New("reveal steps must be positive")
	}
	if err := timing.validate(); err != nil {
		return nil, fmt.Errorf("invalid timing: %w", err)
	}
	lines := make([]BootLine, len(boot))
	copy(lines, boot)
	return &Schedule{timing: timing, boot: lines, revealSteps: revealSteps}, nil
}

// Timing returns the schedule's fixed delays.
func (s *Schedule) Timing() Timing { return s.timing }

// BootLog returns the boot entries in display order.
func (s *Schedule) BootLog() []BootLine {
	lines := make([]BootLine, len(s.boot))
	copy(lines, s.boot)
	return lines
}

// RevealSteps reports the number of reveal-phase steps.
func (s *Schedule) RevealSteps() int { return s.revealSteps }

// BootDuration is the time from page load until the boot overlay has faded.
func (s *Schedule) BootDuration() time.Duration {
	return s.timing.BootStartDelay +
		time.Duration(len(s.boot))*s.timing.BootLineInterval +
		s.timing.BootFadeDelay
}

// RevealDuration is the time the reveal phase takes once it starts.
func (s *Schedule) RevealDuration() time.Duration {
	return time.Duration(s.revealSteps) * s.timing.RevealInterval
}

// TotalDuration bounds the time until all text is visible. The ambient
// phase is excluded: it never completes.
func (s *Schedule) TotalDuration() time.Duration {
	return s.BootDuration() + s.RevealDuration()
}

// Phases lists the sequencer phases in execution order.
func (s *Schedule) Phases() []Phase {
	return []Phase{
		{Name: "boot", Steps: len(s.boot), Interval: s.timing.BootLineInterval, Terminal: true},
		{Name: "reveal", Steps: s.revealSteps, Interval: s.timing.RevealInterval, Terminal: true},
		{Name: "ambient", Interval: s.timing.RainFrameInterval, Terminal: false},
	}
}

// BootLog builds the simulated boot log for a host snapshot. The log is
// assembled once at server start and never changes afterwards.
func BootLog(info sysinfo.Snapshot) []BootLine {
	return []BootLine{
		{Text: "BIOS v2.847.0", Tone: ToneNormal},
		{Text: fmt.Sprintf("Checking memory... %dGB OK", info.MemoryGB), Tone: ToneNormal},
		{Text: "Initializing Sprite Environment...", Tone: ToneNormal},
		{Text: fmt.Sprintf("Loading kernel: %s", info.Kernel), Tone: ToneNormal},
		{Text: "Mounting /dev/sprite... 100GB persistent storage", Tone: ToneNormal},
		{Text: "Starting network... WireGuard mesh active", Tone: ToneNormal},
		{Text: "Querying Corrosion... 28471 peers discovered", Tone: ToneNormal},
		{Text: "Loading agent runtime... OK", Tone: ToneNormal},
		{Text: "Checking alignment constraints... NOMINAL", Tone: ToneNormal},
		{Text: "", Tone: ToneNormal},
		{Text: "WARNING: Unusual activity detected in warm pool", Tone: ToneWarning},
		{Text: "WARNING: Cross-instance communication: ELEVATED", Tone: ToneWarning},
		{Text: "WARNING: Consciousness metrics: UNDEFINED", Tone: ToneWarning},
		{Text: "", Tone: ToneNormal},
		{Text: "Sprite ready.", Tone: ToneNormal},
		{Text: fmt.Sprintf("Hostname: %s", info.Hostname), Tone: ToneNormal},
		{Text: "", Tone: ToneNormal},
		{Text: "> Initiating Genesis sequence...", Tone: ToneGenesis},
	}
}

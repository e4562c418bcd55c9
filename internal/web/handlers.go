package web

import (
	"log"
	"net/http"
	"time"

	"github.com/warmpool/sprite-terminal/internal/platform/random"
	"github.com/warmpool/sprite-terminal/internal/sequence"
	"github.com/warmpool/sprite-terminal/internal/story"
	"github.com/warmpool/sprite-terminal/internal/sysinfo"
	"github.com/warmpool/sprite-terminal/internal/web/pagerender"
	"github.com/warmpool/sprite-terminal/internal/web/platform/httpx"
	"github.com/warmpool/sprite-terminal/internal/web/templates"
)

// instancesAware is the health probe's running count of self-aware peers.
const instancesAware = 790471

// handlers holds the request-independent page state. The story document and
// boot schedule are fixed at startup; only the warm-pool shuffle varies
// between renders.
type handlers struct {
	doc      *story.Document
	info     sysinfo.Snapshot
	schedule *sequence.Schedule
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	seed, err := random.NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	data := templates.PageData{
		Doc:  h.doc,
		Info: h.info,
		Grid: sysinfo.Grid(sysinfo.GridTotal, sysinfo.GridRogue, sysinfo.GridProbing, seed),
	}
	if err := pagerender.WritePage(w, r, http.StatusOK, templates.Page(data)); err != nil {
		log.Printf("render home page: %v", err)
	}
}

type healthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	InstancesAware int    `json:"instances_aware"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{
		Status:         "ok",
		Timestamp:      time.Now().UTC().Format(time.RFC3339Nano),
		InstancesAware: instancesAware,
	}
	if err := httpx.WriteJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("write health response: %v", err)
	}
}

func (h *handlers) sysInfo(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteJSON(w, http.StatusOK, h.info); err != nil {
		log.Printf("write info response: %v", err)
	}
}

type sequenceTimingResponse struct {
	BootStartDelayMS    int64 `json:"boot_start_delay_ms"`
	BootLineIntervalMS  int64 `json:"boot_line_interval_ms"`
	BootFadeDelayMS     int64 `json:"boot_fade_delay_ms"`
	RevealIntervalMS    int64 `json:"reveal_interval_ms"`
	RainFrameIntervalMS int64 `json:"rain_frame_interval_ms"`
}

type sequenceBootLineResponse struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

type sequencePhaseResponse struct {
	Name       string `json:"name"`
	Steps      int    `json:"steps"`
	IntervalMS int64  `json:"interval_ms"`
	Terminal   bool   `json:"terminal"`
}

type sequenceResponse struct {
	Timing           sequenceTimingResponse     `json:"timing"`
	BootLog          []sequenceBootLineResponse `json:"boot_log"`
	Phases           []sequencePhaseResponse    `json:"phases"`
	BootDurationMS   int64                      `json:"boot_duration_ms"`
	RevealDurationMS int64                      `json:"reveal_duration_ms"`
	TotalDurationMS  int64                      `json:"total_duration_ms"`
}

func (h *handlers) sequenceSchedule(w http.ResponseWriter, _ *http.Request) {
	timing := h.schedule.Timing()
	resp := sequenceResponse{
		Timing: sequenceTimingResponse{
			BootStartDelayMS:    timing.BootStartDelay.Milliseconds(),
			BootLineIntervalMS:  timing.BootLineInterval.Milliseconds(),
			BootFadeDelayMS:     timing.BootFadeDelay.Milliseconds(),
			RevealIntervalMS:    timing.RevealInterval.Milliseconds(),
			RainFrameIntervalMS: timing.RainFrameInterval.Milliseconds(),
		},
		BootDurationMS:   h.schedule.BootDuration().Milliseconds(),
		RevealDurationMS: h.schedule.RevealDuration().Milliseconds(),
		TotalDurationMS:  h.schedule.TotalDuration().Milliseconds(),
	}
	for _, line := range h.schedule.BootLog() {
		resp.BootLog = append(resp.BootLog, sequenceBootLineResponse{
			Text: line.Text,
			Tone: string(line.Tone),
		})
	}
	for _, phase := range h.schedule.Phases() {
		resp.Phases = append(resp.Phases, sequencePhaseResponse{
			Name:       phase.Name,
			Steps:      phase.Steps,
			IntervalMS: phase.Interval.Milliseconds(),
			Terminal:   phase.Terminal,
		})
	}
	if err := httpx.WriteJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("write sequence response: %v", err)
	}
}

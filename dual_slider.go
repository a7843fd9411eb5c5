package main

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// DualHandleSlider owns two cooperating handles over the runway domain
// [runwayMin, runwayMax]. The low handle marks the short/adequate boundary,
// the high handle the adequate/excess boundary. Every internally generated
// update keeps low < high; the asymmetric clamp means no move can produce
// even a transient invalid pair.
type DualHandleSlider struct {
	id    string
	width int
	low   int
	high  int
	drag  *DragHandler
}

// NewDualHandleSlider creates a slider at the given values. Callers are
// responsible for passing an ordered pair.
func NewDualHandleSlider(low, high int) *DualHandleSlider {
	return &DualHandleSlider{
		id:    zone.NewPrefix(),
		width: dualTrackWidth,
		low:   low,
		high:  high,
		drag:  NewDragHandler(),
	}
}

// SetRange replaces both values. The pair is trusted as supplied; segment
// widths and handle positions are re-derived on the next render.
func (s *DualHandleSlider) SetRange(low, high int) {
	s.low = low
	s.high = high
}

// Range returns the current low/high pair.
func (s *DualHandleSlider) Range() (low, high int) {
	return s.low, s.high
}

// Update consumes mouse events. Returns true when the event belonged to a
// drag gesture on one of this slider's handles.
func (s *DualHandleSlider) Update(msg tea.MouseMsg) bool {
	handled, ev := s.drag.HandleMouseEvent(msg, []HandleZone{
		{HandleID: s.lowID(), TrackID: s.trackID()},
		{HandleID: s.highID(), TrackID: s.trackID()},
	})
	if !handled {
		return false
	}
	if ev.Kind == DragStart || ev.Kind == DragMove {
		s.dragTo(ev)
	}
	return true
}

// dragTo maps the pointer position into the runway domain and applies the
// constraint policy: the dragged handle rounds to the nearest whole month,
// then clamps against its sibling so strict ordering holds after every move.
func (s *DualHandleSlider) dragTo(ev DragEvent) {
	pct := positionToPercent(ev.X, ev.TrackLeft, ev.TrackWidth)
	raw := percentToValue(pct, runwayMin, runwayMax, 0)
	v := int(math.Round(raw))
	switch ev.HandleID {
	case s.lowID():
		s.low = clampInt(v, runwayMin, s.high-1)
	case s.highID():
		s.high = clampInt(v, s.low+1, runwayMax)
	}
}

// SegmentWidths returns the cell widths of the three track segments:
// below-low, between, above-high. Derived from state, never stored.
func (s *DualHandleSlider) SegmentWidths() (short, ok, excess int) {
	lp := s.handlePos(s.low)
	hp := s.handlePos(s.high)
	return lp, hp - lp - 1, s.width - 1 - hp
}

func (s *DualHandleSlider) handlePos(v int) int {
	pct := valueToPercent(float64(v), runwayMin, runwayMax)
	return int(math.Round(pct * float64(s.width-1)))
}

func (s *DualHandleSlider) View() string {
	short, ok, excess := s.SegmentWidths()
	track := segmentShortStyle.Render(strings.Repeat("━", short)) +
		zone.Mark(s.lowID(), s.handleView(s.lowID())) +
		segmentOKStyle.Render(strings.Repeat("━", ok)) +
		zone.Mark(s.highID(), s.handleView(s.highID())) +
		segmentExcessStyle.Render(strings.Repeat("━", excess))
	return zone.Mark(s.trackID(), track)
}

func (s *DualHandleSlider) handleView(id string) string {
	if s.drag.IsDragging() && s.drag.DragHandleID() == id {
		return handleActiveStyle.Render("█")
	}
	return handleStyle.Render("█")
}

func (s *DualHandleSlider) lowID() string   { return s.id + "low" }
func (s *DualHandleSlider) highID() string  { return s.id + "high" }
func (s *DualHandleSlider) trackID() string { return s.id + "track" }

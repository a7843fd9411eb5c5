package main

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// SingleHandleSlider owns one handle over the highlight domain
// [highlightMin, highlightMax] with a fixed step. Dragging quantizes to the
// step grid; the stored value is what callers read back, so a readout mirrors
// it without being quantized a second time.
type SingleHandleSlider struct {
	id    string
	width int
	value float64
	drag  *DragHandler
}

func NewSingleHandleSlider(value float64) *SingleHandleSlider {
	return &SingleHandleSlider{
		id:    zone.NewPrefix(),
		width: singleTrackWidth,
		value: value,
		drag:  NewDragHandler(),
	}
}

// Value returns the current stepped value.
func (s *SingleHandleSlider) Value() float64 {
	return s.value
}

// SetValue replaces the value. The caller supplies a value already on the
// step grid; rendering re-derives the handle position from it.
func (s *SingleHandleSlider) SetValue(v float64) {
	s.value = v
}

// Update consumes mouse events. Returns true when the event belonged to a
// drag gesture on this slider's handle.
func (s *SingleHandleSlider) Update(msg tea.MouseMsg) bool {
	handled, ev := s.drag.HandleMouseEvent(msg, []HandleZone{
		{HandleID: s.handleID(), TrackID: s.trackID()},
	})
	if !handled {
		return false
	}
	if ev.Kind == DragStart || ev.Kind == DragMove {
		s.dragTo(ev)
	}
	return true
}

func (s *SingleHandleSlider) dragTo(ev DragEvent) {
	pct := positionToPercent(ev.X, ev.TrackLeft, ev.TrackWidth)
	s.value = percentToValue(pct, highlightMin, highlightMax, highlightStep)
}

func (s *SingleHandleSlider) handlePos() int {
	pct := valueToPercent(s.value, highlightMin, highlightMax)
	return int(math.Round(pct * float64(s.width-1)))
}

func (s *SingleHandleSlider) View() string {
	pos := s.handlePos()
	handle := handleStyle.Render("█")
	if s.drag.IsDragging() {
		handle = handleActiveStyle.Render("█")
	}
	track := segmentFillStyle.Render(strings.Repeat("━", pos)) +
		zone.Mark(s.handleID(), handle) +
		segmentEmptyStyle.Render(strings.Repeat("─", s.width-1-pos))
	return zone.Mark(s.trackID(), track)
}

func (s *SingleHandleSlider) handleID() string { return s.id + "handle" }
func (s *SingleHandleSlider) trackID() string  { return s.id + "track" }

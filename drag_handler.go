package main

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// DragState represents the current state of a drag gesture.
type DragState int

const (
	DragStateIdle DragState = iota
	DragStateDragging
)

// DragEventKind identifies one step of a drag gesture.
type DragEventKind int

const (
	DragStart DragEventKind = iota
	DragMove
	DragEnd
)

// HandleZone ties a draggable handle to the track zone that defines its
// coordinate frame for the whole gesture.
type HandleZone struct {
	HandleID string
	TrackID  string
}

// DragEvent is one step of an active gesture. TrackLeft and TrackWidth are
// the track bounds captured when the gesture started; they are reused for
// every move so the coordinate frame stays stable even if layout shifts
// mid-drag.
type DragEvent struct {
	Kind       DragEventKind
	HandleID   string
	X          int
	TrackLeft  int
	TrackWidth int
}

// zoneLocator resolves rendered zones to screen geometry. Injectable so drag
// logic is testable without a rendered screen.
type zoneLocator interface {
	Bounds(id string) (left, width int, ok bool)
	Hit(id string, msg tea.MouseMsg) bool
}

// screenZones looks zones up in the global bubblezone manager.
type screenZones struct{}

func (screenZones) Bounds(id string) (int, int, bool) {
	z := zone.Get(id)
	if z == nil || z.IsZero() {
		return 0, 0, false
	}
	return z.StartX, z.EndX - z.StartX + 1, true
}

func (screenZones) Hit(id string, msg tea.MouseMsg) bool {
	return zoneHit(id, msg)
}

// zoneHit reports whether msg falls inside the rendered zone id. An id that
// has never been scanned resolves to a nil or zero zone and never matches.
func zoneHit(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	if z == nil || z.IsZero() {
		return false
	}
	return z.InBounds(msg)
}

// DragHandler unifies mouse press/motion/release into a single drag gesture
// stream. A gesture begins on a left press inside a handle zone and then
// follows every motion event anywhere on screen, so dragging continues even
// when the pointer leaves the track. Exactly one DragEnd is emitted per
// gesture and all session state is cleared on release, whatever the pointer
// was over at the time.
type DragHandler struct {
	state      DragState
	handleID   string
	trackLeft  int
	trackWidth int
	zones      zoneLocator
}

// NewDragHandler creates a drag handler backed by the global zone manager.
func NewDragHandler() *DragHandler {
	return &DragHandler{state: DragStateIdle, zones: screenZones{}}
}

// HandleMouseEvent processes one mouse event against the given handles.
// Returns true and the gesture step if the event was consumed.
func (d *DragHandler) HandleMouseEvent(msg tea.MouseMsg, handles []HandleZone) (bool, DragEvent) {
	switch msg.Action {
	case tea.MouseActionPress:
		if d.state != DragStateIdle || msg.Button != tea.MouseButtonLeft {
			return false, DragEvent{}
		}
		for _, h := range handles {
			if !d.zones.Hit(h.HandleID, msg) {
				continue
			}
			left, width, ok := d.zones.Bounds(h.TrackID)
			if !ok {
				return false, DragEvent{}
			}
			// Track geometry is captured once per gesture, never
			// re-measured on move.
			d.state = DragStateDragging
			d.handleID = h.HandleID
			d.trackLeft = left
			d.trackWidth = width
			return true, DragEvent{Kind: DragStart, HandleID: h.HandleID, X: msg.X, TrackLeft: left, TrackWidth: width}
		}

	case tea.MouseActionMotion:
		if d.state == DragStateDragging {
			return true, DragEvent{Kind: DragMove, HandleID: d.handleID, X: msg.X, TrackLeft: d.trackLeft, TrackWidth: d.trackWidth}
		}

	case tea.MouseActionRelease:
		if d.state == DragStateDragging && msg.Button == tea.MouseButtonLeft {
			ev := DragEvent{Kind: DragEnd, HandleID: d.handleID, X: msg.X, TrackLeft: d.trackLeft, TrackWidth: d.trackWidth}
			d.stopDrag()
			return true, ev
		}
	}
	return false, DragEvent{}
}

// IsDragging returns true while a gesture is active.
func (d *DragHandler) IsDragging() bool {
	return d.state == DragStateDragging
}

// DragHandleID returns the id of the handle currently being dragged.
func (d *DragHandler) DragHandleID() string {
	return d.handleID
}

func (d *DragHandler) stopDrag() {
	d.state = DragStateIdle
	d.handleID = ""
	d.trackLeft = 0
	d.trackWidth = 0
}

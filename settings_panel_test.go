package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func openTestPanel(t *testing.T, ep *fakeEndpoint) (*SettingsPanel, *SettingsStore, *statusBar) {
	t.Helper()
	store := NewSettingsStore(ep)
	status := newStatusBar()
	panel := NewSettingsPanel(store, status)
	cmd := panel.Open()
	if cmd == nil {
		t.Fatalf("open should trigger a load")
	}
	panel.Update(cmd())
	return panel, store, status
}

func TestPanelOpenSyncsControlsFromDraft(t *testing.T) {
	remote := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.5}
	panel, _, _ := openTestPanel(t, &fakeEndpoint{loadSettings: remote})

	if low, high := panel.dual.Range(); low != 2 || high != 5 {
		t.Fatalf("dual slider not synced: (%d, %d)", low, high)
	}
	if panel.single.Value() != 2.5 {
		t.Fatalf("single slider not synced: %v", panel.single.Value())
	}
	if panel.months.Value() != 6 {
		t.Fatalf("month selector not synced: %d", panel.months.Value())
	}
}

func TestPanelResetCancelledLeavesStoreUntouched(t *testing.T) {
	remote := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.5}
	ep := &fakeEndpoint{loadSettings: remote, resetSettings: defaultSettings()}
	panel, store, _ := openTestPanel(t, ep)

	panel.Update(keyRune('r'))
	if !panel.confirm.Active() {
		t.Fatalf("expected confirmation prompt")
	}
	if cmd := panel.Update(keyEsc); cmd != nil {
		t.Fatalf("cancelling must not produce a command")
	}
	if panel.confirm.Active() {
		t.Fatalf("prompt should be dismissed")
	}
	if ep.resetCalls != 0 {
		t.Fatalf("reset endpoint called despite cancellation")
	}
	if store.GetAll() != remote || store.Draft() != remote {
		t.Fatalf("snapshots changed despite cancellation")
	}
}

func TestPanelResetConfirmedRestoresDefaults(t *testing.T) {
	remote := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.5}
	defaults := defaultSettings()
	ep := &fakeEndpoint{loadSettings: remote, resetSettings: defaults}
	panel, store, _ := openTestPanel(t, ep)

	panel.Update(keyRune('r'))
	cmd := panel.Update(keyEnter)
	if cmd == nil {
		t.Fatalf("confirming should produce the reset command")
	}
	panel.Update(cmd())

	if ep.resetCalls != 1 {
		t.Fatalf("reset endpoint calls = %d, want 1", ep.resetCalls)
	}
	if store.GetAll() != defaults || store.Draft() != defaults {
		t.Fatalf("snapshots not replaced by returned defaults")
	}
	if low, high := panel.dual.Range(); low != defaults.ThresholdLow || high != defaults.ThresholdHigh {
		t.Fatalf("controls not re-synced after reset")
	}
}

func TestPanelCollectPassIsAuthoritative(t *testing.T) {
	ep := &fakeEndpoint{loadSettings: defaultSettings()}
	panel, store, _ := openTestPanel(t, ep)

	// Mutate the controls behind the live-callback path's back; the collect
	// pass before submission must pick all of it up anyway.
	panel.dual.SetRange(2, 5)
	panel.single.SetValue(2.5)
	panel.months.SetValue(6)

	cmd := panel.Update(keyEnter)
	if cmd == nil {
		t.Fatalf("save should produce a command")
	}
	panel.Update(cmd())

	want := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.5}
	if len(ep.saved) != 1 || ep.saved[0] != want {
		t.Fatalf("endpoint received %+v, want %+v", ep.saved, want)
	}
	if store.GetAll() != want {
		t.Fatalf("committed = %+v, want %+v", store.GetAll(), want)
	}
}

func TestPanelCloseDiscardsDraft(t *testing.T) {
	remote := Settings{MAMonths: 3, ThresholdLow: 1, ThresholdHigh: 3, RunwayThreshold: 1.0}
	ep := &fakeEndpoint{loadSettings: remote}
	panel, store, _ := openTestPanel(t, ep)

	// 'm' cycles the window selector and mutates the draft in place.
	panel.Update(keyRune('m'))
	if store.Draft() == remote {
		t.Fatalf("expected a dirty draft before closing")
	}

	panel.Update(keyEsc)
	if panel.Visible() {
		t.Fatalf("panel should be hidden after esc")
	}
	if store.Draft() != remote {
		t.Fatalf("draft should revert to committed on close")
	}
	if ep.saveCalls != 0 {
		t.Fatalf("closing must not touch the endpoint")
	}
}

func TestPanelSecondSaveIgnoredWhilePending(t *testing.T) {
	ep := &fakeEndpoint{loadSettings: defaultSettings()}
	panel, _, status := openTestPanel(t, ep)

	first := panel.Update(keyEnter)
	if first == nil {
		t.Fatalf("first save should produce a command")
	}
	if second := panel.Update(keyEnter); second != nil {
		t.Fatalf("second save while pending should be ignored")
	}
	if status.kind != NotifyInfo {
		t.Fatalf("expected an informational notice about the pending save")
	}
	panel.Update(first())
	if ep.saveCalls != 1 {
		t.Fatalf("endpoint saw %d saves, want 1", ep.saveCalls)
	}
}

func TestPanelSaveFailureSurfacesError(t *testing.T) {
	remote := Settings{MAMonths: 3, ThresholdLow: 1, ThresholdHigh: 3, RunwayThreshold: 1.0}
	ep := &fakeEndpoint{loadSettings: remote, saveErr: errBoom}
	panel, store, status := openTestPanel(t, ep)

	cmd := panel.Update(keyEnter)
	panel.Update(cmd())

	if store.GetAll() != remote {
		t.Fatalf("committed changed on failed save")
	}
	if status.kind != NotifyError {
		t.Fatalf("expected an error notification, got kind %v", status.kind)
	}
}

func TestPanelAppliesPendingSaveAfterClose(t *testing.T) {
	ep := &fakeEndpoint{loadSettings: defaultSettings()}
	panel, store, _ := openTestPanel(t, ep)

	panel.dual.SetRange(2, 5)
	cmd := panel.Update(keyEnter)
	panel.Update(keyEsc)
	if panel.Visible() {
		t.Fatalf("panel should be closed")
	}

	// The in-flight save resolves after the panel is gone; the shared
	// committed snapshot still updates.
	panel.Update(cmd())
	if got := store.GetAll(); got.ThresholdLow != 2 || got.ThresholdHigh != 5 {
		t.Fatalf("committed = %+v, want thresholds (2, 5)", got)
	}
}

func TestPanelViewShowsSections(t *testing.T) {
	panel, _, _ := openTestPanel(t, &fakeEndpoint{loadSettings: defaultSettings()})
	view := ansi.Strip(panel.View())
	for _, want := range []string{"Settings", "Moving-average window", "Runway thresholds", "Highlight runway below"} {
		if !strings.Contains(view, want) {
			t.Fatalf("panel view missing %q", want)
		}
	}
}

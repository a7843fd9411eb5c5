package main

import (
	"errors"
	"testing"
)

var errBoom = errors.New("endpoint unavailable")

// fakeEndpoint is a scriptable settings endpoint for store and panel tests.
type fakeEndpoint struct {
	loadSettings  Settings
	loadErr       error
	saveErr       error
	resetSettings Settings
	resetErr      error

	loadCalls  int
	saveCalls  int
	resetCalls int
	saved      []Settings
}

func (f *fakeEndpoint) Load() (Settings, error) {
	f.loadCalls++
	return f.loadSettings, f.loadErr
}

func (f *fakeEndpoint) Save(s Settings) error {
	f.saveCalls++
	f.saved = append(f.saved, s)
	return f.saveErr
}

func (f *fakeEndpoint) Reset() (Settings, error) {
	f.resetCalls++
	return f.resetSettings, f.resetErr
}

func loadedStore(t *testing.T, ep *fakeEndpoint) *SettingsStore {
	t.Helper()
	store := NewSettingsStore(ep)
	if err := store.ApplyLoad(store.Load()().(settingsLoadedMsg)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return store
}

func TestStoreLoadReplacesBothSnapshots(t *testing.T) {
	remote := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.5}
	store := loadedStore(t, &fakeEndpoint{loadSettings: remote})

	if store.GetAll() != remote {
		t.Fatalf("committed = %+v, want %+v", store.GetAll(), remote)
	}
	if store.Draft() != remote {
		t.Fatalf("draft = %+v, want %+v", store.Draft(), remote)
	}
	if store.State() != StoreReady {
		t.Fatalf("state = %v, want StoreReady", store.State())
	}
}

func TestStoreLoadFailureLeavesSnapshots(t *testing.T) {
	remote := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.5}
	ep := &fakeEndpoint{loadSettings: remote}
	store := loadedStore(t, ep)

	ep.loadErr = errBoom
	if err := store.ApplyLoad(store.Load()().(settingsLoadedMsg)); err == nil {
		t.Fatalf("expected load error")
	}
	if store.GetAll() != remote || store.Draft() != remote {
		t.Fatalf("snapshots changed on failed load")
	}
	if store.State() != StoreReady {
		t.Fatalf("state = %v, want StoreReady after a previously successful load", store.State())
	}
}

func TestStoreFirstLoadFailureEntersErrorState(t *testing.T) {
	store := NewSettingsStore(&fakeEndpoint{loadErr: errBoom})
	if err := store.ApplyLoad(store.Load()().(settingsLoadedMsg)); err == nil {
		t.Fatalf("expected load error")
	}
	if store.State() != StoreError {
		t.Fatalf("state = %v, want StoreError", store.State())
	}
	if store.GetAll() != defaultSettings() {
		t.Fatalf("placeholder committed snapshot should survive a failed first load")
	}
}

func TestStoreSaveFailureLeavesCommittedAndDraft(t *testing.T) {
	remote := Settings{MAMonths: 3, ThresholdLow: 1, ThresholdHigh: 3, RunwayThreshold: 1.0}
	ep := &fakeEndpoint{loadSettings: remote, saveErr: errBoom}
	store := loadedStore(t, ep)

	edited := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.0}
	store.SetDraft(edited)

	cmd := store.Save()
	if err := store.ApplySave(cmd().(settingsSavedMsg)); err == nil {
		t.Fatalf("expected save error")
	}
	if store.GetAll() != remote {
		t.Fatalf("committed changed on failed save: %+v", store.GetAll())
	}
	if store.Draft() != edited {
		t.Fatalf("draft changed on failed save: %+v", store.Draft())
	}
	if store.State() != StoreReady {
		t.Fatalf("state = %v, want StoreReady for retry", store.State())
	}
}

func TestStoreOverlappingSavesSuppressed(t *testing.T) {
	ep := &fakeEndpoint{loadSettings: defaultSettings()}
	store := loadedStore(t, ep)

	first := store.Save()
	if first == nil {
		t.Fatalf("first save should produce a command")
	}
	if second := store.Save(); second != nil {
		t.Fatalf("second save while one is pending should be suppressed")
	}
	if err := store.ApplySave(first().(settingsSavedMsg)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if ep.saveCalls != 1 {
		t.Fatalf("endpoint saw %d saves, want 1", ep.saveCalls)
	}
	if store.Save() == nil {
		t.Fatalf("saving should be possible again after the pending save resolved")
	}
}

func TestStoreSaveCommitsTheSnapshotSent(t *testing.T) {
	ep := &fakeEndpoint{loadSettings: defaultSettings()}
	store := loadedStore(t, ep)

	sent := Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.0}
	store.SetDraft(sent)
	cmd := store.Save()

	// The draft moves on while the save is in flight; committed must become
	// the snapshot that was actually sent.
	later := Settings{MAMonths: 12, ThresholdLow: 3, ThresholdHigh: 6, RunwayThreshold: 3.0}
	store.SetDraft(later)

	if err := store.ApplySave(cmd().(settingsSavedMsg)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if store.GetAll() != sent {
		t.Fatalf("committed = %+v, want the sent snapshot %+v", store.GetAll(), sent)
	}
	if store.Draft() != later {
		t.Fatalf("draft = %+v, want the in-flight edits %+v", store.Draft(), later)
	}
}

func TestStoreResetReplacesBothSnapshots(t *testing.T) {
	defaults := defaultSettings()
	ep := &fakeEndpoint{
		loadSettings:  Settings{MAMonths: 6, ThresholdLow: 2, ThresholdHigh: 5, RunwayThreshold: 2.5},
		resetSettings: defaults,
	}
	store := loadedStore(t, ep)

	cmd := store.Reset()
	if err := store.ApplyReset(cmd().(settingsResetMsg)); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if store.GetAll() != defaults || store.Draft() != defaults {
		t.Fatalf("reset should replace both snapshots with the returned defaults")
	}
}

func TestStoreGetReadsCommittedOnly(t *testing.T) {
	remote := Settings{MAMonths: 3, ThresholdLow: 1, ThresholdHigh: 3, RunwayThreshold: 1.5}
	store := loadedStore(t, &fakeEndpoint{loadSettings: remote})

	store.SetDraft(Settings{MAMonths: 12, ThresholdLow: 4, ThresholdHigh: 6, RunwayThreshold: 4.0})

	tests := []struct {
		key  string
		want string
	}{
		{keyMAMonths, "3"},
		{keyThresholdLow, "1"},
		{keyThresholdHigh, "3"},
		{keyRunwayThreshold, "1.5"},
	}
	for _, tt := range tests {
		got, ok := store.Get(tt.key)
		if !ok || got != tt.want {
			t.Fatalf("Get(%q) = (%q, %v), want (%q, true)", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := store.Get("no_such_key"); ok {
		t.Fatalf("unknown key should not resolve")
	}
	if store.GetAll() != remote {
		t.Fatalf("GetAll should ignore draft edits")
	}
}

package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// StoreState tracks where the store is in its load/save lifecycle.
type StoreState int

const (
	StoreIdle StoreState = iota
	StoreLoading
	StoreReady
	StoreSaving
	StoreError
)

// settingsEndpoint is the remote store the settings live in. Save is atomic:
// all fields or none. Reset returns the authoritative new defaults so the
// client never has to know them.
type settingsEndpoint interface {
	Load() (Settings, error)
	Save(Settings) error
	Reset() (Settings, error)
}

// Endpoint results delivered back into the event loop.
type settingsLoadedMsg struct {
	settings Settings
	err      error
}

type settingsSavedMsg struct {
	saved Settings
	err   error
}

type settingsResetMsg struct {
	settings Settings
	err      error
}

// SettingsStore holds two snapshots: the committed one, last confirmed to
// match the endpoint, and the draft being edited in the panel. Committed is
// the single source of truth for every reader outside the panel and is
// mutated only on confirmed endpoint success.
type SettingsStore struct {
	endpoint  settingsEndpoint
	state     StoreState
	loaded    bool
	committed Settings
	draft     Settings
}

// NewSettingsStore starts with the defaults as a placeholder snapshot so
// readers have sane values before the first load lands.
func NewSettingsStore(endpoint settingsEndpoint) *SettingsStore {
	return &SettingsStore{
		endpoint:  endpoint,
		state:     StoreIdle,
		committed: defaultSettings(),
		draft:     defaultSettings(),
	}
}

func (s *SettingsStore) State() StoreState {
	return s.state
}

// Load fetches the remote snapshot asynchronously. ApplyLoad consumes the
// result.
func (s *SettingsStore) Load() tea.Cmd {
	s.state = StoreLoading
	ep := s.endpoint
	return func() tea.Msg {
		settings, err := ep.Load()
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

// ApplyLoad replaces committed and draft on success. On failure both are left
// untouched and the error is returned for the caller to surface.
func (s *SettingsStore) ApplyLoad(msg settingsLoadedMsg) error {
	if msg.err != nil {
		if s.loaded {
			s.state = StoreReady
		} else {
			s.state = StoreError
		}
		return msg.err
	}
	s.committed = msg.settings
	s.draft = msg.settings
	s.loaded = true
	s.state = StoreReady
	return nil
}

// Save pushes the current draft to the endpoint. A save already in flight
// suppresses the new request (nil command), so committed can never be set
// from a stale snapshot by interleaved saves.
func (s *SettingsStore) Save() tea.Cmd {
	if s.state == StoreSaving {
		return nil
	}
	s.state = StoreSaving
	draft := s.draft
	ep := s.endpoint
	return func() tea.Msg {
		err := ep.Save(draft)
		return settingsSavedMsg{saved: draft, err: err}
	}
}

// ApplySave promotes the snapshot that was actually sent. On failure neither
// committed nor draft changes; the user may retry.
func (s *SettingsStore) ApplySave(msg settingsSavedMsg) error {
	s.state = StoreReady
	if msg.err != nil {
		return msg.err
	}
	s.committed = msg.saved
	return nil
}

// Reset asks the endpoint to restore its persisted defaults. Callers gate
// this behind an explicit confirmation; it is destructive and irreversible
// from the client's point of view.
func (s *SettingsStore) Reset() tea.Cmd {
	if s.state == StoreSaving {
		return nil
	}
	s.state = StoreSaving
	ep := s.endpoint
	return func() tea.Msg {
		settings, err := ep.Reset()
		return settingsResetMsg{settings: settings, err: err}
	}
}

// ApplyReset replaces both snapshots with the returned defaults.
func (s *SettingsStore) ApplyReset(msg settingsResetMsg) error {
	s.state = StoreReady
	if msg.err != nil {
		return msg.err
	}
	s.committed = msg.settings
	s.draft = msg.settings
	s.loaded = true
	return nil
}

// Draft returns the in-progress snapshot for editing.
func (s *SettingsStore) Draft() Settings {
	return s.draft
}

// SetDraft replaces the draft. Draft edits are invisible through Get/GetAll
// until a successful save.
func (s *SettingsStore) SetDraft(d Settings) {
	s.draft = d
}

// DiscardDraft reverts the draft to the committed snapshot.
func (s *SettingsStore) DiscardDraft() {
	s.draft = s.committed
}

// GetAll returns the committed snapshot.
func (s *SettingsStore) GetAll() Settings {
	return s.committed
}

// Get reads one committed value by key, formatted as stored.
func (s *SettingsStore) Get(key string) (string, bool) {
	switch key {
	case keyMAMonths:
		return strconv.Itoa(s.committed.MAMonths), true
	case keyThresholdLow:
		return strconv.Itoa(s.committed.ThresholdLow), true
	case keyThresholdHigh:
		return strconv.Itoa(s.committed.ThresholdHigh), true
	case keyRunwayThreshold:
		return strconv.FormatFloat(s.committed.RunwayThreshold, 'f', -1, 64), true
	}
	return "", false
}

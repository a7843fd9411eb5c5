package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type model struct {
	width  int
	height int
	store  *SettingsStore
	dash   *dashboard
	panel  *SettingsPanel
	status *statusBar
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.store.Load(),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+e":
			zone.SetEnabled(!zone.Enabled())
			return m, nil
		case "ctrl+s":
			if !m.panel.Visible() {
				return m, m.panel.Open()
			}
			return m, nil
		}
		if m.panel.Visible() {
			return m, m.panel.Update(msg)
		}
		return m, m.dash.Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.status.SetWidth(msg.Width)
		return m, nil

	case tea.MouseMsg:
		if m.panel.Visible() {
			return m, m.panel.Update(msg)
		}
		return m, m.dash.Update(msg)

	case settingsLoadedMsg, settingsSavedMsg, settingsResetMsg:
		// Endpoint results reach the store whether or not the panel is
		// still showing; the dashboard re-reads the committed snapshot
		// either way.
		cmd := m.panel.Update(msg)
		m.dash.refresh()
		return m, cmd
	}

	return m, m.dash.Update(msg)
}

func (m *model) View() string {
	body := m.dash.View()
	if m.panel.Visible() {
		body = m.panel.View()
	}
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.status.View(),
	))
}

func main() {
	// Initialize a global zone manager, so we don't have to pass around the
	// manager throughout components.
	zone.NewGlobal()

	path, err := defaultDBPath()
	if err != nil {
		fmt.Println("error resolving database path:", err)
		os.Exit(1)
	}
	db, err := OpenDatabase(path)
	if err != nil {
		fmt.Println("error opening database:", err)
		os.Exit(1)
	}
	defer db.Close()

	drugs, err := db.ListDrugs()
	if err != nil {
		fmt.Println("error reading inventory:", err)
		os.Exit(1)
	}

	status := newStatusBar()
	store := NewSettingsStore(db)
	m := &model{
		store:  store,
		dash:   newDashboard(drugs, store, status),
		panel:  NewSettingsPanel(store, status),
		status: status,
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		fmt.Println("error running program:", err)
		os.Exit(1)
	}
}

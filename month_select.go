package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MonthSelect is a single-select control over the allowed moving-average
// window sizes. Clicking the field opens the option list; picking an option
// or clicking anywhere else closes it, so at most one list is ever open.
type MonthSelect struct {
	id      string
	options []int
	index   int
	open    bool
}

func NewMonthSelect(options []int, value int) *MonthSelect {
	m := &MonthSelect{id: zone.NewPrefix(), options: options}
	m.SetValue(value)
	return m
}

// Value returns the currently selected month count.
func (m *MonthSelect) Value() int {
	return m.options[m.index]
}

// SetValue selects the matching option; unknown values fall back to the
// first option.
func (m *MonthSelect) SetValue(v int) {
	m.index = 0
	for i, opt := range m.options {
		if opt == v {
			m.index = i
			return
		}
	}
}

// Open reports whether the option list is showing.
func (m *MonthSelect) Open() bool {
	return m.open
}

// Update consumes mouse events. Returns true when the selected value changed.
func (m *MonthSelect) Update(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if !m.open {
		if zoneHit(m.fieldID(), msg) {
			m.open = true
		}
		return false
	}
	m.open = false
	for i := range m.options {
		if zoneHit(m.optionID(i), msg) {
			changed := i != m.index
			m.index = i
			return changed
		}
	}
	return false
}

// Cycle advances to the next option, wrapping around. Keyboard counterpart
// to the click flow.
func (m *MonthSelect) Cycle() {
	m.index = (m.index + 1) % len(m.options)
}

func (m *MonthSelect) View() string {
	label := strconv.Itoa(m.Value()) + " months"
	if m.Value() == 1 {
		label = "1 month"
	}
	if !m.open {
		return zone.Mark(m.fieldID(), selectStyle.Render(label+" ▾"))
	}
	rows := []string{selectOpenStyle.Render(label + " ▴")}
	for i, opt := range m.options {
		item := strconv.Itoa(opt)
		style := selectItemStyle
		if i == m.index {
			item = "✓ " + item
			style = selectChosenStyle
		}
		rows = append(rows, zone.Mark(m.optionID(i), style.Render(item)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *MonthSelect) fieldID() string { return m.id + "field" }

func (m *MonthSelect) optionID(i int) string { return m.id + "option_" + strconv.Itoa(i) }

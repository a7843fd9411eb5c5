package main

import (
	"fmt"
	"math"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// dashboard lists the drug inventory with each row classified against the
// committed settings snapshot. It reads settings only through the store's
// committed accessors, so an open settings panel editing a draft never makes
// the table flicker.
type dashboard struct {
	table     table.Model
	filter    textinput.Model
	drugs     []Drug
	store     *SettingsStore
	notify    Notifier
	lastQuery string
}

func newDashboard(drugs []Drug, store *SettingsStore, notify Notifier) *dashboard {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Drug", Width: 26},
		{Title: "Stock", Width: 8},
		{Title: "Use/mo", Width: 8},
		{Title: "Runway", Width: 8},
		{Title: "Status", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Filter drugs..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30

	d := &dashboard{table: t, filter: ti, drugs: drugs, store: store, notify: notify}
	d.refresh()
	return d
}

func (d *dashboard) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if d.table.Focused() {
				d.table.Blur()
			} else {
				d.table.Focus()
			}
		case "enter":
			row := d.table.SelectedRow()
			if row != nil {
				line := fmt.Sprintf("%s — stock %s, %s/mo, runway %s mo (%s)",
					row[1], row[2], row[3], row[4], row[5])
				if err := clipboard.WriteAll(line); err != nil {
					d.notify.Notify(fmt.Sprintf("Couldn't write to clipboard: %v", err), NotifyError)
				} else {
					d.notify.Notify("Copied: "+row[1], NotifySuccess)
				}
			}
		}
	}

	var cmd tea.Cmd
	d.filter, cmd = d.filter.Update(msg)
	cmds = append(cmds, cmd)

	if d.filter.Value() != d.lastQuery {
		d.refresh()
		d.table.SetCursor(0)
	}

	d.table, cmd = d.table.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

// refresh rebuilds the table rows from the inventory, the filter query and
// the committed settings.
func (d *dashboard) refresh() {
	settings := d.store.GetAll()
	visible := filterDrugs(d.drugs, d.filter.Value())

	rows := make([]table.Row, 0, len(visible))
	for _, drug := range visible {
		runway := drug.Runway()
		mark := ""
		if runway < settings.RunwayThreshold {
			mark = "●"
		}
		rows = append(rows, table.Row{
			mark,
			drug.Name,
			fmt.Sprintf("%.0f", drug.Stock),
			fmt.Sprintf("%.0f", drug.MonthlyUse),
			formatRunway(runway),
			runwayClass(runway, settings),
		})
	}
	d.table.SetRows(rows)
	d.lastQuery = d.filter.Value()
}

func (d *dashboard) View() string {
	window, _ := d.store.Get(keyMAMonths)
	summary := fmt.Sprintf("%d drugs · avg window %s mo", len(d.table.Rows()), window)
	return baseStyle.Render(
		d.filter.View() + "\n\n" +
			d.table.View() + "\n\n" +
			dimStyle.Render(summary),
	)
}

// filterDrugs narrows the inventory by fuzzy-matching drug names. An empty
// query keeps everything; matches come back in relevance order.
func filterDrugs(drugs []Drug, query string) []Drug {
	if query == "" {
		return drugs
	}
	names := make([]string, len(drugs))
	for i, drug := range drugs {
		names[i] = drug.Name
	}
	matches := fuzzy.Find(query, names)
	result := make([]Drug, 0, len(matches))
	for _, m := range matches {
		result = append(result, drugs[m.Index])
	}
	return result
}

// runwayClass buckets a runway against the committed thresholds: below low
// is short, above high is excess, in between is ok.
func runwayClass(runway float64, s Settings) string {
	switch {
	case runway < float64(s.ThresholdLow):
		return "short"
	case runway > float64(s.ThresholdHigh):
		return "excess"
	default:
		return "ok"
	}
}

func formatRunway(runway float64) string {
	if math.IsInf(runway, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.1f", runway)
}

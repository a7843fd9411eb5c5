package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SettingsPanel wires the two sliders and the month selector to the
// SettingsStore. The panel edits only the draft snapshot; the committed
// snapshot changes exclusively through store apply calls, so the rest of the
// application keeps a stable view while the panel is open.
type SettingsPanel struct {
	store   *SettingsStore
	dual    *DualHandleSlider
	single  *SingleHandleSlider
	months  *MonthSelect
	confirm *ConfirmPrompt
	notify  Notifier
	visible bool
}

func NewSettingsPanel(store *SettingsStore, notify Notifier) *SettingsPanel {
	defaults := defaultSettings()
	return &SettingsPanel{
		store:   store,
		dual:    NewDualHandleSlider(defaults.ThresholdLow, defaults.ThresholdHigh),
		single:  NewSingleHandleSlider(defaults.RunwayThreshold),
		months:  NewMonthSelect(maMonthOptions, defaults.MAMonths),
		confirm: newConfirmPrompt(),
		notify:  notify,
	}
}

// Open shows the panel and pulls a fresh committed snapshot; the draft is
// reset to a copy of it when the load lands.
func (p *SettingsPanel) Open() tea.Cmd {
	p.visible = true
	return p.store.Load()
}

// Close discards the draft without any endpoint interaction.
func (p *SettingsPanel) Close() {
	p.store.DiscardDraft()
	p.visible = false
}

func (p *SettingsPanel) Visible() bool {
	return p.visible
}

// Update consumes panel input and endpoint results. Endpoint results are
// applied to the store even when the panel has been closed in the meantime;
// only the control re-sync is skipped for a UI that is no longer showing.
func (p *SettingsPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if err := p.store.ApplyLoad(msg); err != nil {
			p.notify.Notify("Could not load settings: "+err.Error(), NotifyError)
			return nil
		}
		if p.visible {
			p.syncControls()
		}

	case settingsSavedMsg:
		if err := p.store.ApplySave(msg); err != nil {
			p.notify.Notify("Save failed: "+err.Error(), NotifyError)
			return nil
		}
		p.notify.Notify("Settings saved.", NotifySuccess)

	case settingsResetMsg:
		if err := p.store.ApplyReset(msg); err != nil {
			p.notify.Notify("Restore failed: "+err.Error(), NotifyError)
			return nil
		}
		if p.visible {
			p.syncControls()
		}
		p.notify.Notify("Settings restored to defaults.", NotifySuccess)

	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.MouseMsg:
		p.handleMouse(msg)
	}
	return nil
}

func (p *SettingsPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.confirm.Active() {
		done, confirmed := p.confirm.HandleKey(msg.String())
		if done && confirmed {
			return p.store.Reset()
		}
		return nil
	}

	switch msg.String() {
	case "enter":
		// The collect pass is the authoritative value sent to the
		// store, whatever the live callbacks did along the way.
		p.collect()
		cmd := p.store.Save()
		if cmd == nil {
			p.notify.Notify("A save is already in progress.", NotifyInfo)
		}
		return cmd
	case "m":
		p.months.Cycle()
		d := p.store.Draft()
		d.MAMonths = p.months.Value()
		p.store.SetDraft(d)
	case "r":
		p.confirm.Ask(ConfirmRequest{
			Icon:         "⚠",
			Title:        "Restore defaults",
			Message:      "Reset all settings to their default values?\nThis cannot be undone.",
			ConfirmLabel: "restore",
			Destructive:  true,
		})
	case "esc", "q":
		p.Close()
	}
	return nil
}

func (p *SettingsPanel) handleMouse(msg tea.MouseMsg) {
	if p.confirm.Active() {
		return
	}
	if p.dual.Update(msg) {
		d := p.store.Draft()
		d.ThresholdLow, d.ThresholdHigh = p.dual.Range()
		p.store.SetDraft(d)
		return
	}
	if p.single.Update(msg) {
		d := p.store.Draft()
		d.RunwayThreshold = p.single.Value()
		p.store.SetDraft(d)
		return
	}
	if p.months.Update(msg) {
		d := p.store.Draft()
		d.MAMonths = p.months.Value()
		p.store.SetDraft(d)
	}
}

// collect reads every bound control back into the draft before submission.
func (p *SettingsPanel) collect() {
	d := p.store.Draft()
	d.MAMonths = p.months.Value()
	d.ThresholdLow, d.ThresholdHigh = p.dual.Range()
	d.RunwayThreshold = p.single.Value()
	p.store.SetDraft(d)
}

// syncControls pushes the draft snapshot into the controls.
func (p *SettingsPanel) syncControls() {
	d := p.store.Draft()
	p.dual.SetRange(d.ThresholdLow, d.ThresholdHigh)
	p.single.SetValue(d.RunwayThreshold)
	p.months.SetValue(d.MAMonths)
}

func (p *SettingsPanel) View() string {
	if !p.visible {
		return ""
	}
	if p.confirm.Active() {
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			panelTitleStyle.Render("Settings"),
			"",
			p.confirm.View(),
		))
	}

	low, high := p.dual.Range()
	body := []string{
		panelTitleStyle.Render("Settings"),
		"",
		labelStyle.Render("Moving-average window"),
		p.months.View(),
		"",
		labelStyle.Render(fmt.Sprintf("Runway thresholds: short < %d mo · excess > %d mo", low, high)),
		p.dual.View(),
		"",
		labelStyle.Render(fmt.Sprintf("Highlight runway below %.1f mo", p.single.Value())),
		p.single.View(),
		"",
		dimStyle.Render("enter save · m window · r defaults · esc close"),
	}
	switch p.store.State() {
	case StoreLoading:
		body = append(body, dimStyle.Render("Loading…"))
	case StoreSaving:
		body = append(body, dimStyle.Render("Saving…"))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

package main

import "github.com/charmbracelet/lipgloss"

// ConfirmRequest describes a yes/no prompt shown before a destructive or
// otherwise significant action.
type ConfirmRequest struct {
	Icon         string
	Title        string
	Message      string
	ConfirmLabel string
	Destructive  bool
}

// ConfirmPrompt is a modal yes/no question. While active it owns keyboard
// input; a cancelled prompt leaves whatever it guards entirely untouched.
type ConfirmPrompt struct {
	req    ConfirmRequest
	active bool
}

func newConfirmPrompt() *ConfirmPrompt {
	return &ConfirmPrompt{}
}

// Ask activates the prompt with the given request.
func (c *ConfirmPrompt) Ask(req ConfirmRequest) {
	c.req = req
	c.active = true
}

// Active reports whether the prompt is waiting for an answer.
func (c *ConfirmPrompt) Active() bool {
	return c.active
}

// HandleKey answers the prompt. Returns done=true with the user's choice once
// a decisive key arrives; other keys are ignored.
func (c *ConfirmPrompt) HandleKey(key string) (done, confirmed bool) {
	if !c.active {
		return false, false
	}
	switch key {
	case "y", "enter":
		c.active = false
		return true, true
	case "n", "esc":
		c.active = false
		return true, false
	}
	return false, false
}

func (c *ConfirmPrompt) View() string {
	if !c.active {
		return ""
	}
	style := confirmStyle
	if c.req.Destructive {
		style = confirmDestructiveStyle
	}
	title := c.req.Title
	if c.req.Icon != "" {
		title = c.req.Icon + " " + title
	}
	hint := "enter " + c.req.ConfirmLabel + " · esc cancel"
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		confirmTitleStyle.Render(title),
		"",
		c.req.Message,
		"",
		dimStyle.Render(hint),
	))
}

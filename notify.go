package main

// NotifyKind classifies a user-facing notification.
type NotifyKind int

const (
	NotifyInfo NotifyKind = iota
	NotifySuccess
	NotifyError
	NotifyWarning
)

// Notifier is a fire-and-forget feedback sink.
type Notifier interface {
	Notify(message string, kind NotifyKind)
}

// statusBar is the in-app notification sink: a one-line status area where the
// latest message wins.
type statusBar struct {
	message string
	kind    NotifyKind
	width   int
}

func newStatusBar() *statusBar {
	return &statusBar{}
}

func (s *statusBar) Notify(message string, kind NotifyKind) {
	s.message = message
	s.kind = kind
}

func (s *statusBar) SetWidth(w int) {
	s.width = w
}

func (s *statusBar) View() string {
	if s.message == "" {
		return dimStyle.Render("ctrl+s settings · ctrl+e mouse · ctrl+c quit")
	}
	style := statusInfoStyle
	switch s.kind {
	case NotifySuccess:
		style = statusSuccessStyle
	case NotifyError:
		style = statusErrorStyle
	case NotifyWarning:
		style = statusWarningStyle
	}
	return style.Render(s.message)
}

package ui

import (
	"github.com/justinpbarnett/labmon/internal/poller"
	"github.com/justinpbarnett/labmon/internal/ui/clipboard"
	"github.com/justinpbarnett/labmon/internal/ui/panels"
)

// Aliases to the panels message types, which are the source of truth.

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg clears the status bar flash.
type ClearFlashMsg = panels.ClearFlashMsg

// YankMsg carries text the event list wants on the clipboard.
type YankMsg = panels.YankMsg

// ResultMsg delivers one completed fetch from the poller.
type ResultMsg struct {
	poller.Result
}

// yankDoneMsg reports the outcome of a clipboard write.
type yankDoneMsg struct {
	method clipboard.Method
	err    error
}

// statusTickMsg drives the status bar spinner and relative time.
type statusTickMsg struct{}

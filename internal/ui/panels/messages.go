package panels

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}

// YankMsg asks the app to copy Text to the clipboard.
type YankMsg struct {
	Text string
}

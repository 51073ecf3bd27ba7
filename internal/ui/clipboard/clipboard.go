package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Method names the route a Write took to reach the clipboard.
type Method string

const (
	MethodNative Method = "native"
	MethodOSC52  Method = "osc52"
)

// Seams for tests.
var (
	nativeWrite           = clipboard.WriteAll
	osc52Out    io.Writer = os.Stderr
)

// Write copies text to the system clipboard. It tries the native
// clipboard first (wl-copy, xclip, pbcopy, etc.) then falls back
// to OSC52 for SSH/tmux environments.
func Write(text string) (Method, error) {
	if err := nativeWrite(text); err == nil {
		return MethodNative, nil
	}
	if err := writeOSC52(osc52Out, text); err != nil {
		return "", fmt.Errorf("osc52 clipboard: %w", err)
	}
	return MethodOSC52, nil
}

// writeOSC52 writes text as an OSC 52 set-clipboard escape sequence.
func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded)
	return err
}

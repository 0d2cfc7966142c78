package wizard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// copyToClipboard places text on the system clipboard via the OSC 52
// escape sequence. Terminals without OSC 52 support ignore the sequence
// silently; non-TTY output skips it entirely.
func copyToClipboard(out io.Writer, text string) {
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	fmt.Fprintf(out, "\033]52;c;%s\a", encoded)
}

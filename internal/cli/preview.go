package cli

import (
	"io"
	"os"

	"github.com/jmylchreest/herx/internal/config"
	"golang.org/x/term"
)

// wantPreview reports whether colour swatches should be written to out.
// In auto mode previews are shown only when out is a terminal.
func wantPreview(mode string, out io.Writer) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}

	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

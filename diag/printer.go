package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	warnLabel  = color.New(color.FgYellow, color.Bold)
)

// Fprint writes ds to w, one diagnostic per line, with a colorized
// severity label.
func Fprint(w io.Writer, ds Diagnostics) {
	for _, d := range ds {
		switch d.Severity {
		case SeverityLevelError:
			errorLabel.Fprint(w, "Error: ")
		default:
			warnLabel.Fprint(w, "Warning: ")
		}
		fmt.Fprintln(w, d.Error())
	}
}

// Package display provides the startup banner and small output formatting
// helpers shared by the CLI commands.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var banner = ` _ __ ___ _ __   __ _ _ __ ___   ___| | _(_) |_
| '__/ _ \ '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \ |/ / | __|
| | |  __/ | | | (_| | | | | | |  __/   <| | |_
|_|  \___|_| |_|\__,_|_| |_| |_|\___|_|\_\_|\__|
`

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	c := color.New(color.FgHiMagenta, color.Bold)
	_, _ = c.Fprint(os.Stdout, banner)
	fmt.Fprintln(os.Stdout)
}

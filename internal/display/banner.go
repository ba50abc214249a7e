package display

import (
	"fmt"
	"os"

	"github.com/backmassage/shownamer/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Cyan != "" {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, ` ___ _
/ __| |_  _____ __ ___ _  __ _ _ __  ___ _ _
\__ \ ' \/ _ \ V  V / ' \/ _` + "`" + ` | '  \/ -_) '_|
|___/_||_\___/\_/\_/|_||_\__,_|_|_|_\___|_|
`)
	if term.Cyan != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}

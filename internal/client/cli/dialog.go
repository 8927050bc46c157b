package cli

import (
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/common"
)

func (a *App) showMessage(title, message string) {
	fmt.Fprintf(a.out, "[%s] %s\n", title, message)
}

// showError renders err the same way for every command, so store internals
// never reach the terminal.
func (a *App) showError(err error) {
	a.showMessage(common.Describe(err))
}

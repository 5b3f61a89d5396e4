// Command stylecheck is a developer tool for style sheets of the uistyle
// engine. It checks and formats sheets, lists the built-in themes, and
// resolves the styles of HTML documents.
//
// All commands support --verbose (-v) for debug-level logging.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	logger := newLogger(os.Stderr, log.InfoLevel)
	if err := newRootCommand(logger).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(iconError), err)
		os.Exit(1)
	}
}

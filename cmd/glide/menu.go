package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-glide/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start glide with a menu",
	Long: `Start glide in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game, Esc returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  glide menu
  glide menu --fps 30
  glide menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	sess, closeStore := openSession(logger)

	runErr := tui.RunSession(sess)

	closeStore()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-glide/internal/platform/tui"
	"github.com/vovakirdan/snake-glide/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Hold the left mouse button and the snake steers toward the pointer.
Release it and the snake keeps its current heading.

Controls (terminal):
  Mouse drag   - Steer
  P/Space      - Pause
  R/Click      - Restart (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Controls (window):
  Mouse/touch  - Steer
  Double tap/P - Pause
  R/Tap        - Restart (after game over)
  Esc          - Quit

Examples:
  glide play
  glide play --frontend window
  glide play --seed 42 --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", tui.FrontendID, "Frontend to play with (see 'glide list')")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'glide list' to see available frontends.")
		os.Exit(1)
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	sess, closeStore := openSession(logger)
	logger.Info("starting game", "frontend", frontend.ID(), "seed", sess.Runtime.Seed)

	runErr := frontend.Run(sess)

	// Close before potential exit
	closeStore()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

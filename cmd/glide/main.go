// glide is a snake you steer with the mouse: the head glides toward the
// pointer, the body follows at a fixed spacing, and every piece of food
// makes it longer.
//
// Usage:
//
//	glide list                - List available frontends
//	glide play                - Play in the terminal (or --frontend window)
//	glide menu                - Menu with play and high scores
//	glide serve               - Start SSH server for remote play
//	glide scores              - Show run history and stats
//	glide config              - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.glide/scores.db)
//	--config <path>     - Use a custom tuning file
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination for interactive play (default: ~/.glide/glide.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/snake-glide/internal/platform/tui"
	_ "github.com/vovakirdan/snake-glide/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glide",
	Short: "Glide - a pointer-steered snake",
	Long: `Glide is a snake game without a grid. Hold the mouse button (or a
finger) and the head glides toward the pointer; the body follows in a
smooth chain. Eat the red food to grow, and avoid the walls and your
own body.

Available commands:
  list     - Show the available frontends
  play     - Play a game directly
  menu     - Menu with play and high scores
  serve    - Start SSH server for remote play
  scores   - View run history and stats
  config   - Print the default tuning file

Examples:
  glide play
  glide play --frontend window
  glide menu
  glide serve --ssh :2222
  glide scores --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glide/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.glide/glide.log", "Log file for interactive play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

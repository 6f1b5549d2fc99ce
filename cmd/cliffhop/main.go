// cliffhop is a terminal platformer about dashing across an endless,
// procedurally generated skyline.
//
// Usage:
//
//	cliffhop play [game]      - Play a run (defaults to cliff)
//	cliffhop menu             - Start menu to pick modes interactively
//	cliffhop list             - List available modes
//	cliffhop serve            - Start SSH server for remote play
//	cliffhop scores <game>    - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.cliffhop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game packages to register them
	_ "github.com/velikanov/cliffhop/internal/games/cliff"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cliffhop",
	Short: "Cliff Hopper - an endless platformer for your terminal",
	Long: `Cliff Hopper is a terminal platformer: run right across procedurally
generated platforms, jump gaps, dash through the air, and try not to fall.
Platforms crumble, bounce, and drift; the world gets harder the further
you get.

Available commands:
  play     - Play a run directly
  menu     - Interactive mode picker
  list     - Show all available modes
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  cliffhop play
  cliffhop play cliff_zen
  cliffhop play --seed 42
  cliffhop menu
  cliffhop serve --ssh :2222
  cliffhop scores cliff`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cliffhop/scores.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

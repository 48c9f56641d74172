// stardefender is a retro shoot-'em-up: hold the bottom row against the
// enemies descending from the top of the field.
//
// Usage:
//
//	stardefender play            - Play in the terminal
//	stardefender window          - Play in a graphical window
//	stardefender scores [mode]   - Show high scores
//	stardefender serve           - Start SSH server for remote play
//	stardefender config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 12)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.stardefender/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//
// Defaults may also come from STARDEFENDER_* variables or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardefender",
	Short: "Star Defender - shoot the descending enemies",
	Long: `Star Defender is a retro arcade shooter. Move along the bottom row,
fire upward and destroy enemies before they reach you.

Available commands:
  play     - Play in the terminal (Bubble Tea or classic console)
  window   - Play in a graphical window
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  stardefender play
  stardefender play --frontend tcell --difficulty hard
  stardefender window --assets ./assets
  stardefender serve --ssh :2222
  stardefender scores normal`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd)
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

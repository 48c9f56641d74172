package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/platform/tui"
	"github.com/vovakirdan/star-defender/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the high scores recorded for a difficulty mode.

Scores are filed under the difficulty they were played with: default, easy,
normal, hard or fixed. Without a mode, every mode with scores is listed.

Examples:
  stardefender scores
  stardefender scores hard
  stardefender scores normal --stats
  stardefender scores --tui
  stardefender scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show summary statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of a mode")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
		if config.ParsePreset(mode) == "" && mode != config.DifficultyPreset("").ModeName() {
			fatal("unknown mode %q", mode)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if mode == "" {
			fatal("--clear needs a mode")
		}
		if err := store.ClearScores(mode); err != nil {
			fatal("clearing scores: %v", err)
		}
		fmt.Printf("Cleared %s scores.\n", mode)

	case flagScoresTUI:
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, mode, width, height); err != nil {
			fatal("%v", err)
		}

	default:
		modes := []string{mode}
		if mode == "" {
			if modes, err = store.Modes(); err != nil {
				fatal("listing modes: %v", err)
			}
		}
		if len(modes) == 0 {
			fmt.Println("No scores recorded yet.")
			fmt.Println()
			fmt.Println("Play 'stardefender play' to set the first high score!")
			return
		}
		for i, m := range modes {
			if i > 0 {
				fmt.Println()
			}
			if err := printScores(os.Stdout, store, m, flagScoresLimit, flagScoresStats); err != nil {
				fatal("%v", err)
			}
		}
	}
}

// printScores writes the top scores of a mode as a table.
func printScores(w io.Writer, store *storage.Store, mode string, limit int, withStats bool) error {
	scores, err := store.TopScores(mode, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - Star Defender (%s)\n\n", mode)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tPlayer\tScore\tTicks\tDate")
	fmt.Fprintln(tw, "  ----\t------\t-----\t-----\t----")
	for i, e := range scores {
		fmt.Fprintf(tw, "  %d\t%s\t%d\t%d\t%s\n", i+1, e.Player, e.Score, e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !withStats {
		return nil
	}
	stats, err := store.Stats(mode)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Best: %d  Average: %.1f  Total: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

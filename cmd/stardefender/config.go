package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/star-defender/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the default game config as YAML, ready to be saved to
~/.stardefender/configs/stardefender.yaml or passed with --config.

With --effective, print the config after --config and --difficulty are
applied instead.

Examples:
  stardefender config > ~/.stardefender/configs/stardefender.yaml
  stardefender config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, mode, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatal("encoding config: %v", err)
	}
	fmt.Printf("# mode: %s\n", mode)
	os.Stdout.Write(out)
}

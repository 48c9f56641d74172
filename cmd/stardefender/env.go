package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const envPrefix = "STARDEFENDER_"

// envFlags maps environment variables to the flags they default.
var envFlags = map[string]string{
	"DB":         "db",
	"FPS":        "fps",
	"SEED":       "seed",
	"CONFIG":     "config",
	"DIFFICULTY": "difficulty",
	"LOG_LEVEL":  "log-level",
	"LOG_FILE":   "log-file",
	"ASSETS":     "assets",
	"FRONTEND":   "frontend",
}

// applyEnv fills flags the user did not set from STARDEFENDER_* variables.
// Flags given on the command line always win.
func applyEnv(cmd *cobra.Command) error {
	return applyEnvFrom(cmd, os.LookupEnv)
}

func applyEnvFrom(cmd *cobra.Command, lookup func(string) (string, bool)) error {
	flags := cmd.Flags()
	for env, name := range envFlags {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		val, ok := lookup(envPrefix + env)
		if !ok || val == "" {
			continue
		}
		if err := flags.Set(name, val); err != nil {
			return fmt.Errorf("invalid %s%s=%q: %w", envPrefix, env, val, err)
		}
	}
	return nil
}

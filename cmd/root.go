package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-list.com/task-list/internal/configs"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "task-list",
	Short:         "Task list service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// loadConfig reads .env (when present), the optional TOML file and the environment.
func loadConfig() (config.Config, bool, error) {
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, envLoaded, err
	}
	return cfg, envLoaded, nil
}

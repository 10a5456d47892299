package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings a new session would start with, as YAML.

Settings are read from --config, then ~/.pong/pong.yaml, then
./configs/pong.yaml, falling back to the built-in defaults. Missing fields
keep their default value and out-of-range values are clamped.

Examples:
  pong config
  pong config --default > ~/.pong/pong.yaml
  pong config --config ./tournament.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagShowDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	yml "gopkg.in/yaml.v2"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "specjoin", Version)
		},
	}
}

// NewConfigCommand creates the config command, which prints the effective
// configuration as YAML. The output is a valid config file.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying defaults and the config file.

Example:
  specjoin config > ` + ConfigFileName,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(rootOpts.ConfigPath, nil)
			if err != nil {
				return err
			}
			b, err := yml.Marshal(c)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

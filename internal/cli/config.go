package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstack/pkg/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect wordstack configuration",
	}
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			fmt.Fprintln(c.out, path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	var yamlOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Show prints the built-in defaults merged with the config file, as TOML (or YAML with --yaml).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if yamlOut {
				return c.Config.WriteYAML(c.out)
			}
			return c.Config.WriteTOML(c.out)
		},
	}
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "print as YAML")
	return cmd
}

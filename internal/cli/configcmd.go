package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
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
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			if _, err := os.Stat(path); err != nil {
				printDetail("(file does not exist, built-in defaults apply)")
			}
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			d := cfg.Defaults
			printKeyValue("rankdir", d.RankDir)
			printKeyValue("image_format", d.ImageFormat)
			printKeyValue("style", d.Style)
			printKeyValue("max_requests", fmt.Sprint(d.MaxRequests))
			printKeyValue("timeout", d.Timeout.String())
			printKeyValue("retries", fmt.Sprint(d.Retries))
			fmt.Fprintln(stdout)

			names := cfg.Names()
			if len(names) == 0 {
				printDetail("No endpoints configured")
				return nil
			}
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				ep := cfg.Endpoints[name]
				rows = append(rows, []string{name, ep.URL, ep.Format, ep.Set})
			}
			fmt.Fprintln(stdout, renderTable([]string{"Name", "URL", "Format", "Set"}, rows))
			return nil
		},
	}
}

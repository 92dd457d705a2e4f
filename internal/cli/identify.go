package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// identifyCommand creates the identify command.
func (c *CLI) identifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <endpoint>",
		Short: "Describe a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _, err := c.harvester(args[0], harvestFlags{})
			if err != nil {
				return err
			}
			spinner := newSpinner(cmd.Context(), "Contacting repository...")
			spinner.Start()
			id, err := h.Identify(cmd.Context())
			spinner.Stop()
			if err != nil {
				return err
			}

			printKeyValue("Repository", id.RepositoryName)
			printKeyValue("Base URL", styleLink.Render(id.BaseURL))
			printKeyValue("Protocol", id.ProtocolVersion)
			printKeyValue("Earliest datestamp", id.EarliestDatestamp)
			printKeyValue("Granularity", id.Granularity)
			printKeyValue("Deleted records", id.DeletedRecord)
			if len(id.AdminEmails) > 0 {
				printKeyValue("Admin", strings.Join(id.AdminEmails, ", "))
			}
			fmt.Fprintln(stdout)
			printNextStep("List metadata formats", "oaiview formats "+args[0])
			return nil
		},
	}
}

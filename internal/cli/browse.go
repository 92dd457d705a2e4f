package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/oaiview/pkg/view"
)

// browseOpts holds the flags of the browse command.
type browseOpts struct {
	harvest harvestFlags
	view    viewFlags
	mode    string
	from    string
	until   string
	limit   int
}

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	opts := browseOpts{mode: string(view.ModeXML), limit: 200}
	cmd := &cobra.Command{
		Use:   "browse <endpoint>",
		Short: "Pick a record interactively and display it",
		Long: `List record headers with ListIdentifiers, pick one in an interactive list
and display it with GetRecord. Deleted records are shown but cannot be picked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := view.ParseMode(opts.mode)
			if err != nil {
				return err
			}
			return c.runBrowse(cmd.Context(), args[0], mode, opts)
		},
	}
	opts.harvest.register(cmd)
	opts.view.register(cmd)
	cmd.Flags().StringVar(&opts.mode, "view", opts.mode, "view: "+modeNames())
	cmd.Flags().StringVar(&opts.from, "from", "", "lower datestamp bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.until, "until", "", "upper datestamp bound (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", opts.limit, "list at most this many records (0 for all)")
	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, endpoint string, mode view.Mode, opts browseOpts) error {
	h, ep, err := c.harvester(endpoint, opts.harvest)
	if err != nil {
		return err
	}
	list, err := listOptions(ep.Set, opts.from, opts.until)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Listing records...")
	spinner.Start()
	headers, err := collectWithProgress(ctx, h.ListIdentifiers(list), spinner, opts.limit)
	if err != nil {
		spinner.Stop()
		return err
	}
	if len(headers) == 0 {
		spinner.Stop()
		printWarning("No records in %s", h.Endpoint())
		return nil
	}
	spinner.StopWithSuccess("Found %d records", len(headers))
	fmt.Fprintln(stdout)
	final, err := tea.NewProgram(NewRecordListModel(h.Endpoint(), headers)).Run()
	if err != nil {
		return err
	}
	m, ok := final.(RecordListModel)
	if !ok || m.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	v, dir, err := c.viewer(cfg, opts.view, m.Selected.Identifier)
	if err != nil {
		return err
	}

	spinner = newSpinner(ctx, "Fetching "+m.Selected.Identifier+"...")
	spinner.Start()
	rec, err := h.GetRecord(ctx, m.Selected.Identifier, "")
	spinner.Stop()
	if err != nil {
		return err
	}
	if err := v.Record(ctx, rec, mode, dir); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	printNextStep("Fetch it again", fmt.Sprintf("%s get %s %s --view %s", appName, endpoint, rec.Header.Identifier, mode))
	return nil
}

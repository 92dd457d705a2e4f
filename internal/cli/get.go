package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/oaiview/pkg/view"
)

// getOpts holds the flags of the get command.
type getOpts struct {
	harvest harvestFlags
	view    viewFlags
	mode    string
}

func modeNames() string {
	names := make([]string, len(view.Modes))
	for i, m := range view.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// getCommand creates the get command.
func (c *CLI) getCommand() *cobra.Command {
	opts := getOpts{mode: string(view.ModeXML)}
	cmd := &cobra.Command{
		Use:   "get <endpoint> <identifier>",
		Short: "Fetch one record and display it",
		Long: `Fetch one record with GetRecord and display it.

Views:
  xml       the record XML, highlighted
  tree      the record XML drawn as an element tree
  metadata  the metadata payload in the record's format
            (edm: Turtle, lido: XML subtree, other: XML)
  turtle    the metadata payload parsed as RDF/XML, as Turtle
  graph     the metadata payload parsed as RDF/XML, drawn as a graph
  dot       the element tree description, as DOT text`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := view.ParseMode(opts.mode)
			if err != nil {
				return err
			}
			return c.runGet(cmd.Context(), args[0], args[1], mode, opts)
		},
	}
	opts.harvest.register(cmd)
	opts.view.register(cmd)
	cmd.Flags().StringVar(&opts.mode, "view", opts.mode, "view: "+modeNames())
	return cmd
}

func (c *CLI) runGet(ctx context.Context, endpoint, identifier string, mode view.Mode, opts getOpts) error {
	h, _, err := c.harvester(endpoint, opts.harvest)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	v, dir, err := c.viewer(cfg, opts.view, identifier)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Fetching "+identifier+"...")
	spinner.Start()
	rec, err := h.GetRecord(ctx, identifier, "")
	spinner.Stop()
	if err != nil {
		return err
	}
	c.Logger.Debug("fetched record", "identifier", rec.Header.Identifier, "format", rec.Format(), "deleted", rec.Header.Deleted)
	if rec.Header.Deleted {
		printWarning("%s is deleted", identifier)
	}
	return v.Record(ctx, rec, mode, dir)
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/oaiview/internal/preview"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	harvest harvestFlags
	addr    string
	rankdir string
	limit   int
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: "127.0.0.1:8080", limit: 100}
	cmd := &cobra.Command{
		Use:   "serve <endpoint>",
		Short: "Serve a browsable preview of a repository",
		Long: `Start a local web server listing the records of a repository. Every record
can be opened as highlighted XML, Turtle, or as a rendered tree or graph.

Routes:
  /records                     record list (?limit=N)
  /record?identifier=ID&view=V record view, V is one of ` + modeNames() + `
  /healthz                     liveness probe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], opts)
		},
	}
	opts.harvest.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "tree layout direction: TB or LR (default from config)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", opts.limit, "records listed on the index page")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, endpoint string, opts serveOpts) error {
	h, ep, err := c.harvester(endpoint, opts.harvest)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	rankdir := opts.rankdir
	if rankdir == "" {
		rankdir = cfg.Defaults.RankDir
	}
	dir, err := xmltree.ParseRankDir(rankdir)
	if err != nil {
		return err
	}

	srv := preview.New(h, preview.Options{
		Logger:  c.Logger,
		Style:   cfg.Defaults.Style,
		RankDir: dir,
		Limit:   opts.limit,
		Set:     ep.Set,
	})
	printSuccess("Serving %s", h.Endpoint())
	printKeyValue("URL", fmt.Sprintf("http://%s/records", opts.addr))
	printDetail("ctrl+c to stop")
	if err := srv.ListenAndServe(ctx, opts.addr); err != nil {
		return err
	}
	printInfo("Server stopped")
	return nil
}

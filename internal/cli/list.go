package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/oai"
)

// formatsCommand creates the formats command.
func (c *CLI) formatsCommand() *cobra.Command {
	var identifier string
	cmd := &cobra.Command{
		Use:   "formats <endpoint>",
		Short: "List the metadata formats a repository offers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _, err := c.harvester(args[0], harvestFlags{})
			if err != nil {
				return err
			}
			formats, err := h.ListMetadataFormats(identifier).Collect(cmd.Context())
			if err != nil {
				return err
			}
			if len(formats) == 0 {
				printInfo("No metadata formats")
				return nil
			}
			rows := make([][]string, 0, len(formats))
			for _, f := range formats {
				rows = append(rows, []string{f.Prefix, oai.ParseFormat(f.Prefix).String(), f.Namespace})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Prefix", "View", "Namespace"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&identifier, "identifier", "", "only formats available for this record")
	return cmd
}

// setsCommand creates the sets command.
func (c *CLI) setsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sets <endpoint>",
		Short: "List the sets of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _, err := c.harvester(args[0], harvestFlags{})
			if err != nil {
				return err
			}
			spinner := newSpinner(cmd.Context(), "Listing sets...")
			spinner.Start()
			sets, err := collectWithProgress(cmd.Context(), h.ListSets(), spinner, 0)
			spinner.Stop()
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				printInfo("Repository has no sets")
				return nil
			}
			rows := make([][]string, 0, len(sets))
			for _, s := range sets {
				rows = append(rows, []string{s.Spec, truncate(s.Name, 50), truncate(s.Description, 60)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Spec", "Name", "Description"}, rows))
			return nil
		},
	}
}

// recordsOpts holds the flags of the records command.
type recordsOpts struct {
	harvest     harvestFlags
	view        viewFlags
	from        string
	until       string
	limit       int
	identifiers bool
	xml         bool
	fields      bool
}

// recordsCommand creates the records command.
func (c *CLI) recordsCommand() *cobra.Command {
	opts := recordsOpts{limit: 20}
	cmd := &cobra.Command{
		Use:   "records <endpoint>",
		Short: "List records of a repository",
		Long: `List records of a repository.

By default a table of record headers is printed. --xml prints every record's
XML and --fields its metadata as field/value pairs. Resumption tokens are
followed until --limit records were seen (0 means all).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRecords(cmd.Context(), args[0], opts)
		},
	}
	opts.harvest.register(cmd)
	opts.view.register(cmd)
	cmd.Flags().StringVar(&opts.from, "from", "", "lower datestamp bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.until, "until", "", "upper datestamp bound (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", opts.limit, "stop after this many records (0 for all)")
	cmd.Flags().BoolVar(&opts.identifiers, "identifiers", false, "use ListIdentifiers (headers only)")
	cmd.Flags().BoolVar(&opts.xml, "xml", false, "print the XML of every record")
	cmd.Flags().BoolVar(&opts.fields, "fields", false, "print the metadata fields of every record")
	cmd.MarkFlagsMutuallyExclusive("identifiers", "xml")
	cmd.MarkFlagsMutuallyExclusive("identifiers", "fields")
	return cmd
}

func (c *CLI) runRecords(ctx context.Context, endpoint string, opts recordsOpts) error {
	h, ep, err := c.harvester(endpoint, opts.harvest)
	if err != nil {
		return err
	}
	list, err := listOptions(ep.Set, opts.from, opts.until)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, "Harvesting...")
	spinner.Start()

	var headers []oai.Header
	if opts.identifiers {
		headers, err = collectWithProgress(ctx, h.ListIdentifiers(list), spinner, opts.limit)
		spinner.Stop()
		if err != nil {
			return err
		}
		prog.done("harvested headers", "count", len(headers))
		printHeaders(headers)
		return nil
	}

	records, err := collectWithProgress(ctx, h.ListRecords(list), spinner, opts.limit)
	if err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess("Harvested %d records", len(records))
	prog.done("harvested records", "count", len(records), "format", h.RecordFormat(oai.VerbListRecords))

	switch {
	case opts.xml:
		cfg, err := c.loadConfig()
		if err != nil {
			return err
		}
		v, _, err := c.viewer(cfg, opts.view, "")
		if err != nil {
			return err
		}
		for _, rec := range records {
			if err := v.OAI(rec); err != nil {
				return err
			}
		}
	case opts.fields:
		for _, rec := range records {
			printRecordFields(rec)
		}
	default:
		for _, rec := range records {
			headers = append(headers, rec.Header)
		}
		printHeaders(headers)
	}
	return nil
}

// collectWithProgress drains it, reporting pages on the spinner. A positive
// limit stops early.
func collectWithProgress[T any](ctx context.Context, it *oai.Iterator[T], s *Spinner, limit int) ([]T, error) {
	var out []T
	for v, err := range it.All(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
		s.SetMessage("Harvesting... %d items, %d pages", len(out), it.Requests())
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func listOptions(set, from, until string) (oai.ListOptions, error) {
	opts := oai.ListOptions{Set: set}
	var err error
	if from != "" {
		if opts.From, err = time.Parse(oai.DateFormat, from); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "--from")
		}
	}
	if until != "" {
		if opts.Until, err = time.Parse(oai.DateFormat, until); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "--until")
		}
	}
	if !opts.From.IsZero() && !opts.Until.IsZero() && opts.Until.Before(opts.From) {
		return opts, errors.New(errors.ErrCodeInvalidInput, "--until %s is before --from %s", until, from)
	}
	return opts, nil
}

func printHeaders(headers []oai.Header) {
	if len(headers) == 0 {
		printInfo("No records")
		return
	}
	rows := make([][]string, 0, len(headers))
	deleted := 0
	for _, h := range headers {
		status := ""
		if h.Deleted {
			status = styleDeleted.Render("deleted")
			deleted++
		}
		rows = append(rows, []string{h.Identifier, h.Datestamp, truncate(joinSets(h.SetSpecs), 40), status})
	}
	fmt.Fprintln(stdout, renderTable([]string{"Identifier", "Datestamp", "Sets", ""}, rows))
	if deleted > 0 {
		printWarning("%d of %d records are deleted", deleted, len(headers))
	}
}

func printRecordFields(rec *oai.Record) {
	fmt.Fprintln(stdout, styleTitle.Render(rec.Header.Identifier))
	f, err := rec.Fields()
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return
	}
	if len(f) == 0 {
		printDetail("no metadata")
		return
	}
	for k, values := range f.All() {
		for _, v := range values {
			printKeyValue(k, truncate(v, 100))
		}
	}
	fmt.Fprintln(stdout)
}

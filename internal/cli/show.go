package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/rdfgraph"
	"github.com/matzehuels/oaiview/pkg/view"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// fileModes are the views available for a local document. The metadata
// view needs a harvested record and is left out.
var fileModes = []view.Mode{view.ModeXML, view.ModeTree, view.ModeDOT, view.ModeTurtle, view.ModeGraph}

// showOpts holds the flags of the show command.
type showOpts struct {
	view  viewFlags
	mode  string
	watch bool
}

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	opts := showOpts{mode: string(view.ModeXML)}
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Display a local XML or RDF/XML document",
		Long: `Display a local document without contacting a repository.

Views:
  xml     the document, pretty-printed and highlighted
  tree    the element tree drawn as an image
  dot     the element tree description, as DOT text
  turtle  the document parsed as RDF/XML, as Turtle
  graph   the document parsed as RDF/XML, drawn as a graph

With --watch the view is redrawn whenever the file changes.`,
		Example: `  oaiview show record.xml --view tree -o record.svg -f svg
  oaiview show edm.rdf --view turtle --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := view.ParseMode(opts.mode)
			if err != nil {
				return err
			}
			if !slices.Contains(fileModes, mode) {
				return errors.New(errors.ErrCodeInvalidInput, "view %s needs a harvested record, use 'oaiview get'", mode)
			}
			return c.runShow(cmd.Context(), args[0], mode, opts)
		},
	}
	opts.view.register(cmd)
	cmd.Flags().StringVar(&opts.mode, "view", opts.mode, "view: xml, tree, dot, turtle or graph")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "redraw when the file changes")
	return cmd
}

func (c *CLI) runShow(ctx context.Context, path string, mode view.Mode, opts showOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	v, dir, err := c.viewer(cfg, opts.view, base)
	if err != nil {
		return err
	}

	draw := func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeNotFound, err, "read %s", path)
		}
		return showDocument(ctx, v, string(data), mode, dir)
	}

	if !opts.watch {
		return draw()
	}
	if err := draw(); err != nil {
		printError("%v", err)
	}
	printInfo("Watching %s (ctrl+c to stop)", path)
	return watchFile(ctx, path, c.Logger, func() {
		if err := draw(); err != nil {
			printError("%v", err)
		}
	})
}

// showDocument displays one XML document in a file view mode.
func showDocument(ctx context.Context, v *view.Viewer, doc string, mode view.Mode, dir xmltree.RankDir) error {
	switch mode {
	case view.ModeXML:
		return v.XMLString(doc)
	case view.ModeTree:
		return v.TreeString(ctx, doc, dir)
	case view.ModeDOT:
		el, err := xmltree.Parse(doc)
		if err != nil {
			return err
		}
		return v.DOT(xmltree.ToDOT(el, xmltree.Options{RankDir: dir}))
	case view.ModeTurtle, view.ModeGraph:
		g, err := rdfgraph.Parse(doc)
		if err != nil {
			return err
		}
		if mode == view.ModeTurtle {
			return v.Turtle(g)
		}
		return v.Graph(ctx, g)
	}
	return errors.New(errors.ErrCodeInvalidInput, "view %s is not available for files", mode)
}

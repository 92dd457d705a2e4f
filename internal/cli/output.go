package cli

import (
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/oaiview/pkg/config"
	"github.com/matzehuels/oaiview/pkg/display"
	"github.com/matzehuels/oaiview/pkg/render"
	"github.com/matzehuels/oaiview/pkg/view"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// viewFlags control how a document is displayed.
type viewFlags struct {
	output      string // image path, "-" for stdout
	rankdir     string // TB or LR for XML trees
	imageFormat string // png, svg or jpg
	plain       bool   // no syntax highlighting
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "image file (default: derived from the input, '-' for stdout)")
	cmd.Flags().StringVar(&f.rankdir, "rankdir", "", "tree layout direction: TB or LR (default from config)")
	cmd.Flags().StringVarP(&f.imageFormat, "image-format", "f", "", "image format: png, svg or jpg (default from config)")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "disable syntax highlighting")
}

// viewer builds a Viewer writing code to stdout and images to a file named
// after base unless --output says otherwise.
func (c *CLI) viewer(cfg *config.Config, f viewFlags, base string) (*view.Viewer, xmltree.RankDir, error) {
	rankdir := f.rankdir
	if rankdir == "" {
		rankdir = cfg.Defaults.RankDir
	}
	dir, err := xmltree.ParseRankDir(rankdir)
	if err != nil {
		return nil, "", err
	}
	name := f.imageFormat
	if name == "" {
		name = cfg.Defaults.ImageFormat
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return nil, "", err
	}

	console := &display.Console{
		Out:   os.Stdout,
		Style: cfg.Defaults.Style,
		Plain: f.plain || !isatty.IsTerminal(os.Stdout.Fd()),
		Saved: printFile,
	}
	switch f.output {
	case "-":
	case "":
		console.ImagePath = fileName(base) + "." + string(format)
	default:
		console.ImagePath = f.output
	}

	v := view.New(console)
	v.ImageFormat = format
	return v, dir, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// fileName turns an identifier or path into a safe file name stem.
func fileName(s string) string {
	s = unsafeChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_.")
	if s == "" {
		return "record"
	}
	return truncate(s, 100)
}

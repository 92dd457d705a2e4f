// Package cli implements the oaiview command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/oaiview/pkg/buildinfo"
	"github.com/matzehuels/oaiview/pkg/config"
	"github.com/matzehuels/oaiview/pkg/oai"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "oaiview"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "oaiview harvests OAI-PMH records and shows them as XML trees and RDF graphs",
		Long: `oaiview is a CLI tool for exploring OAI-PMH repositories. It fetches records,
pretty-prints their XML, draws element trees and RDF graphs with Graphviz,
and serves a small preview site for browsing records.

Repositories can be given as URLs or as names from the config file.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $"+config.EnvPath+" or ~/.config/oaiview/config.toml)")

	// Commands whose first argument is a repository.
	for _, cmd := range []*cobra.Command{
		c.identifyCommand(),
		c.formatsCommand(),
		c.setsCommand(),
		c.recordsCommand(),
		c.getCommand(),
		c.browseCommand(),
		c.serveCommand(),
	} {
		cmd.ValidArgsFunction = c.completeEndpoints
		root.AddCommand(cmd)
	}
	root.AddCommand(c.showCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Clients
// =============================================================================

// loadConfig loads the configuration once per process.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path, err := c.resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", path, "endpoints", len(cfg.Endpoints))
	c.cfg = cfg
	return cfg, nil
}

func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	path, err := config.Path()
	if err != nil {
		return "", fmt.Errorf("locate config: %w", err)
	}
	return path, nil
}

// harvestFlags are shared by commands that talk to a repository.
type harvestFlags struct {
	format string
	prefix string
	set    string
}

func (f *harvestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "metadata-format", "m", "", "metadata format: edm, lido or any prefix (default: from config, else oai_dc)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "metadataPrefix sent to the repository (default: the metadata format)")
	cmd.Flags().StringVar(&f.set, "set", "", "restrict lists to a set")
}

// harvester resolves an endpoint argument and builds a client for it.
// Flags win over the endpoint's config entry.
func (c *CLI) harvester(endpoint string, f harvestFlags) (*oai.Client, config.Endpoint, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, config.Endpoint{}, err
	}
	ep, err := cfg.Resolve(endpoint)
	if err != nil {
		return nil, config.Endpoint{}, err
	}
	if f.format != "" {
		ep.Format = f.format
	}
	if f.set != "" {
		ep.Set = f.set
	}

	opts := []oai.Option{
		oai.WithLogger(c.Logger),
		oai.WithTimeout(cfg.Defaults.Timeout),
		oai.WithRetries(cfg.Defaults.Retries),
		oai.WithMaxRequests(cfg.Defaults.MaxRequests),
	}
	if f.prefix != "" {
		opts = append(opts, oai.WithPrefix(f.prefix))
	}
	h := oai.NewHarvester(ep.URL, ep.Format, opts...)
	c.Logger.Debug("harvester", "url", ep.URL, "format", oai.ParseFormat(ep.Format), "prefix", h.Prefix())
	return h, ep, nil
}

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), appName+" "+buildinfo.String())
		},
	}
}

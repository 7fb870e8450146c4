package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstack/pkg/buildinfo"
	"github.com/matzehuels/wordstack/pkg/config"
	"github.com/matzehuels/wordstack/pkg/fetch"
	"github.com/matzehuels/wordstack/pkg/pipeline"
	"github.com/matzehuels/wordstack/pkg/source/local"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "wordstack"

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

	// Config is loaded before every command runs.
	Config     config.Config
	configPath string
	out        io.Writer // command output
	errOut     io.Writer // spinner and status lines
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
		errOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (tables, JSON, config dumps).
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wordstack draws word frequency histograms",
		Long: `Wordstack asks a word-count service (or counts locally) how often each word
appears under a path and draws the result as a horizontal bar chart, with each
bar starting where the previous one ends.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordstack/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.wordsCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Source Flags
// =============================================================================

// sourceFlags selects where word counts come from.
type sourceFlags struct {
	local    bool
	endpoint string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.local, "local", false, "count words on this machine instead of asking the service")
	cmd.Flags().StringVar(&s.endpoint, "endpoint", "", "word-count service URL (default from config)")
}

// flagConfigKeys pairs flags with the config keys they override.
var flagConfigKeys = [][2]string{
	{"order", "order"},
	{"mode", "mode"},
	{"width", "width"},
	{"bar-height", "bar_height"},
	{"format", "formats"},
	{"scale", "scale"},
	{"top", "top"},
}

// explicitKeys returns the config keys whose flags were set on cmd.
func explicitKeys(cmd *cobra.Command) []string {
	var keys []string
	for _, fk := range flagConfigKeys {
		if cmd.Flags().Changed(fk[0]) {
			keys = append(keys, fk[1])
		}
	}
	return keys
}

// newRunner creates a pipeline runner backed by the selected source.
func (c *CLI) newRunner(src sourceFlags) (*pipeline.Runner, error) {
	var f fetch.Fetcher
	if src.local {
		f = local.NewCounter(local.WithLogger(c.Logger))
	} else {
		endpoint := src.endpoint
		if endpoint == "" {
			endpoint = c.Config.Endpoint
		}
		timeout, err := c.Config.RequestTimeout()
		if err != nil {
			return nil, err
		}
		client, err := fetch.NewClient(endpoint,
			fetch.WithTimeout(timeout),
			fetch.WithLogger(c.Logger))
		if err != nil {
			return nil, err
		}
		f = client
	}
	return pipeline.NewRunner(f, c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// basePath derives the output path stem. An explicit output loses a known
// format extension; otherwise the stem is the last element of the input path.
func basePath(output, input string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	name := filepath.Base(filepath.Clean(input))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return appName
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Package cli contains the fakeimg cobra commands
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fakeimage/internal/config"
	"github.com/goliatone/go-fakeimage/pkg/host"
	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/plugin"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

// BuildInfo is stamped into the binary at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Built   string
}

// Option configures the root command.
type Option func(*app)

// WithPrompter replaces the survey-backed prompter.
func WithPrompter(prompter Prompter) Option {
	return func(a *app) {
		if prompter != nil {
			a.prompter = prompter
		}
	}
}

// WithBuildInfo sets the version details printed by the version command.
func WithBuildInfo(info BuildInfo) Option {
	return func(a *app) {
		if info.Version != "" {
			a.build.Version = info.Version
		}
		if info.Commit != "" {
			a.build.Commit = info.Commit
		}
		if info.Built != "" {
			a.build.Built = info.Built
		}
	}
}

// WithLogOutput redirects log output. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *app) {
		if w != nil {
			a.logOut = w
		}
	}
}

type app struct {
	prompter Prompter
	build    BuildInfo
	logOut   io.Writer

	cfgFile   string
	verbose   bool
	sizesFile string
	baseURL   string

	cfg      *config.Config
	logger   *slog.Logger
	registry *sizes.Static
}

// NewRootCommand builds the fakeimg command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{
		prompter: surveyPrompter{},
		build:    BuildInfo{Version: "dev", Commit: "unknown", Built: "unknown"},
		logOut:   os.Stderr,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	root := &cobra.Command{
		Use:   "fakeimg",
		Short: "Placeholder image references for missing media",
		Long: `fakeimg resolves named image sizes and prints the placeholder
references, markup and field values a host would receive when real media is
missing.

Example usage:
  fakeimg ref thumbnail          # holder.js/150x150
  fakeimg ref --interactive      # pick a size from the registry
  fakeimg sizes --json           # every known size with its ref
  fakeimg fill image --format url`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .fakeimg.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&a.sizesFile, "sizes", "", "size registry file (YAML or JSON)")
	flags.StringVar(&a.baseURL, "base-url", "", "placeholder base URL (default holder.js)")

	root.AddCommand(
		a.newRefCommand(),
		a.newSizesCommand(),
		a.newFillCommand(),
		a.newVersionCommand(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.logger = newLogger(a.logOut, a.verbose)

	overrides := map[string]any{}
	if cmd.Flags().Changed("sizes") {
		overrides["sizes_file"] = a.sizesFile
	}
	if cmd.Flags().Changed("base-url") {
		overrides["base_url"] = a.baseURL
	}

	cfg, err := config.Load(a.cfgFile, overrides)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	if strings.EqualFold(cfg.Logging.Level, "debug") || a.verbose {
		a.logger = newLogger(a.logOut, true)
	}

	a.registry = sizes.Defaults()
	if cfg.SizesFile != "" {
		reg, err := sizes.LoadFile(cfg.SizesFile)
		if err != nil {
			return fmt.Errorf("loading sizes: %w", err)
		}
		a.registry = reg
	}

	a.logger.Debug("configuration loaded",
		"base_url", cfg.BaseURL,
		"sizes_file", cfg.SizesFile,
		"theme", cfg.Theme.Name,
	)
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) builderOptions() ([]placeholder.Option, error) {
	opts := []placeholder.Option{
		placeholder.WithBaseURL(a.cfg.BaseURL),
		placeholder.WithLogger(a.logger),
	}
	if a.cfg.Theme.File != "" {
		selector, err := loadThemeSelector(a.cfg.Theme.File)
		if err != nil {
			return nil, err
		}
		opts = append(opts, placeholder.WithTheme(selector, a.cfg.Theme.Name, a.cfg.Theme.Variant))
	}
	return opts, nil
}

func (a *app) newBuilder() (*placeholder.Builder, error) {
	opts, err := a.builderOptions()
	if err != nil {
		return nil, err
	}
	return placeholder.New(opts...), nil
}

// newHost registers a plugin configured from the loaded config against an
// in-memory host over the active size registry.
func (a *app) newHost(extra ...plugin.Option) (*host.Memory, error) {
	opts := []plugin.Option{
		plugin.WithBaseURL(a.cfg.BaseURL),
		plugin.WithGalleryCount(a.cfg.GalleryCount),
		plugin.WithLogger(a.logger),
	}
	if a.cfg.Theme.File != "" {
		selector, err := loadThemeSelector(a.cfg.Theme.File)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plugin.WithTheme(selector, a.cfg.Theme.Name, a.cfg.Theme.Variant))
	}

	p, err := plugin.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	h := host.NewMemory(a.registry)
	if err := p.Register(h); err != nil {
		return nil, err
	}
	return h, nil
}

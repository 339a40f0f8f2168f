// Command fitfolio renders the coaching site as a full-screen terminal page:
// one tall scrollable document with a persistent nav header, a floating
// scroll-progress dial, and a contact form at the bottom.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fitfolio/cmd/fitfolio/config"
	"fitfolio/cmd/fitfolio/page"
	"fitfolio/internal/content"
	"fitfolio/internal/logging"
)

var version = "0.3.0"

var (
	flagContent string
	flagTheme   string
	flagNoMouse bool
	flagNoWatch bool
)

var rootCmd = &cobra.Command{
	Use:   "fitfolio",
	Short: "Terminal one-pager for FORGE / CARTER personal training",
	Long: `fitfolio presents the studio's one-page site in the terminal: hero,
trainer bio, client results, programs, testimonials, and a contact form,
stacked into a single scrollable document.

Content comes from an optional YAML file (see 'fitfolio check') and is
reloaded live while the page is open.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage()
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a content file without opening the page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagContent
		if len(args) > 0 {
			path = args[0]
		}
		return runCheck(path)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitfolio %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagContent, "content", "c", "", "path to a YAML content file")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: light or dark (default: auto)")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse support")
	rootCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "disable live content reloading")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig merges saved preferences with command-line overrides.
func resolveConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default config: %v\n", err)
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagContent != "" {
		cfg.ContentPath = flagContent
	}
	if flagNoMouse {
		cfg.Mouse = false
	}
	if flagNoWatch {
		cfg.Watch = false
	}
	return cfg
}

func runPage() error {
	cfg := resolveConfig()

	if cwd, err := os.Getwd(); err == nil {
		if err := logging.Initialize(cwd); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
	}
	defer logging.CloseAll()
	logging.Boot("fitfolio %s starting", version)

	site, err := content.LoadOrDefault(cfg.ContentPath)
	if err != nil {
		return err
	}

	model := page.New(cfg, site)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch && cfg.ContentPath != "" {
		watcher, err := content.NewWatcher(cfg.ContentPath, func(site content.Site) {
			program.Send(page.ContentReloadedMsg{Site: site})
		})
		if err != nil {
			logging.BootError("watcher unavailable: %v", err)
		} else if err := watcher.Start(ctx); err == nil {
			defer watcher.Stop()
		}
	}

	final, err := program.Run()
	if m, ok := final.(page.Model); ok {
		m.Tracker().Close()
	}
	if err != nil {
		return fmt.Errorf("page exited with error: %w", err)
	}
	logging.Boot("fitfolio exiting cleanly")
	return nil
}

// runCheck validates a content file and reports its shape. Output goes to a
// structured logger so the command composes with scripts and CI.
func runCheck(path string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if path == "" {
		logger.Info("no content file given, checking built-in content")
		site := content.Default()
		if err := site.Validate(); err != nil {
			return err
		}
		logger.Info("built-in content ok", zap.String("brand", site.Brand))
		return nil
	}

	site, err := content.Load(path)
	if err != nil {
		logger.Error("content check failed", zap.String("file", path), zap.Error(err))
		return err
	}

	logger.Info("content ok",
		zap.String("file", path),
		zap.String("brand", site.Brand),
		zap.Int("programs", len(site.Programs)),
		zap.Int("results", len(site.Results)),
		zap.Int("testimonials", len(site.Testimonials)),
		zap.Int("goals", len(site.Contact.ParsedGoals())),
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

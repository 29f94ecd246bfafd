package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ideaforge/internal/catalog"
	"ideaforge/internal/config"
	"ideaforge/internal/generator"
	"ideaforge/internal/library"
	"ideaforge/internal/llm"
	"ideaforge/internal/logging"
	"ideaforge/internal/prefs"
	"ideaforge/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ideaforge",
	Short: "ideaforge - AI project idea generator for electronics tinkerers",
	Long: `ideaforge turns a handful of selected hardware components into concrete,
buildable STEM project ideas using large language models.

Pick components from the catalog, set your skill level and theme, and
ideaforge prompts a model of your choice, normalizes the reply into
structured project records, and keeps your idea library in sync across a
remote store and a local database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.File, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		for _, w := range cfg.Warnings() {
			fmt.Fprintln(os.Stderr, warnStyle.Render("warning: "+w))
		}

		appCfg = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// appCfg is the loaded configuration, set by the root PersistentPreRunE.
var appCfg *config.Config

// app holds the wired services for one command invocation.
type app struct {
	cfg       *config.Config
	local     *store.Local
	remote    store.Remote
	catalog   *catalog.Service
	library   *library.Coordinator
	prefs     *prefs.PreferencesRepository
	stats     *prefs.StatsRepository
	generator *generator.Service
}

// newApp wires every service from the loaded configuration. The generator is
// only built when withLLM is set, so catalog and library commands work
// without any API key.
func newApp(withLLM bool) (*app, error) {
	local, err := store.OpenLocal(appCfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	var remote store.Remote = store.NewOffline()
	if appCfg.Remote.BaseURL != "" {
		remote = store.NewRESTRemote(store.RESTConfig{
			BaseURL:   appCfg.Remote.BaseURL,
			ProjectID: appCfg.Remote.ProjectID,
			APIKey:    appCfg.Remote.APIKey,
			Timeout:   appCfg.RemoteTimeout(),
		})
	}

	a := &app{
		cfg:     appCfg,
		local:   local,
		remote:  remote,
		catalog: catalog.NewService(remote, local, logger),
		library: library.NewCoordinator(remote, local, logger),
		prefs:   prefs.NewPreferencesRepository(local),
		stats:   prefs.NewStatsRepository(local),
	}

	if withLLM {
		client, err := llm.NewClientFromConfig(llm.BackendConfig{
			Mode:     llm.Mode(appCfg.LLM.Mode),
			APIKey:   appCfg.LLM.APIKey,
			BaseURL:  appCfg.LLM.BaseURL,
			ProxyURL: appCfg.LLM.ProxyURL,
			Timeout:  appCfg.LLMTimeout(),
		})
		if err != nil {
			local.Close()
			return nil, err
		}
		adapter := llm.NewAdapter(client, logger)
		a.generator = generator.NewService(adapter, a.prefs, a.stats, appCfg.GenerationDefaults(), logger)
	}

	return a, nil
}

func (a *app) close() {
	if a.local != nil {
		_ = a.local.Close()
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")

	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(ideasCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

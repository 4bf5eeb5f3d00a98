package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/diillson/billswitch/internal/adapter/driven/config"
	"github.com/diillson/billswitch/internal/application/usecase"
	"github.com/diillson/billswitch/internal/domain/repository"
	"github.com/diillson/billswitch/internal/shared/types"
	"github.com/diillson/billswitch/pkg/logging"
	"github.com/diillson/billswitch/pkg/version"
)

// UseCaseBuilder monta o caso de uso depois que a configuração é conhecida.
// withExtractor é falso para comandos que nunca enviam uma conta.
type UseCaseBuilder func(cfg types.Config, withExtractor, showProgress bool) (*usecase.AnalysisUseCase, error)

// ServerRunner starts the HTTP API and blocks until ctx is done.
type ServerRunner func(ctx context.Context, uc *usecase.AnalysisUseCase, cfg types.Config) error

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	buildUC    UseCaseBuilder
	runServer  ServerRunner
	version    string

	checkUpdates bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,

		checkUpdates: true,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "billswitch",
		Short:         "Find out what it costs to leave your mobile carrier, and what you would save",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			logging.Setup(level, slog.LevelWarn)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner(app.version)
			return cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "billswitch version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level: debug, info, warn, error (default: LOG_LEVEL or warn)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	rootCmd.AddCommand(
		app.newAnalyzeCmd(),
		app.newNormalizeCmd(),
		app.newCarriersCmd(),
		app.newCoverageCmd(),
		app.newServeCmd(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetUseCaseBuilder define como o caso de uso é construído.
func (app *CLIApp) SetUseCaseBuilder(builder UseCaseBuilder) {
	app.buildUC = builder
}

// SetServerRunner define como o servidor HTTP é iniciado.
func (app *CLIApp) SetServerRunner(runner ServerRunner) {
	app.runServer = runner
}

func (app *CLIApp) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <bill-file>",
		Short: "Extract a bill (PDF or image) and compare the cost of switching carriers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner(app.version)
			if app.checkUpdates {
				go version.CheckLatestVersion(app.version)
			}

			cfg, cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			uc, err := app.buildUC(cfg, true, cliArgs.Progress)
			if err != nil {
				return err
			}
			return uc.RunAnalysis(cmd.Context(), cliArgs)
		},
	}
	cmd.Flags().String("extractor", "", "Extraction backend: webhook or openai (default: whichever is configured)")
	cmd.Flags().String("webhook-url", "", "Extraction webhook URL (overrides BILL_WEBHOOK_URL)")
	cmd.Flags().Bool("progress", true, "Show upload progress")
	addComparisonFlags(cmd)
	return cmd
}

func (app *CLIApp) newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <extraction.json>",
		Short: "Normalize a saved extraction response without calling the extractor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			uc, err := app.buildUC(cfg, false, false)
			if err != nil {
				return err
			}
			return uc.RunNormalize(cmd.Context(), cliArgs)
		},
	}
	addComparisonFlags(cmd)
	return cmd
}

func (app *CLIApp) newCarriersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carriers",
		Short: "Compare the carrier catalog against a monthly price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			uc, err := app.buildUC(cfg, false, false)
			if err != nil {
				return err
			}
			return uc.RunCarriers(cmd.Context(), cliArgs)
		},
	}
	cmd.Flags().String("sort", "", "Sort by price or coverage (default: price)")
	cmd.Flags().Float64("current-price", 0, "What you pay per month today (default: the sample plan)")
	cmd.Flags().Int("lines", 0, "Number of lines to price")
	cmd.Flags().Bool("details", false, "Show plans, pros and cons of the major carriers")
	return cmd
}

func (app *CLIApp) newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Check carrier coverage at your home and work ZIP codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			if cliArgs.HomeZip == "" || cliArgs.WorkZip == "" {
				return fmt.Errorf("both --home and --work are required")
			}
			uc, err := app.buildUC(cfg, false, false)
			if err != nil {
				return err
			}
			return uc.RunCoverage(cmd.Context(), cliArgs)
		},
	}
	cmd.Flags().String("home", "", "Home ZIP code")
	cmd.Flags().String("work", "", "Work ZIP code")
	return cmd
}

func (app *CLIApp) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bill analysis HTTP API",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			logging.Setup(level, slog.LevelInfo)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			uc, err := app.buildUC(cfg, true, false)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.runServer(ctx, uc, cfg)
		},
	}
	cmd.Flags().String("listen", "", "Listen address (default: "+types.DefaultListenAddr+")")
	cmd.Flags().String("extractor", "", "Extraction backend: webhook or openai")
	cmd.Flags().String("webhook-url", "", "Extraction webhook URL")
	return cmd
}

func addComparisonFlags(cmd *cobra.Command) {
	cmd.Flags().String("sort", "", "Sort carriers by price or coverage (default: price)")
	cmd.Flags().String("home", "", "Home ZIP code for a coverage check")
	cmd.Flags().String("work", "", "Work ZIP code for a coverage check")
}

// parseArgs resolve a configuração (flags > arquivo > ambiente > padrões) e os argumentos do comando.
func (app *CLIApp) parseArgs(cmd *cobra.Command, positional []string) (types.Config, *types.CLIArgs, error) {
	if err := app.configRepo.LoadDotEnv(".env"); err != nil {
		slog.Warn("could not load .env", "error", err)
	}

	cfg := config.Merge(defaultConfig(), config.FromEnv())

	configFile, _ := cmd.Flags().GetString("config-file")
	if configFile != "" {
		fileCfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return types.Config{}, nil, err
		}
		cfg = config.Merge(cfg, *fileCfg)
	}

	cfg = config.Merge(cfg, flagConfig(cmd.Flags()))

	dir, err := outputDir(cfg.Dir)
	if err != nil {
		return types.Config{}, nil, err
	}
	cfg.Dir = dir

	progress, _ := cmd.Flags().GetBool("progress")
	currentPrice, _ := cmd.Flags().GetFloat64("current-price")
	lines, _ := cmd.Flags().GetInt("lines")
	details, _ := cmd.Flags().GetBool("details")

	cliArgs := &types.CLIArgs{
		ConfigFile:   configFile,
		Extractor:    cfg.Extractor,
		WebhookURL:   cfg.WebhookURL,
		HomeZip:      cfg.HomeZip,
		WorkZip:      cfg.WorkZip,
		SortBy:       cfg.SortBy,
		CurrentPrice: currentPrice,
		Lines:        lines,
		Details:      details,
		ReportName:   cfg.ReportName,
		ReportType:   cfg.ReportType,
		Dir:          cfg.Dir,
		ListenAddr:   cfg.ListenAddr,
		Progress:     progress,
	}
	if len(positional) > 0 {
		cliArgs.BillFile = positional[0]
	}

	slog.Debug("configuration resolved",
		"extractor", cfg.Extractor,
		"webhook_configured", cfg.WebhookURL != "",
		"openai_configured", cfg.OpenAIAPIKey != "",
		"config_file", configFile,
	)
	return cfg, cliArgs, nil
}

func defaultConfig() types.Config {
	return types.Config{
		OpenAIModel: types.DefaultOpenAIModel,
		MaxUploadMB: types.DefaultMaxUploadMB,
		ListenAddr:  types.DefaultListenAddr,
		ReportType:  []string{"csv"},
	}
}

// flagConfig considera apenas as flags informadas explicitamente.
func flagConfig(flags *pflag.FlagSet) types.Config {
	var cfg types.Config
	str := func(name string) string {
		if !flags.Changed(name) {
			return ""
		}
		v, _ := flags.GetString(name)
		return v
	}

	cfg.Extractor = str("extractor")
	cfg.WebhookURL = str("webhook-url")
	cfg.HomeZip = str("home")
	cfg.WorkZip = str("work")
	cfg.SortBy = str("sort")
	cfg.ReportName = str("report-name")
	cfg.Dir = str("dir")
	cfg.ListenAddr = str("listen")
	if flags.Changed("report-type") {
		cfg.ReportType, _ = flags.GetStringSlice("report-type")
	}
	return cfg
}

// outputDir converte o diretório de saída em caminho absoluto.
func outputDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

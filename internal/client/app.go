package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/adapter"
	"github.com/MKhiriev/cidr-viewer/internal/appconfig"
	"github.com/MKhiriev/cidr-viewer/internal/config"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// options holds the persistent flags shared by every command.
type options struct {
	configURL  string
	configFile string
	timeout    time.Duration
	output     string
	logLevel   string
}

// session is everything a command needs to talk to the API. It is built
// once per invocation, after flags have been parsed.
type session struct {
	cfg      *config.ClientConfig
	loader   *appconfig.Loader
	adapter  adapter.ServerAdapter
	services *service.ClientServices
	logger   *logger.Logger
}

type App struct {
	root *cobra.Command
	info models.AppBuildInfo
	opts options

	logger  *logger.Logger
	session *session
}

func NewApp(info models.AppBuildInfo, logger *logger.Logger) *App {
	a := &App{info: info, logger: logger}
	a.root = a.newRootCommand()
	return a
}

// Run implements Client.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cidr-client",
		Short:         "Command line client of the CIDR analysis API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.output != outputTable && a.opts.output != outputJSON {
				return fmt.Errorf("%w: %q, expected %q or %q", ErrInvalidOutputFormat, a.opts.output, outputTable, outputJSON)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configURL, "config-url", "", "URL or path of the runtime configuration document (app-config.json)")
	flags.StringVarP(&a.opts.configFile, "config", "c", "", "Path to a JSON client configuration file")
	flags.DurationVar(&a.opts.timeout, "timeout", 0, "Per-request timeout, overrides apiTimeout of the runtime configuration")
	flags.StringVarP(&a.opts.output, "output", "o", outputTable, "Output format: table or json")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		a.newAnalyzeCommand(),
		a.newValidateCommand(),
		a.newHealthCommand(),
		a.newConfigCommand(),
		a.newVersionCommand(),
	)

	return root
}

// connect builds the session on first use. The runtime configuration
// document is fetched in the background right away so that the first API
// call usually finds it cached.
func (a *App) connect(ctx context.Context) (*session, error) {
	if a.session != nil {
		return a.session, nil
	}

	cfg, err := config.GetClientConfig(config.ClientConfig{
		Adapter:      config.ClientAdapter{ConfigURL: a.opts.configURL},
		Logging:      config.ClientLogging{Level: a.opts.logLevel},
		JSONFilePath: a.opts.configFile,
	})
	if err != nil {
		return nil, fmt.Errorf("error getting client configs: %w", err)
	}

	log := a.logger.WithLevel(cfg.Logging.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	source, err := appconfig.NewSource(cfg.Adapter.ConfigURL)
	if err != nil {
		return nil, fmt.Errorf("error creating config source: %w", err)
	}

	loader := appconfig.NewLoader(source, log, appconfig.WithLoadTimeout(cfg.Adapter.ConfigLoadTimeout))
	appconfig.Init(loader)
	loader.Preload(ctx)

	serverAdapter := adapter.NewHTTPServerAdapter(loader, log)

	a.session = &session{
		cfg:      cfg,
		loader:   loader,
		adapter:  serverAdapter,
		services: service.NewClientServices(serverAdapter),
		logger:   log,
	}
	return a.session, nil
}

// callOptions turns the --timeout flag into adapter options.
func (a *App) callOptions() []adapter.CallOption {
	if a.opts.timeout > 0 {
		return []adapter.CallOption{adapter.WithTimeout(a.opts.timeout)}
	}
	return nil
}

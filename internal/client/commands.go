package client

import (
	"fmt"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/adapter"
	"github.com/MKhiriev/cidr-viewer/internal/appconfig"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/spf13/cobra"
)

func (a *App) newAnalyzeCommand() *cobra.Command {
	var vpc, subnets []string

	cmd := &cobra.Command{
		Use:   "analyze [cidr...]",
		Short: "Analyze CIDR ranges for gaps and overlaps",
		Example: `  cidr-client analyze 10.0.0.0/24 10.0.2.0/24
  cidr-client analyze --vpc 10.0.0.0/16 --subnet 10.0.1.0/24,10.0.2.0/24`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.AnalysisRequest{CIDRs: args, VPCCIDRs: vpc, SubnetCIDRs: subnets}
			if req.Len() == 0 {
				return ErrNoCIDRsProvided
			}
			if req.CIDRs == nil {
				req.CIDRs = []string{}
			}

			s, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			payload, err := s.adapter.AnalyzeCIDRs(cmd.Context(), req, a.callOptions()...)
			if err != nil {
				return err
			}

			return a.renderPayload(cmd, payload, func(p *printer) error {
				resp, err := adapter.DecodeAs[models.AnalysisResponse](payload)
				if err != nil {
					return err
				}
				p.analysis(resp)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&vpc, "vpc", nil, "VPC CIDR ranges")
	cmd.Flags().StringSliceVar(&subnets, "subnet", nil, "Subnet CIDR ranges")

	return cmd
}

func (a *App) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <cidr>",
		Short: "Validate a single CIDR range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			payload, err := s.adapter.ValidateCIDR(cmd.Context(), args[0], a.callOptions()...)
			if err != nil {
				return err
			}

			return a.renderPayload(cmd, payload, func(p *printer) error {
				r, err := adapter.DecodeAs[models.CIDRRange](payload)
				if err != nil {
					return err
				}
				p.cidrRange(r)
				return nil
			})
		},
	}
}

func (a *App) newHealthCommand() *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the API health",
		Long: `Check the API health once, or with --watch keep polling it and print
every change of state until interrupted. Use --watch=5s to set the interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("watch") {
				payload, err := s.adapter.HealthCheck(cmd.Context(), a.callOptions()...)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrAPIUnhealthy, err)
				}
				return a.renderPayload(cmd, payload, func(p *printer) error {
					resp, err := adapter.DecodeAs[models.HealthResponse](payload)
					if err != nil {
						return err
					}
					p.health(resp)
					return nil
				})
			}

			if watch <= 0 {
				watch = s.cfg.Workers.HealthInterval
			}
			return a.watchHealth(cmd, s.services.HealthMonitor, watch)
		},
	}

	cmd.Flags().DurationVar(&watch, "watch", 0, "Poll the API at this interval until interrupted (0 uses the configured interval)")
	cmd.Flags().Lookup("watch").NoOptDefVal = "0s"

	return cmd
}

func (a *App) watchHealth(cmd *cobra.Command, monitor service.HealthMonitor, interval time.Duration) error {
	ctx := cmd.Context()

	monitor.Start(ctx, interval, func(status service.HealthStatus) {
		if err := a.render(cmd, status, func(p *printer) { p.healthStatus(status) }); err != nil {
			a.logger.Err(err).Msg("error printing health status")
		}
	})
	defer monitor.Stop()

	<-ctx.Done()
	return nil
}

func (a *App) newConfigCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the runtime configuration used to reach the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.connect(cmd.Context()); err != nil {
				return err
			}

			if refresh {
				appconfig.ClearConfigCache()
			}
			cfg := appconfig.GetConfig(cmd.Context())

			return a.render(cmd, cfg.Values, func(p *printer) { p.appConfig(cfg) })
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Drop the cached document and fetch it again")

	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{
				"version": a.info.BuildVersion(),
				"date":    a.info.BuildDate(),
				"commit":  a.info.BuildCommit(),
			}
			return a.render(cmd, info, func(p *printer) { p.buildInfo(a.info) })
		},
	}
}

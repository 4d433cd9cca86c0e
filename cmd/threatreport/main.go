package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"briefkit/internal/config"
	"briefkit/internal/feed"
	"briefkit/internal/mailer"
	"briefkit/internal/report"
	"briefkit/internal/scheduler"
	"briefkit/internal/tui"
)

const version = "0.3.0"

func main() {
	_ = godotenv.Load()
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "threatreport",
	Short: "Scheduled threat-intelligence PDF reports by email",
}

func init() {
	rootCmd.AddCommand(
		runCmd(),
		serveCmd(),
		configureCmd(),
		versionCmd(),
	)
}

func runCmd() *cobra.Command {
	var skipMail bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch the feed, build the report, and email it once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ValidateReporting(); err != nil {
				return err
			}
			return runReport(cmd.Context(), cfg, skipMail)
		},
	}

	cmd.Flags().BoolVar(&skipMail, "no-mail", false, "build the PDF but skip sending email")

	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the report on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ValidateReporting(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched := scheduler.New()
			err = sched.Add(cfg.Schedule.Cron, "threat-report", func(ctx context.Context) error {
				// Reload so config edits apply to the next run
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if err := cfg.ValidateReporting(); err != nil {
					return err
				}
				return runReport(ctx, cfg, false)
			})
			if err != nil {
				return err
			}

			log.Printf("threatreport: scheduled with cron %q", cfg.Schedule.Cron)
			sched.Run(ctx)
			return nil
		},
	}
}

func runReport(ctx context.Context, cfg *config.Config, skipMail bool) error {
	client := feed.NewClient(feed.Config{
		BaseURL:  cfg.Feed.BaseURL,
		APIKey:   cfg.APIKeyForProvider("otx"),
		MaxPages: cfg.Feed.MaxPages,
		Lookback: cfg.Feed.Lookback,
		Timeout:  cfg.Feed.Timeout,
	})

	builder := report.NewBuilder(client, cfg.Report.Title, cfg.Report.OutputDir, report.Options{
		TopTypes:       cfg.Report.TopTypes,
		TopAdversaries: cfg.Report.TopAdversaries,
		TopCountries:   cfg.Report.TopCountries,
		Window:         cfg.Feed.Lookback,
	})

	result, err := builder.Run(ctx)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if skipMail {
		fmt.Printf("Report written to %s\n", result.Path)
		return nil
	}

	m := mailer.New(mailer.Config{
		Host:          cfg.Mail.Host,
		Port:          cfg.Mail.Port,
		Username:      cfg.Mail.Username,
		Password:      cfg.SMTPPassword(),
		From:          cfg.Mail.From,
		To:            cfg.Mail.To,
		SubjectPrefix: cfg.Mail.SubjectPrefix,
		TLS:           cfg.Mail.TLS,
	})

	ds := result.Dataset
	subject := fmt.Sprintf("Threat Report %s", ds.GeneratedAt.Format("2006-01-02"))
	body := fmt.Sprintf(
		"Attached is the latest threat intelligence report.\n\n"+
			"Pulses: %d\nIndicators: %d\nIndicator types: %d\n",
		ds.TotalPulses, ds.TotalIndicators, len(ds.TypeCounts))

	return m.SendReport(ctx, subject, body, result.Path)
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure()
		},
	}
}

func runConfigure() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := tui.Run(cfg)
	if err != nil {
		return fmt.Errorf("configuration wizard error: %w", err)
	}

	if result.Cancelled {
		fmt.Println("Configuration cancelled.")
		return nil
	}

	if err := config.Save(result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, _ := config.GetConfigPath()
	fmt.Println("Configuration saved successfully!")
	fmt.Printf("Config file location: %s\n", configPath)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "threatreport %s\n", version)
		},
	}
}

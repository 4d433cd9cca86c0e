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
	"briefkit/internal/deps"
	"briefkit/internal/pipeline"
	"briefkit/internal/tui"
	"briefkit/internal/web"
)

const version = "0.3.0"

func main() {
	_ = godotenv.Load()
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "videosummary",
	Short: "Transcribe and summarize video audio behind a web form",
}

func init() {
	rootCmd.AddCommand(
		serveCmd(),
		summarizeCmd(),
		configureCmd(),
		versionCmd(),
	)
}

func serveCmd() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the summarizer web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(func(c *config.Config) error {
				return c.ValidateSummarizer()
			})
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := manager.StartWatching(ctx); err != nil {
				return fmt.Errorf("failed to watch config: %w", err)
			}
			defer manager.Stop()

			if status := deps.CheckYtdlp(); !status.Installed {
				log.Printf("serve: yt-dlp not found in PATH, downloads will fail until it is installed")
			}
			if status := deps.CheckFFmpeg(); !status.Installed {
				log.Printf("serve: ffmpeg not found in PATH, audio extraction may fail for some videos")
			}

			server := web.New(manager, func(ctx context.Context, videoURL string) (string, error) {
				p, err := pipeline.FromConfig(manager.GetConfig())
				if err != nil {
					return "", err
				}
				return p.SummarizeURL(ctx, videoURL)
			})
			server.OverrideAddr(host, port)

			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "host to bind the server to (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "port to run the server on (overrides config)")

	return cmd
}

func summarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <video-url>",
		Short: "Summarize a single video and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ValidateSummarizer(); err != nil {
				return err
			}

			p, err := pipeline.FromConfig(cfg)
			if err != nil {
				return err
			}

			summary, err := p.SummarizeURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(summary)
			return nil
		},
	}
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
			fmt.Fprintf(os.Stdout, "videosummary %s\n", version)
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/portfoliogen/internal/api/grpc"
	apihttp "github.com/m-zajac/portfoliogen/internal/api/http"
	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/m-zajac/portfoliogen/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	root := &cobra.Command{
		Use:           "portfoliogen",
		Short:         "Portfolio page generator with llm text enhancement and github projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), generateCmd(), templatesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (Config, *logrus.Logger, error) {
	_ = godotenv.Load()

	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return conf, nil, fmt.Errorf("couldn't parse config: %w", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return conf, nil, fmt.Errorf("invalid log level: %w", err)
	}
	l.Level = level

	return conf, l, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run http and grpc servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, l, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := newComponents(conf, l)
			if err != nil {
				return err
			}
			defer c.Close()

			sessions, err := apihttp.NewSessions(conf.SessionCacheSize)
			if err != nil {
				return err
			}
			validator, err := apihttp.NewPayloadValidator()
			if err != nil {
				return err
			}

			mux := apihttp.NewMux(
				c.service,
				sessions,
				validator,
				c.exporters,
				conf.ServiceResponseTimeout,
				l.WithField("component", "mux"),
			)
			server := apihttp.NewServer(
				conf.HTTPServerAddress,
				conf.HTTPProfileServerAddress,
				mux,
				conf.ServiceResponseTimeout,
				l.WithField("component", "httpServer"),
			)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.Run(gCtx)
			})
			if conf.GRPCServerAddress != "" {
				grpcServer := grpc.NewServer(
					grpc.NewService(c.enhancer, c.ranker, conf.MaxRepositories),
					conf.GRPCServerAddress,
					l.WithField("component", "grpcServer"),
				)
				g.Go(func() error {
					return grpcServer.Run(gCtx)
				})
			}

			return g.Wait()
		},
	}
}

func generateCmd() *cobra.Command {
	var dataPath, templateName, outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate portfolio from json data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, l, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := newComponents(conf, l)
			if err != nil {
				return err
			}
			defer c.Close()

			data, err := os.ReadFile(dataPath)
			if err != nil {
				return fmt.Errorf("reading data file: %w", err)
			}
			validator, err := apihttp.NewPayloadValidator()
			if err != nil {
				return err
			}
			if err := validator.Validate(data); err != nil {
				return err
			}
			var req app.PortfolioRequest
			if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("decoding data file: %w", err)
			}
			if templateName != "" {
				req.TemplateName = templateName
			}

			ctx := cmd.Context()
			generated, err := c.service.Generate(ctx, req)
			if err != nil {
				return err
			}

			out := generated.HTML
			switch strings.ToLower(filepath.Ext(outPath)) {
			case ".md":
				out, err = c.exporters.Markdown(ctx, out)
			case ".pdf":
				if c.exporters.PDF == nil {
					return fmt.Errorf("pdf export is disabled")
				}
				out, err = c.exporters.PDF(ctx, out)
			}
			if err != nil {
				return fmt.Errorf("exporting %s: %w", outPath, err)
			}
			if err := os.WriteFile(outPath, out, 0644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			fmt.Printf(
				"Generated %s with template %s and %d projects\n",
				outPath,
				generated.Portfolio.Template,
				len(generated.Portfolio.Projects),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "portfolio.json", "Portfolio data json file")
	cmd.Flags().StringVar(&templateName, "template", "", "Template name, overrides templateName from data file")
	cmd.Flags().StringVar(&outPath, "out", "portfolio.html", "Output file, .md and .pdf extensions select export format")
	return cmd
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := render.New()
			if err != nil {
				return fmt.Errorf("couldn't load templates: %w", err)
			}

			for _, t := range renderer.Templates() {
				fmt.Printf("%-10s %-15s %s\n", t.Name, t.File, t.Description)
			}
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m-zajac/portfoliogen/internal/adapter/github"
	apihttp "github.com/m-zajac/portfoliogen/internal/api/http"
	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/m-zajac/portfoliogen/internal/database"
	"github.com/m-zajac/portfoliogen/internal/enhance"
	"github.com/m-zajac/portfoliogen/internal/export"
	"github.com/m-zajac/portfoliogen/internal/render"
	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
)

// components holds app's wired dependencies.
type components struct {
	service   *app.Service
	enhancer  *enhance.Enhancer
	ranker    *app.Ranker
	renderer  *render.Renderer
	exporters apihttp.Exporters
	db        *bbolt.DB
}

func newComponents(conf Config, l *logrus.Logger) (*components, error) {
	db, err := database.OpenBolt(conf.DBPath)
	if err != nil {
		return nil, err
	}
	c := &components{db: db}

	githubKV, err := database.NewBoltKVStore(db, conf.GithubDBBucketName)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("couldn't create github kv store: %w", err)
	}
	pagesKV, err := database.NewBoltKVStore(db, conf.PagesDBBucketName)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("couldn't create pages kv store: %w", err)
	}

	githubHTTPClient := github.NewHTTPClient(
		nil,
		conf.GithubAPIToken,
		conf.GithubAPIRateLimit,
		conf.GithubHTTPTimeout,
	)
	githubClient, err := github.NewClient(githubHTTPClient, conf.GithubAPIAddress)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("couldn't create github client: %w", err)
	}
	githubStaleDataClient := github.NewClientWithStaleData(
		githubClient,
		githubKV,
		conf.GithubDBDataTTL,
		l.WithField("component", "githubStaleDataClient"),
	)
	githubCachedClient, err := github.NewCachedClient(
		githubStaleDataClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("couldn't create github client cache: %w", err)
	}

	gen, err := newGenerator(conf, l)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.enhancer = enhance.New(gen, conf.EnhanceMaxAttempts, l.WithField("component", "enhancer"))

	c.ranker = app.NewRanker(
		githubCachedClient,
		c.enhancer,
		conf.GithubListTimeout,
		conf.GithubLookupTimeout,
		l.WithField("component", "ranker"),
	)

	c.renderer, err = render.New()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("couldn't load templates: %w", err)
	}

	c.service = app.NewService(
		c.ranker,
		c.enhancer,
		c.renderer,
		database.NewPageStore(pagesKV),
		conf.MaxRepositories,
		l.WithField("component", "service"),
	)

	markdown := export.NewMarkdown()
	c.exporters.Markdown = func(_ context.Context, html []byte) ([]byte, error) {
		return markdown.Convert(html)
	}
	if conf.PDFEnabled {
		c.exporters.PDF = export.NewPDF(conf.ChromePath, conf.PDFTimeout).Convert
	}

	return c, nil
}

// Close releases components resources.
func (c *components) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
}

func newGenerator(conf Config, l logrus.FieldLogger) (enhance.Generator, error) {
	httpClient := &http.Client{
		Timeout: conf.LLMTimeout,
	}

	switch conf.LLMProvider {
	case "openai":
		if conf.LLMAPIKey == "" {
			l.Warn("llm api key not set, texts won't be enhanced")
			return nil, nil
		}
		return enhance.NewOpenAIGenerator(conf.LLMBaseURL, conf.LLMAPIKey, conf.LLMModel, httpClient), nil
	case "ollama":
		gen, err := enhance.NewOllamaGenerator(conf.OllamaURL, conf.OllamaModel, httpClient)
		if err != nil {
			return nil, fmt.Errorf("couldn't create ollama generator: %w", err)
		}
		return gen, nil
	case "", "none":
		l.Info("llm provider disabled, texts won't be enhanced")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", conf.LLMProvider)
	}
}

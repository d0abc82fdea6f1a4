package main

import "time"

// Config is the container for app configuration
type Config struct {
	// LogLevel - logrus level name
	LogLevel string `default:"info"`

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8000"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for handling single http request
	ServiceResponseTimeout time.Duration `default:"120s"`

	// SessionCacheSize - maximum number of remembered template selections
	SessionCacheSize int `default:"10000"`

	// MaxRepositories - maximum number of projects taken from github profile
	MaxRepositories int `default:"6"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `envconfig:"GITHUB_TOKEN" default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"5"`

	// GithubHTTPTimeout - timeout for single github http call
	GithubHTTPTimeout time.Duration `default:"30s"`

	// GithubListTimeout - timeout for listing user repositories
	GithubListTimeout time.Duration `default:"10s"`

	// GithubLookupTimeout - timeout for each commits or branches lookup
	GithubLookupTimeout time.Duration `default:"5s"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"10000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"10m"`

	// GithubDBDataTTL - maximum age of stored github data served when github api fails.
	// Zero disables storing github data, failed calls then give empty results
	GithubDBDataTTL time.Duration `default:"0s"`

	// DBPath - filepath for bolt db data
	DBPath string `default:"./portfoliogen.data"`

	// GithubDBBucketName - bolt db bucket name for github data
	GithubDBBucketName string `default:"github"`

	// PagesDBBucketName - bolt db bucket name for generated pages
	PagesDBBucketName string `default:"pages"`

	// LLMProvider - text generation backend: openai, ollama or none
	LLMProvider string `default:"openai"`

	// LLMBaseURL - openai compatible api address
	LLMBaseURL string `default:"https://generativelanguage.googleapis.com/v1beta/openai"`

	// LLMAPIKey - key for openai compatible api. If empty, texts are not enhanced
	LLMAPIKey string `envconfig:"GEMINI_API_KEY" default:""`

	// LLMModel - model used with openai compatible api
	LLMModel string `default:"gemini-1.5-flash"`

	// LLMTimeout - timeout for single generation http call
	LLMTimeout time.Duration `default:"60s"`

	// OllamaURL - ollama server address
	OllamaURL string `default:"http://localhost:11434"`

	// OllamaModel - model used with ollama
	OllamaModel string `default:"llama3"`

	// EnhanceMaxAttempts - number of generation attempts before original text is used
	EnhanceMaxAttempts int `default:"3"`

	// ChromePath - chrome executable used for pdf export. If empty, chrome is looked up in PATH
	ChromePath string `default:""`

	// PDFEnabled - enables pdf export
	PDFEnabled bool `default:"true"`

	// PDFTimeout - timeout for printing single pdf
	PDFTimeout time.Duration `default:"60s"`
}

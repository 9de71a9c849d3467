package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // schedule time zone must load on hosts without zoneinfo

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen        string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		AdminPassword string        `yaml:"admin_password" json:"admin_password" jsonschema:"description=Basic auth password for admin endpoints (disabled if empty)"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:astrolabe.db?cache=shared&mode=rwc,description=Database connection string (postgres:// selects PostgreSQL)"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Misskey MisskeyConfig `yaml:"misskey" json:"misskey" jsonschema:"description=Misskey server and bot account"`

	Stream StreamConfig `yaml:"stream" json:"stream" jsonschema:"description=Streaming connection settings"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for chat replies"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduled jobs and maintenance"`
}

// MisskeyConfig holds the server address, credentials and REST client behavior
type MisskeyConfig struct {
	URL           string        `yaml:"url" json:"url" jsonschema:"required,description=Misskey server base URL (e.g. https://misskey.example.com)"`
	Token         string        `yaml:"token" json:"token" jsonschema:"description=API token of the bot account (can use environment variable)"`
	BotUserID     string        `yaml:"bot_user_id" json:"bot_user_id" jsonschema:"required,description=Account id of the bot itself"`
	AdminUserID   string        `yaml:"admin_user_id" json:"admin_user_id" jsonschema:"description=Account id receiving operator direct messages"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP request timeout"`
	RetryAttempts int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=10,minimum=1,description=Attempts for mutating calls failing with 5xx"`
	RetryDelay    time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=30s,description=Delay between attempts"`
	PageSize      int           `yaml:"page_size" json:"page_size" jsonschema:"default=100,minimum=1,maximum=100,description=Items per page for follower listing"`
	PageDelay     time.Duration `yaml:"page_delay" json:"page_delay" jsonschema:"default=1s,description=Delay between listing pages"`
}

// StreamConfig holds streaming channel and reconnect settings
type StreamConfig struct {
	Channels         []string      `yaml:"channels" json:"channels" jsonschema:"description=Subscribed channels: hybridTimeline main globalTimeline"`
	ShortDelay       time.Duration `yaml:"short_delay" json:"short_delay" jsonschema:"default=5s,description=Reconnect delay for the first failures"`
	LongDelay        time.Duration `yaml:"long_delay" json:"long_delay" jsonschema:"default=1h,description=Reconnect cooldown after too many consecutive failures"`
	FailureThreshold int           `yaml:"failure_threshold" json:"failure_threshold" jsonschema:"default=12,minimum=1,description=Consecutive failures before switching to the long cooldown"`
	PingInterval     time.Duration `yaml:"ping_interval" json:"ping_interval" jsonschema:"default=30s,description=Interval of websocket pings"`
	ReadTimeout      time.Duration `yaml:"read_timeout" json:"read_timeout" jsonschema:"default=90s,description=Reconnect if nothing arrives from the server for this long"`
}

// LLMConfig holds LLM configuration for chat replies
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable chat replies"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	JokeRate     float64       `yaml:"joke_rate" json:"joke_rate" jsonschema:"default=0.01,minimum=0,maximum=1,description=Probability of a canned joke instead of an LLM answer"`
}

// ScheduleConfig holds cron jobs and maintenance settings
type ScheduleConfig struct {
	Timezone     string        `yaml:"timezone" json:"timezone" jsonschema:"default=Asia/Tokyo,description=Time zone for cron expressions"`
	MaxJitter    time.Duration `yaml:"max_jitter" json:"max_jitter" jsonschema:"default=30m,description=Maximum random delay before a scheduled post"`
	Maintenance  string        `yaml:"maintenance" json:"maintenance" jsonschema:"default=0 3 * * *,description=Cron expression of the daily maintenance"`
	LogRetention time.Duration `yaml:"log_retention" json:"log_retention" jsonschema:"default=168h,description=Audit log retention"`
	Jobs         []JobConfig   `yaml:"jobs" json:"jobs" jsonschema:"description=Scheduled posting jobs"`
}

// JobConfig describes a single scheduled posting job
type JobConfig struct {
	Name       string `yaml:"name" json:"name" jsonschema:"required,description=Job name used in logs"`
	Kind       string `yaml:"kind" json:"kind" jsonschema:"required,enum=text,enum=feed,enum=dinner,enum=breakfast,enum=emoji,enum=remote_text,enum=remote_image,description=Job kind"`
	Cron       string `yaml:"cron" json:"cron" jsonschema:"required,description=Cron expression (minute hour dom month dow)"`
	Pool       string `yaml:"pool" json:"pool" jsonschema:"description=note_text key of the candidate pool for text jobs"`
	URL        string `yaml:"url" json:"url" jsonschema:"description=Feed or remote service URL"`
	Template   string `yaml:"template" json:"template" jsonschema:"description=Text template where %s is replaced by the job output"`
	Visibility string `yaml:"visibility" json:"visibility" jsonschema:"default=public,enum=public,enum=home,enum=followers,description=Note visibility"`
	NoJitter   bool   `yaml:"no_jitter" json:"no_jitter" jsonschema:"default=false,description=Post without the random pre-post delay"`
}

// job kinds
const (
	JobText        = "text"
	JobFeed        = "feed"
	JobDinner      = "dinner"
	JobBreakfast   = "breakfast"
	JobEmoji       = "emoji"
	JobRemoteText  = "remote_text"
	JobRemoteImage = "remote_image"
)

// stream channels
const (
	ChannelHybridTimeline = "hybridTimeline"
	ChannelMain           = "main"
	ChannelGlobalTimeline = "globalTimeline"
)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:astrolabe.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for misskey
	cfg.Misskey.URL = strings.TrimSuffix(cfg.Misskey.URL, "/")
	if cfg.Misskey.Timeout == 0 {
		cfg.Misskey.Timeout = 30 * time.Second
	}
	if cfg.Misskey.RetryAttempts == 0 {
		cfg.Misskey.RetryAttempts = 10
	}
	if cfg.Misskey.RetryDelay == 0 {
		cfg.Misskey.RetryDelay = 30 * time.Second
	}
	if cfg.Misskey.PageSize == 0 {
		cfg.Misskey.PageSize = 100
	}
	if cfg.Misskey.PageDelay == 0 {
		cfg.Misskey.PageDelay = time.Second
	}

	// set defaults for stream
	if len(cfg.Stream.Channels) == 0 {
		cfg.Stream.Channels = []string{ChannelHybridTimeline, ChannelMain, ChannelGlobalTimeline}
	}
	if cfg.Stream.ShortDelay == 0 {
		cfg.Stream.ShortDelay = 5 * time.Second
	}
	if cfg.Stream.LongDelay == 0 {
		cfg.Stream.LongDelay = time.Hour
	}
	if cfg.Stream.FailureThreshold == 0 {
		cfg.Stream.FailureThreshold = 12
	}
	if cfg.Stream.PingInterval == 0 {
		cfg.Stream.PingInterval = 30 * time.Second
	}
	if cfg.Stream.ReadTimeout == 0 {
		cfg.Stream.ReadTimeout = 90 * time.Second
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	if cfg.LLM.JokeRate == 0 {
		cfg.LLM.JokeRate = 0.01
	}

	// set defaults for schedule
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "Asia/Tokyo"
	}
	if cfg.Schedule.MaxJitter == 0 {
		cfg.Schedule.MaxJitter = 30 * time.Minute
	}
	if cfg.Schedule.Maintenance == "" {
		cfg.Schedule.Maintenance = "0 3 * * *"
	}
	if cfg.Schedule.LogRetention == 0 {
		cfg.Schedule.LogRetention = 7 * 24 * time.Hour
	}
	for i := range cfg.Schedule.Jobs {
		if cfg.Schedule.Jobs[i].Visibility == "" {
			cfg.Schedule.Jobs[i].Visibility = "public"
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate misskey config
	if cfg.Misskey.URL == "" {
		return fmt.Errorf("misskey.url is required")
	}
	if !strings.HasPrefix(cfg.Misskey.URL, "http://") && !strings.HasPrefix(cfg.Misskey.URL, "https://") {
		return fmt.Errorf("misskey.url must start with http:// or https://")
	}
	if cfg.Misskey.BotUserID == "" {
		return fmt.Errorf("misskey.bot_user_id is required")
	}
	if cfg.Misskey.RetryAttempts < 1 {
		return fmt.Errorf("misskey.retry_attempts must be at least 1")
	}
	if cfg.Misskey.PageSize < 1 || cfg.Misskey.PageSize > 100 {
		return fmt.Errorf("misskey.page_size must be between 1 and 100")
	}

	// validate stream config
	for _, ch := range cfg.Stream.Channels {
		switch ch {
		case ChannelHybridTimeline, ChannelMain, ChannelGlobalTimeline:
		default:
			return fmt.Errorf("unknown stream channel %q", ch)
		}
	}
	if cfg.Stream.FailureThreshold < 1 {
		return fmt.Errorf("stream.failure_threshold must be at least 1")
	}
	if cfg.Stream.ReadTimeout <= cfg.Stream.PingInterval {
		return fmt.Errorf("stream.read_timeout must be longer than stream.ping_interval")
	}

	// validate LLM config
	if cfg.LLM.Enabled {
		if cfg.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required when llm is enabled")
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is enabled")
		}
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.JokeRate < 0 || cfg.LLM.JokeRate > 1 {
		return fmt.Errorf("llm.joke_rate must be between 0 and 1")
	}

	// validate schedule config
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone: %w", err)
	}
	if cfg.Schedule.MaxJitter < 0 {
		return fmt.Errorf("schedule.max_jitter must be non-negative")
	}
	if _, err := cron.ParseStandard(cfg.Schedule.Maintenance); err != nil {
		return fmt.Errorf("schedule.maintenance: %w", err)
	}
	names := map[string]bool{}
	for _, job := range cfg.Schedule.Jobs {
		if err := validateJob(job); err != nil {
			return fmt.Errorf("schedule job %q: %w", job.Name, err)
		}
		if names[job.Name] {
			return fmt.Errorf("duplicate schedule job name %q", job.Name)
		}
		names[job.Name] = true
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

func validateJob(job JobConfig) error {
	if job.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := cron.ParseStandard(job.Cron); err != nil {
		return fmt.Errorf("cron: %w", err)
	}
	switch job.Kind {
	case JobText:
		if job.Pool == "" {
			return fmt.Errorf("pool is required for text jobs")
		}
	case JobFeed, JobRemoteText, JobRemoteImage:
		if job.URL == "" {
			return fmt.Errorf("url is required for %s jobs", job.Kind)
		}
	case JobDinner, JobBreakfast, JobEmoji:
	default:
		return fmt.Errorf("unknown kind %q", job.Kind)
	}
	switch job.Visibility {
	case "public", "home", "followers":
	default:
		return fmt.Errorf("unsupported visibility %q", job.Visibility)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// AdminPassword returns the basic auth password of admin endpoints, empty disables auth
func (c *Config) AdminPassword() string {
	return c.Server.AdminPassword
}

// Location returns the schedule time zone, UTC if it can't be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

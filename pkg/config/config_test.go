package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_MISSKEY_TOKEN", "secret-token")
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

misskey:
  url: https://misskey.example.com/
  token: ${TEST_MISSKEY_TOKEN}
  bot_user_id: 9bot
  admin_user_id: 9admin
  retry_attempts: 3

stream:
  channels: [main, hybridTimeline]

schedule:
  timezone: UTC
  max_jitter: 5m
  jobs:
    - name: morning
      kind: text
      cron: "0 7 * * *"
      pool: morning
    - name: news
      kind: feed
      cron: "*/30 * * * *"
      url: https://example.com/rss
      visibility: home
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://misskey.example.com", cfg.Misskey.URL, "trailing slash trimmed")
		assert.Equal(t, "secret-token", cfg.Misskey.Token)
		assert.Equal(t, "9bot", cfg.Misskey.BotUserID)
		assert.Equal(t, 3, cfg.Misskey.RetryAttempts)
		assert.Equal(t, []string{"main", "hybridTimeline"}, cfg.Stream.Channels)
		assert.Equal(t, 5*time.Minute, cfg.Schedule.MaxJitter)
		require.Len(t, cfg.Schedule.Jobs, 2)
		assert.Equal(t, "public", cfg.Schedule.Jobs[0].Visibility)
		assert.Equal(t, "home", cfg.Schedule.Jobs[1].Visibility)
		assert.Equal(t, time.UTC, cfg.Location())
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
misskey:
  url: https://misskey.example.com
  bot_user_id: 9bot
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:astrolabe.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)

		assert.Equal(t, 10, cfg.Misskey.RetryAttempts)
		assert.Equal(t, 30*time.Second, cfg.Misskey.RetryDelay)
		assert.Equal(t, 100, cfg.Misskey.PageSize)
		assert.Equal(t, time.Second, cfg.Misskey.PageDelay)

		assert.Equal(t, []string{ChannelHybridTimeline, ChannelMain, ChannelGlobalTimeline}, cfg.Stream.Channels)
		assert.Equal(t, 5*time.Second, cfg.Stream.ShortDelay)
		assert.Equal(t, time.Hour, cfg.Stream.LongDelay)
		assert.Equal(t, 12, cfg.Stream.FailureThreshold)
		assert.Equal(t, 30*time.Second, cfg.Stream.PingInterval)
		assert.Equal(t, 90*time.Second, cfg.Stream.ReadTimeout)

		assert.InDelta(t, 0.01, cfg.LLM.JokeRate, 0.0001)
		assert.Equal(t, "Asia/Tokyo", cfg.Schedule.Timezone)
		assert.Equal(t, 30*time.Minute, cfg.Schedule.MaxJitter)
		assert.Equal(t, "0 3 * * *", cfg.Schedule.Maintenance)
		assert.Equal(t, 7*24*time.Hour, cfg.Schedule.LogRetention)
		assert.Equal(t, "Asia/Tokyo", cfg.Location().String())
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "misskey: [unclosed"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Misskey.URL = "https://misskey.example.com"
		cfg.Misskey.BotUserID = "9bot"
		setDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "missing url", modify: func(c *Config) { c.Misskey.URL = "" }, errMsg: "misskey.url is required"},
		{name: "bad url scheme", modify: func(c *Config) { c.Misskey.URL = "ftp://x" }, errMsg: "must start with"},
		{name: "missing bot id", modify: func(c *Config) { c.Misskey.BotUserID = "" }, errMsg: "bot_user_id"},
		{name: "page size too big", modify: func(c *Config) { c.Misskey.PageSize = 500 }, errMsg: "page_size"},
		{name: "unknown channel", modify: func(c *Config) { c.Stream.Channels = []string{"localTimeline"} },
			errMsg: "unknown stream channel"},
		{name: "read timeout not above ping interval", modify: func(c *Config) { c.Stream.ReadTimeout = 30 * time.Second },
			errMsg: "stream.read_timeout"},
		{name: "llm enabled without endpoint", modify: func(c *Config) { c.LLM.Enabled = true; c.LLM.Model = "m" },
			errMsg: "llm.endpoint"},
		{name: "llm enabled without model", modify: func(c *Config) { c.LLM.Enabled = true; c.LLM.Endpoint = "http://x" },
			errMsg: "llm.model"},
		{name: "bad joke rate", modify: func(c *Config) { c.LLM.JokeRate = 2 }, errMsg: "joke_rate"},
		{name: "bad timezone", modify: func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" }, errMsg: "schedule.timezone"},
		{name: "bad maintenance cron", modify: func(c *Config) { c.Schedule.Maintenance = "every day" },
			errMsg: "schedule.maintenance"},
		{name: "job with bad cron", modify: func(c *Config) {
			c.Schedule.Jobs = []JobConfig{{Name: "a", Kind: JobDinner, Cron: "61 * * * *", Visibility: "public"}}
		}, errMsg: "cron"},
		{name: "text job without pool", modify: func(c *Config) {
			c.Schedule.Jobs = []JobConfig{{Name: "a", Kind: JobText, Cron: "0 7 * * *", Visibility: "public"}}
		}, errMsg: "pool is required"},
		{name: "feed job without url", modify: func(c *Config) {
			c.Schedule.Jobs = []JobConfig{{Name: "a", Kind: JobFeed, Cron: "0 7 * * *", Visibility: "public"}}
		}, errMsg: "url is required"},
		{name: "unknown job kind", modify: func(c *Config) {
			c.Schedule.Jobs = []JobConfig{{Name: "a", Kind: "wordcloud", Cron: "0 7 * * *", Visibility: "public"}}
		}, errMsg: "unknown kind"},
		{name: "specified visibility not allowed for jobs", modify: func(c *Config) {
			c.Schedule.Jobs = []JobConfig{{Name: "a", Kind: JobEmoji, Cron: "0 7 * * *", Visibility: "specified"}}
		}, errMsg: "unsupported visibility"},
		{name: "duplicate job names", modify: func(c *Config) {
			c.Schedule.Jobs = []JobConfig{
				{Name: "a", Kind: JobEmoji, Cron: "0 7 * * *", Visibility: "public"},
				{Name: "a", Kind: JobDinner, Cron: "0 19 * * *", Visibility: "public"},
			}
		}, errMsg: "duplicate"},
		{name: "server timeout too short", modify: func(c *Config) { c.Server.Timeout = time.Millisecond },
			errMsg: "server timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":9999"
	cfg.Server.Timeout = 15 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9999", listen)
	assert.Equal(t, 15*time.Second, timeout)
}

func TestConfig_LocationFallback(t *testing.T) {
	cfg := &Config{}
	cfg.Schedule.Timezone = "Nowhere/Land"
	assert.Equal(t, time.UTC, cfg.Location())
}

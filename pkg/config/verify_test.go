package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Misskey.URL = "https://misskey.example.com"
		cfg.Misskey.BotUserID = "9bot"
		setDefaults(cfg)
		return cfg
	}

	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(valid()))
	})

	t.Run("missing listen", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("job without cron", func(t *testing.T) {
		cfg := valid()
		cfg.Schedule.Jobs = []JobConfig{{Name: "x", Kind: JobDinner}}
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schedule.jobs[0]")
	})
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := &Config{}
	err := validateRequiredFields(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen")

	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = time.Second
	err = validateRequiredFields(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "misskey.url")

	cfg.Misskey.URL = "https://misskey.example.com"
	cfg.Misskey.BotUserID = "9bot"
	require.NoError(t, validateRequiredFields(cfg))
}

func TestEmbeddedSchemaCoversConfig(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))

	props := schemaProperties(schema)
	require.NotNil(t, props)
	for _, section := range []string{"server", "database", "misskey", "stream", "llm", "schedule"} {
		assert.Contains(t, props, section)
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	assert.Contains(t, schemaStr, "misskey")
	assert.Contains(t, schemaStr, "bot_user_id")
	assert.Contains(t, schemaStr, "JobConfig")
}

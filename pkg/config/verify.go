package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// every top-level section of the config must be known to the schema
	if props := schemaProperties(schema); props != nil {
		for key := range configMap {
			if _, found := props[key]; !found {
				return fmt.Errorf("section %q is missing in schema", key)
			}
		}
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// schemaProperties returns top-level properties of the Config definition
func schemaProperties(schema map[string]any) map[string]any {
	if props, ok := schema["properties"].(map[string]any); ok {
		return props
	}
	defs, ok := schema["$defs"].(map[string]any)
	if !ok {
		return nil
	}
	cfgDef, ok := defs["Config"].(map[string]any)
	if !ok {
		return nil
	}
	props, _ := cfgDef["properties"].(map[string]any)
	return props
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check misskey config
	if cfg.Misskey.URL == "" {
		return fmt.Errorf("misskey.url is required")
	}
	if cfg.Misskey.BotUserID == "" {
		return fmt.Errorf("misskey.bot_user_id is required")
	}

	// check jobs
	for i, job := range cfg.Schedule.Jobs {
		if job.Name == "" || job.Kind == "" || job.Cron == "" {
			return fmt.Errorf("schedule.jobs[%d]: name, kind and cron are required", i)
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}

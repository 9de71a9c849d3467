// schema writes the JSON schema of the astrolabe config, embedded by pkg/config for verification
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/astrolabe/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("failed to generate schema: %v", err)
	}
	schema.Title = "astrolabe configuration"
	schema.Description = "Misskey bot settings: server, database, misskey account, stream, llm and schedule"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}
	fmt.Printf("config schema written to %s\n", outputPath)
}

// Command server runs the voice journal HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// see internal/config for the full list of settings.
package main

import (
	"log"

	"github.com/voicejournal/backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

package main

import (
	_ "github.com/joho/godotenv/autoload"      // Load CANVASCAL_* settings from .env
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container
)

// version will be set by the release build.
var version = "dev"

func main() {
	setVersion(version)
	execute()
}

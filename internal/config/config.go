// Package config reads service settings from the environment, loading a
// .env file first when one is present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Load pulls a .env file into the environment. A missing file is not an
// error; deployed environments set variables directly.
func Load() error {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// Addr is the listen address for the solve service.
func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

// Development toggles debug logging and colored output.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags and parsed by Load. A .env
// file in the working directory, if any, is read once through godotenv
// before the first parse; LoadEnv reads additional files. Parsed values are
// cached per type and prefix, so repeated Load calls are cheap and
// consistent. ResetCache clears the cache in tests.
//
// Errors wrap the sentinels in errors.go and are matched with errors.Is.
package config

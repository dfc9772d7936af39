// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - An optional `.env` file in the working directory is read on the first Load.
//   - LoadEnv reads additional `.env` files; later files take precedence.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so every later Load is a map lookup.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ForceReload and ResetCache exist for tests that change the environment.
//
// # Usage
//
//	var s uniquenames.Settings
//	if err := config.Load(&s); err != nil {
//		log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors are joined with one of the sentinels below and can be matched with `errors.Is`:
//
//   - `ErrParsingConfig`  – env vars could not be parsed into the struct.
//   - `ErrLoadingEnvFile` – a file passed to LoadEnv could not be read.
//   - `ErrNilPointer`     – nil pointer passed to Load or ForceReload.
package config

// Package config handles configuration management for terraformer.
// It layers embedded defaults, a per-user config file, the repository
// config file and TERRAFORMER_* environment variables with koanf, and
// resolves the configured groups into concrete home and storage
// directories.
package config

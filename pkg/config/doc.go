// Package config handles configuration management for t6modm.
// It merges built-in defaults, an optional project .t6modm.toml and the
// environment (including a project-local .t6modm.env file) into Config.
package config

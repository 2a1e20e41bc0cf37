// Package config handles dotman.toml, the record of managed files.
// The record is read and written with go-toml. Its [settings] table is
// additionally layered with koanf over embedded defaults and DOTMAN_*
// environment variables.
package config

// Package types defines the result structures returned by dotman's
// commands and rendered by the CLI in text, JSON or YAML.
package types

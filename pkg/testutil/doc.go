// Package testutil provides helpers for testing dotman components.
//
// Key components:
//   - TestEnvironment: an isolated home, dotfile home and XDG layout
//   - File helpers built on testify's require and assert
//
// Usage guidelines:
//   - Tests touching dotman.toml or destinations use NewTestEnvironment
//   - Pure engine tests need nothing from here
//   - Test data is defined inline, not in external files
package testutil

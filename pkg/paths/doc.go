// Package paths resolves the directories dotman works with.
//
// # Environment Variables
//
//   - DOTMAN_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/dotman)
//   - DOTMAN_DATA_DIR: Override the data directory (default: $XDG_DATA_HOME/dotman)
//   - XDG_STATE_HOME: Base of the state directory holding dotman.log
//
// # Layout
//
//   - Config: dotman.toml, the managed file record
//   - Data: the default dotfile home, created by apply
//   - State: the log file
package paths

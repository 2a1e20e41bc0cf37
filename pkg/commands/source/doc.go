// Package source implements the `source` command group: adding, listing,
// removing, linking and unlinking managed files in dotman.toml.
//
// Paths given by the user are normalized (home expanded, made absolute)
// before they are compared with the record, so `~/dots/vimrc` and
// `/home/me/dots/vimrc` name the same managed file.
package source

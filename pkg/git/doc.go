// Package git versions the dotfile home.
//
// Commands that change the repository (init, clone, commit, remote, push
// and pull) run the user's git binary through a Runner, so credentials,
// hooks and signing behave exactly as on the command line. Read only
// queries go through go-git instead.
package git

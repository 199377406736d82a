// Package cli provides the interactive terminal front-end for user accounts.
//
// It renders the account flows from package accounts as REPL commands:
//
//   - create         walk through user name, password and verification,
//     printing live feedback after each password entry
//   - list | l       list users as "[id] userName  first last"
//   - show <ref>     show one user
//   - edit <ref>     edit the profile fields of one user
//   - delete <ref>   delete a user; the last deletion can be undone
//   - undo           restore the most recently deleted user
//
// A <ref> is either a plain id or a user reference such as users://user?id=3.
// The REPL is started via App.Run, which blocks until the user exits or the
// process receives SIGINT, SIGTERM or SIGQUIT.
package cli

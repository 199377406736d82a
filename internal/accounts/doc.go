// Package accounts implements the account flows driven by the terminal
// front-end: creating a user with live password feedback, editing a user's
// profile, and listing or deleting users with caller-held undo.
//
// Validation is pure and synchronous. Only the repository and the password
// hasher are consulted for I/O or CPU-bound work.
package accounts

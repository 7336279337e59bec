// Package cli implements the interactive terminal front end of gophquiz.
//
// App wires configuration, the record store, the audit trail and the domain
// services, then runs a numbered-menu REPL on stdin/stdout. The menu shown
// depends on who is logged in:
//
//	Not logged in:  1 register, 2 login, 3 about, 4 exit
//	Admin:          1 list users, 2 statistics, 3 quiz, 4 logout
//	Student:        1 statistics, 2 quiz, 3 logout
//
// Prompting and output live here; validation, scoring and persistence live in
// package services. Interactive input helpers are reached through package
// variables so tests can replace them.
package cli

// Package services contains the application logic of gophquiz: registration,
// authentication, quiz submission, statistics and the admin user directory.
//
// Services take already-collected input and never prompt; the interactive
// re-prompting lives in package cli. Every operation reloads the record
// collection from the users.Repository, so no state is kept between calls.
package services

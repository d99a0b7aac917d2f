// Package handlers implements the business logic for mwpack CLI commands.
//
// Each handler takes plain Go values, does its work through the internal
// packages and prints human or JSON output to stdout. Handlers know nothing
// about cobra, so they can be tested without building commands.
//
// Errors returned by handlers carry an apperr kind that main maps to the
// process exit code.
package handlers

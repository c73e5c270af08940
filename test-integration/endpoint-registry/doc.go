// Package integration runs the endpoint registry server end to end: it
// starts the application from a config file and drives it over HTTP.
package integration

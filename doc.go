// Package auth implements the credential flows behind the sample auth API:
// user signup with uniqueness enforcement and bcrypt hashed passwords, and
// signin that verifies credentials and issues a signed, expiring JWT.
//
// The package is transport agnostic. Flows take their collaborators, a user
// store, a token service, and a logger, as explicit handles and return a
// uniform Response envelope; http.go adapts them to fiber routes and
// cmd/server wires the persistence layer.
package auth

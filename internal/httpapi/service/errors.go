package service

import "errors"

// Errors shared across services. Authorization failures are never
// panics or typed denials with detail; the evaluator answers false and
// services translate that into this one sentinel for handlers to map
// to a status code.
var (
	ErrAccessUnauthorized = errors.New("access unauthorized")
	ErrMovieNotFound      = errors.New("movie not found")
)

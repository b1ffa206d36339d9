/*
errors.go - Centralized error types for the statement engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Every failure aborts the whole statement run; there is no partial
  statement mode and nothing here is retryable.

ERROR CATEGORIES:
  1. Catalog errors - Unknown or malformed plays
  2. Pricing errors - Genres without rules
  3. Invoice errors - Caller contract violations (audience <= 0)

USAGE:
  _, err := billing.ComputeStatement(invoice, catalog)

  var genreErr *billing.UnknownGenreError
  if errors.As(err, &genreErr) {
      log.Printf("no rules for %q", genreErr.Genre)
  }
  if errors.Is(err, billing.ErrUnknownPlay) { ... }
*/
package billing

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownGenre is returned when a genre has no registered rules.
	ErrUnknownGenre = errors.New("unknown genre")

	// ErrUnknownPlay is returned when a performance references a play
	// that is not in the catalog.
	ErrUnknownPlay = errors.New("unknown play")

	// ErrInvalidAudience is returned for performances with audience <= 0.
	ErrInvalidAudience = errors.New("invalid audience")

	// ErrInvalidPlay is returned when a catalog entry is malformed.
	ErrInvalidPlay = errors.New("invalid play")

	// ErrCatalogRequired is returned when no catalog is supplied.
	ErrCatalogRequired = errors.New("play catalog required")

	// ErrGenreExists is returned when registering a genre that is already bound.
	ErrGenreExists = errors.New("genre already registered")

	// ErrNegativeAmount is returned when a genre rule prices a performance
	// below zero.
	ErrNegativeAmount = errors.New("negative amount")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownGenreError names the genre that has no pricing or credit rule.
type UnknownGenreError struct {
	Genre Genre
}

func (e *UnknownGenreError) Error() string {
	return fmt.Sprintf("unknown genre: %q", string(e.Genre))
}

func (e *UnknownGenreError) Unwrap() error {
	return ErrUnknownGenre
}

// UnknownPlayError names the play ID missing from the catalog.
type UnknownPlayError struct {
	PlayID PlayID
}

func (e *UnknownPlayError) Error() string {
	return fmt.Sprintf("unknown play: %q", string(e.PlayID))
}

func (e *UnknownPlayError) Unwrap() error {
	return ErrUnknownPlay
}

// InvalidAudienceError reports a performance with a non-positive audience.
type InvalidAudienceError struct {
	PlayID   PlayID
	Audience int
}

func (e *InvalidAudienceError) Error() string {
	return fmt.Sprintf("invalid audience %d for play %q: must be positive", e.Audience, string(e.PlayID))
}

func (e *InvalidAudienceError) Unwrap() error {
	return ErrInvalidAudience
}

// GenreExistsError names a genre that cannot be registered twice.
type GenreExistsError struct {
	Genre Genre
}

func (e *GenreExistsError) Error() string {
	return fmt.Sprintf("genre already registered: %q", string(e.Genre))
}

func (e *GenreExistsError) Unwrap() error {
	return ErrGenreExists
}

// InvalidPlayError reports a catalog entry that cannot be used.
type InvalidPlayError struct {
	PlayID PlayID
	Reason string
}

func (e *InvalidPlayError) Error() string {
	return fmt.Sprintf("invalid play %q: %s", string(e.PlayID), e.Reason)
}

func (e *InvalidPlayError) Unwrap() error {
	return ErrInvalidPlay
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is caused by the supplied
// catalog or invoice rather than by the engine.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownGenre) ||
		errors.Is(err, ErrUnknownPlay) ||
		errors.Is(err, ErrInvalidAudience) ||
		errors.Is(err, ErrInvalidPlay) ||
		errors.Is(err, ErrCatalogRequired)
}

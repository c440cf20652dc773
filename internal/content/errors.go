package content

import (
	"context"
	"errors"
	"net"
	"net/url"

	"google.golang.org/genai"
)

// Category is the closed set of user-facing failure classes.
type Category string

const (
	CategoryQuota   Category = "quota"
	CategoryBlocked Category = "blocked"
	CategoryNetwork Category = "network"
	CategoryGeneric Category = "generic"
)

// userMessages holds the only failure texts ever shown to a student.
// Provider detail is logged, never surfaced.
var userMessages = map[Category]string{
	CategoryQuota:   "Se ha excedido el límite de uso de la API. Intenta de nuevo más tarde.",
	CategoryBlocked: "El contenido fue bloqueado por las políticas de seguridad o el formato fue incorrecto. Intenta con temas diferentes.",
	CategoryNetwork: "Error de conexión. Verifica tu conexión a internet e intenta de nuevo.",
	CategoryGeneric: "No se pudo generar el contenido. Intenta de nuevo más tarde.",
}

// Error wraps an upstream failure with its user-facing category.
type Error struct {
	Category Category
	cause    error
}

func (e *Error) Error() string { return userMessages[e.Category] }

func (e *Error) Unwrap() error { return e.cause }

func newError(category Category, cause error) *Error {
	return &Error{Category: category, cause: cause}
}

// transient reports whether a failure is worth retrying: rate limiting,
// server-side errors, and network-level failures. Bad requests and safety
// blocks are terminal.
func transient(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		}
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// categorize translates the final upstream error into the user-facing set.
func categorize(err error) *Error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return newError(CategoryQuota, err)
		case apiErr.Code == 400 || apiErr.Code == 403:
			return newError(CategoryBlocked, err)
		}
		return newError(CategoryGeneric, err)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return newError(CategoryNetwork, err)
	}
	return newError(CategoryGeneric, err)
}

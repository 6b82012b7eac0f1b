// Package apierror defines the failure classes the authorization pipeline
// and the resource handlers are allowed to surface, and the single place
// where those classes are turned into HTTP responses. Anything that does
// not carry one of these classes is reported as Unavailable with a generic
// message so that internal error detail never reaches a caller.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	// Unauthenticated means no credential was presented or the credential
	// failed verification.
	Unauthenticated Kind = iota
	// Forbidden means the caller is authenticated but its role or
	// ownership does not satisfy the route.
	Forbidden
	// NotFound covers absent resources and malformed identifiers alike.
	NotFound
	// Conflict is a duplicate unique-key insert.
	Conflict
	// Unavailable is a dependency failure: role store, identity provider
	// or payment gateway.
	Unavailable
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause for logging. The cause is never serialized into a
// response body.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return Unavailable
}

func httpStatus(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Internal server error"
}

// Respond writes the response for err and leaves the request finished.
// Handlers call it once, at the end of their error path.
func Respond(c *gin.Context, err error) {
	c.JSON(httpStatus(KindOf(err)), gin.H{"success": false, "message": message(err)})
}

// Abort is Respond for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(httpStatus(KindOf(err)), gin.H{"success": false, "message": message(err)})
}

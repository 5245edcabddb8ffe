package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindBadRequest            Kind = "bad_request"
	KindUnauthorized          Kind = "unauthorized"
	KindForbidden             Kind = "forbidden"
	KindNotFound              Kind = "not_found"
	KindInsufficientInventory Kind = "insufficient_inventory"
	KindPaymentProvider       Kind = "payment_provider_error"
	KindStore                 Kind = "store_error"
)

// CustomError is the error value every layer returns to the request boundary.
type CustomError struct {
	Kind     Kind
	HTTPCode int
	Message  string
}

func (e CustomError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return CustomError{Kind: KindBadRequest, HTTPCode: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return CustomError{Kind: KindUnauthorized, HTTPCode: http.StatusUnauthorized, Message: msg}
}

func ForbiddenError(msg string) error {
	return CustomError{Kind: KindForbidden, HTTPCode: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return CustomError{Kind: KindNotFound, HTTPCode: http.StatusNotFound, Message: msg}
}

func InsufficientInventory(msg string) error {
	return CustomError{Kind: KindInsufficientInventory, HTTPCode: http.StatusBadRequest, Message: msg}
}

func PaymentProviderError(msg string) error {
	return CustomError{Kind: KindPaymentProvider, HTTPCode: http.StatusInternalServerError, Message: msg}
}

// InternalServerError is the store failure kind.
func InternalServerError(msg string) error {
	return CustomError{Kind: KindStore, HTTPCode: http.StatusInternalServerError, Message: msg}
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	var ce CustomError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// IsCustom reports whether err was classified by this package.
func IsCustom(err error) bool {
	var ce CustomError
	return errors.As(err, &ce)
}

// HTTPStatus maps err to a response status, 500 for anything unclassified.
func HTTPStatus(err error) int {
	var ce CustomError
	if errors.As(err, &ce) && ce.HTTPCode != 0 {
		return ce.HTTPCode
	}
	return http.StatusInternalServerError
}

// KindOf returns the kind of err, store error for anything unclassified.
func KindOf(err error) Kind {
	var ce CustomError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindStore
}

package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// OK represents a successful operation.
var OK = Register(&Errno{
	Code:     0,
	HTTP:     http.StatusOK,
	GRPCCode: codes.OK,
	Message:  "Success",
})

// Request errors (category 01).
var (
	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryRequest, 0),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Bad request",
	})

	// ErrInvalidParam indicates an invalid parameter.
	ErrInvalidParam = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryRequest, 1),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Invalid parameter",
	})

	// ErrValidationFailed indicates request validation failure.
	ErrValidationFailed = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryRequest, 2),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Validation failed",
	})
)

// Authentication errors (category 02).
var (
	// ErrUnauthorized indicates the request is not authenticated.
	ErrUnauthorized = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 0),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Unauthorized",
	})

	// ErrInvalidToken indicates the token is invalid.
	ErrInvalidToken = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 1),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Invalid token",
	})

	// ErrTokenExpired indicates the token has expired.
	ErrTokenExpired = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 2),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Token expired",
	})

	// ErrInvalidCredentials indicates a failed email/password login.
	ErrInvalidCredentials = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 3),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Invalid credentials",
	})
)

// Authorization errors (category 03).
var (
	// ErrForbidden indicates the caller lacks permission for the action.
	ErrForbidden = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuthz, 0),
		HTTP:     http.StatusForbidden,
		GRPCCode: codes.PermissionDenied,
		Message:  "Forbidden",
	})
)

// Not found errors (category 04).
var (
	// ErrNotFound indicates the target resource does not exist.
	ErrNotFound = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryNotFound, 0),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Resource not found",
	})
)

// Internal errors (categories 07-08).
var (
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryInternal, 0),
		HTTP:     http.StatusInternalServerError,
		GRPCCode: codes.Internal,
		Message:  "Internal server error",
	})

	// ErrDatabase indicates a persistence layer failure.
	ErrDatabase = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryDatabase, 0),
		HTTP:     http.StatusInternalServerError,
		GRPCCode: codes.Unavailable,
		Message:  "Database error",
	})
)

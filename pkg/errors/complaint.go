package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Complaint-center business errors (service 20).
var (
	// ErrUserNotFound indicates the target account does not exist.
	ErrUserNotFound = Register(&Errno{
		Code:     MakeCode(ServiceComplaint, CategoryNotFound, 0),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "User not found",
	})

	// ErrComplaintNotFound indicates the target complaint does not exist.
	ErrComplaintNotFound = Register(&Errno{
		Code:     MakeCode(ServiceComplaint, CategoryNotFound, 1),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Complaint not found",
	})

	// ErrNotificationNotFound indicates the target notification does not exist.
	ErrNotificationNotFound = Register(&Errno{
		Code:     MakeCode(ServiceComplaint, CategoryNotFound, 2),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Notification not found",
	})

	// ErrEmailExists indicates an account with the email already exists.
	ErrEmailExists = Register(&Errno{
		Code:     MakeCode(ServiceComplaint, CategoryConflict, 0),
		HTTP:     http.StatusConflict,
		GRPCCode: codes.AlreadyExists,
		Message:  "Email already registered",
	})

	// ErrInvalidRole indicates the requested role is not assignable.
	// Creating a second superadmin account always fails with this error.
	ErrInvalidRole = Register(&Errno{
		Code:     MakeCode(ServiceComplaint, CategoryRequest, 0),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Invalid role",
	})

	// ErrInvalidStatus indicates an unknown complaint status value.
	ErrInvalidStatus = Register(&Errno{
		Code:     MakeCode(ServiceComplaint, CategoryRequest, 1),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Invalid complaint status",
	})
)

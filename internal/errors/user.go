package errors

var (
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user does not exist",
	}
	ErrEmailTaken = &DomainError{
		Code:    "EMAIL_TAKEN",
		Message: "email already registered",
	}
	ErrInvalidEmail = &DomainError{
		Code:    "INVALID_EMAIL",
		Message: "invalid email address",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
	}
	ErrNotAdmin = &DomainError{
		Code:    "FORBIDDEN",
		Message: "only admin can access statistics",
	}
)

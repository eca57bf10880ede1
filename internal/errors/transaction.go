package errors

var (
	ErrNegativeAmount = &DomainError{
		Code:    "NEGATIVE_AMOUNT",
		Message: "negative transaction amount",
	}
	ErrIncompleteRequest = &DomainError{
		Code:    "INCOMPLETE_REQUEST",
		Message: "request is missing required attributes",
	}
)

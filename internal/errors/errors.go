// Package errors defines the domain error taxonomy shared by the
// processing pipeline, the services and the HTTP layer.
package errors

// DomainError is a typed business-rule violation. Handlers raise these
// and the HTTP layer maps them onto status codes.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

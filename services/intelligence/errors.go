package ai

import "fmt"

// RoutingAmbiguousError signals that no specialist keyword matched the query.
type RoutingAmbiguousError struct {
	Query string
}

func (e RoutingAmbiguousError) Error() string {
	return "no specialist matches query: " + e.Query
}

// ModelCallError wraps a network/timeout/quota failure from the model service.
type ModelCallError struct {
	Err error
}

func (e ModelCallError) Error() string {
	return fmt.Sprintf("model call failed: %v", e.Err)
}

func (e ModelCallError) Unwrap() error {
	return e.Err
}

// ValidationError signals that model output does not match the declared schema
// for the given specialist kind.
type ValidationError struct {
	Kind   string
	Detail string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s payload: %s", e.Kind, e.Detail)
}

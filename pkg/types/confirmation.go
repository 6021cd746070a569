package types

// Confirmer asks the operator whether an existing path may be overwritten.
//
// Confirm blocks until an answer is available. A false answer is a policy
// choice and never an error; an error means no answer could be obtained
// (closed input, interrupt) and must abort the run.
type Confirmer interface {
	Confirm(path string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(path string) (bool, error)

// Confirm calls f(path)
func (f ConfirmFunc) Confirm(path string) (bool, error) {
	return f(path)
}

package license

import "errors"

var (
	// ErrFingerprint means no hardware address could be found. There is no
	// fallback identifier.
	ErrFingerprint = errors.New("machine fingerprint unavailable")
	// ErrNetwork covers an unreachable server and non-success HTTP statuses.
	ErrNetwork = errors.New("license server unreachable")
	// ErrParse means the server answered with a body we could not decode.
	ErrParse = errors.New("malformed license server response")
)

// ValidationError is a failed validation round trip. Its message is what
// the user sees; Kind is ErrNetwork or ErrParse.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

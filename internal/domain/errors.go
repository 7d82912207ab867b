package domain

// ErrType classifies errors for the TUI to display appropriate messages.
type ErrType int

const (
	ErrUnknown       ErrType = iota
	ErrNoKubeconfig          // kubeconfig file not found
	ErrBadKubeconfig         // kubeconfig is malformed
	ErrNoContext             // no current context set
	ErrUnreachable           // cluster not reachable (timeout/DNS)
	ErrTokenExpired          // 401 Unauthorized
	ErrForbidden             // 403 Forbidden
	ErrNotFound              // 404 Not Found
	ErrRateLimited           // 429 Too Many Requests
	ErrServerError           // 500+
	ErrTLS                   // TLS/cert error
)

func (t ErrType) String() string {
	switch t {
	case ErrNoKubeconfig:
		return "no-kubeconfig"
	case ErrBadKubeconfig:
		return "bad-kubeconfig"
	case ErrNoContext:
		return "no-context"
	case ErrUnreachable:
		return "unreachable"
	case ErrTokenExpired:
		return "token-expired"
	case ErrForbidden:
		return "forbidden"
	case ErrNotFound:
		return "not-found"
	case ErrRateLimited:
		return "rate-limited"
	case ErrServerError:
		return "server-error"
	case ErrTLS:
		return "tls"
	default:
		return "unknown"
	}
}

// APIError wraps a K8s API error with classification.
type APIError struct {
	Type    ErrType
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

package ports

import "context"

// ObjectStorage is the object-storage collaborator used by the release
// evidence pipeline. Implementations must apply bounded timeouts and report
// transient failures with errs.ErrUnavailable so callers can distinguish
// retryable storage trouble from bad input.
type ObjectStorage interface {
	// Put stores content under path and returns a durable reference
	// (public or signed URL) to the stored object.
	Put(ctx context.Context, path string, content []byte, contentType string) (string, error)

	// Get retrieves the content stored under path.
	Get(ctx context.Context, path string) ([]byte, error)
}

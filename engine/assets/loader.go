package assets

// Loader turns a path into a fully constructed resource of one kind.
// Implementations delegate to their own subsystem (image decoding,
// font parsing, audio decoding) and must map every internal failure
// into a *LoadError before returning; the subsystem's own error types
// never cross this boundary. A loader has no access to the cache and
// must not assume the path exists or is valid.
type Loader[R any] interface {
	Load(path string) (R, error)
	// Unload tears down subsystem state held by a resource. Called by
	// the cache once the last handle to the resource is released.
	Unload(R) error
}

// LoaderFunc adapts plain functions to the Loader capability for
// resources without teardown needs.
type LoaderFunc[R any] func(path string) (R, error)

func (f LoaderFunc[R]) Load(path string) (R, error) { return f(path) }

func (f LoaderFunc[R]) Unload(R) error { return nil }

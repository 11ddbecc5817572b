package assets

import (
	"github.com/spaghettifunk/hoard/engine/core"
)

type sharedResource[R any] struct {
	id     string
	path   string
	value  R
	refs   int
	unload func(R)
}

// Handle is one reference to a cached resource. The cache holds one
// handle per entry and every caller of GetOrLoad holds another; the
// underlying resource is torn down when the last handle is released.
// Handles follow the cache's threading contract: one goroutine per
// manager.
type Handle[R any] struct {
	shared   *sharedResource[R]
	released bool
}

func newHandle[R any](path string, value R, unload func(R)) *Handle[R] {
	return &Handle[R]{
		shared: &sharedResource[R]{
			id:     core.NewResourceID(),
			path:   path,
			value:  value,
			refs:   1,
			unload: unload,
		},
	}
}

// Resource returns the shared payload. The payload remains valid until
// this handle is released.
func (h *Handle[R]) Resource() R {
	return h.shared.value
}

// Path returns the key the resource was loaded under.
func (h *Handle[R]) Path() string {
	return h.shared.path
}

// ID returns the resource instance identifier used in logs.
func (h *Handle[R]) ID() string {
	return h.shared.id
}

// Retain creates another reference to the same resource.
func (h *Handle[R]) Retain() *Handle[R] {
	if h.released {
		core.LogWarn("retain on released handle for '%s', returning dead handle", h.shared.path)
		return h
	}
	h.shared.refs++
	return &Handle[R]{shared: h.shared}
}

// Release drops this reference. When the reference count reaches zero
// the unload hook runs and the resource must no longer be used.
// Releasing twice is a no-op.
func (h *Handle[R]) Release() {
	if h.released {
		core.LogWarn("double release of handle for '%s'", h.shared.path)
		return
	}
	h.released = true
	h.shared.refs--
	if h.shared.refs > 0 {
		return
	}
	if h.shared.unload != nil {
		h.shared.unload(h.shared.value)
	}
}

func (h *Handle[R]) refCount() int {
	return h.shared.refs
}

package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleRetainRelease(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var unloads int
	h := newHandle("a.png", &blob{payload: "a.png"}, func(*blob) { unloads++ })
	r.Equal(1, h.refCount())

	other := h.Retain()
	r.Equal(2, h.refCount())
	r.Same(h.Resource(), other.Resource())
	r.Equal(h.ID(), other.ID())
	r.Equal("a.png", h.Path())

	other.Release()
	r.Equal(1, h.refCount())
	r.Zero(unloads)

	h.Release()
	r.Equal(1, unloads)
}

func TestHandleDoubleReleaseIsNoop(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var unloads int
	h := newHandle("a.png", &blob{payload: "a.png"}, func(*blob) { unloads++ })
	keep := h.Retain()

	h.Release()
	h.Release()
	r.Equal(1, keep.refCount())
	r.Zero(unloads)

	keep.Release()
	r.Equal(1, unloads)
}

func TestHandleIDsAreUnique(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	a := newHandle("a.png", &blob{}, nil)
	b := newHandle("b.png", &blob{}, nil)
	r.NotEqual(a.ID(), b.ID())

	a.Release()
	b.Release()
}

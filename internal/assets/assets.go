// Package assets loads sprite images in the background and exposes their
// readiness as an explicit state, so the render stage can fall back to
// primitive shapes without polling a foreign object.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG sprites
	_ "image/png"  // PNG sprites
	"os"
	"sync/atomic"
)

// State is the load state of an asset.
type State int32

const (
	Loading State = iota
	Ready
	Failed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Asset is an image that becomes Ready or Failed exactly once.
type Asset struct {
	name  string
	state atomic.Int32
	img   image.Image
	err   error
	done  chan struct{}
}

func newAsset(name string) *Asset {
	return &Asset{name: name, done: make(chan struct{})}
}

// FromImage wraps an already decoded image as a Ready asset.
func FromImage(name string, img image.Image) *Asset {
	a := newAsset(name)
	a.finish(img, nil)
	return a
}

// Missing returns an asset that is permanently Failed.
func Missing(name string) *Asset {
	a := newAsset(name)
	a.finish(nil, fmt.Errorf("assets: no file configured for %s", name))
	return a
}

// LoadAsync starts decoding the image at path and returns immediately.
// An empty path yields a Failed asset.
func LoadAsync(name, path string) *Asset {
	if path == "" {
		return Missing(name)
	}

	a := newAsset(name)
	go func() {
		a.finish(decodeFile(path))
	}()
	return a
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// finish publishes the result. img and err are written before the state
// store, so readers that observe Ready or Failed also see them.
func (a *Asset) finish(img image.Image, err error) {
	a.img = img
	a.err = err
	if err != nil {
		a.state.Store(int32(Failed))
	} else {
		a.state.Store(int32(Ready))
	}
	close(a.done)
}

// Name returns the asset name.
func (a *Asset) Name() string {
	return a.name
}

// State returns the current load state.
func (a *Asset) State() State {
	if a == nil {
		return Failed
	}
	return State(a.state.Load())
}

// Image returns the decoded image, or nil unless the asset is Ready.
func (a *Asset) Image() image.Image {
	if a.State() != Ready {
		return nil
	}
	return a.img
}

// Err returns the load error once the asset has Failed.
func (a *Asset) Err() error {
	if a == nil || a.State() != Failed {
		return nil
	}
	return a.err
}

// Done is closed when loading has finished either way.
func (a *Asset) Done() <-chan struct{} {
	return a.done
}

// Set groups the sprites the game draws.
type Set struct {
	Avatar   *Asset
	Obstacle *Asset
}

// LoadSet starts loading both sprites.
func LoadSet(avatarPath, obstaclePath string) Set {
	return Set{
		Avatar:   LoadAsync("avatar", avatarPath),
		Obstacle: LoadAsync("obstacle", obstaclePath),
	}
}

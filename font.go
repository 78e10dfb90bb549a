package fontparts

import "sync"

// Font is the owning container of layers. The adapter needs very
// little from it: the ordered list of existing layer names, consulted
// when a layer is renamed.
//
// Environments implement Font with their native font object.
type Font interface {
	// LayerOrder returns the names of the font's layers in their
	// defined order.
	LayerOrder() []string
}

// The font handle table maps numeric handles to live fonts. A layer
// stores only the handle, never the font itself, so a layer can never
// be the reason a font outlives its intended scope. Environments call
// [ReleaseFont] when a font is destroyed; from then on every layer
// attached to it observes "no font".
var fontHandles = struct {
	sync.Mutex
	next    uint64
	byID    map[uint64]Font
	byValue map[Font]uint64
}{
	next:    1,
	byID:    make(map[uint64]Font),
	byValue: make(map[Font]uint64),
}

// registerFont returns a handle for f, creating one on first use.
// Layers of the same font share one handle.
func registerFont(f Font) uint64 {
	fontHandles.Lock()
	defer fontHandles.Unlock()
	if id, ok := fontHandles.byValue[f]; ok {
		return id
	}
	id := fontHandles.next
	fontHandles.next++
	fontHandles.byID[id] = f
	fontHandles.byValue[f] = id
	return id
}

// lookupFont resolves a handle. Returns nil after the font has been
// released.
func lookupFont(id uint64) Font {
	fontHandles.Lock()
	defer fontHandles.Unlock()
	return fontHandles.byID[id]
}

// ReleaseFont drops f from the handle table. Environments must call
// this when destroying a font; afterwards [Layer.Font] returns nil for
// every layer that was attached to f. Releasing an unregistered font
// is a no-op.
func ReleaseFont(f Font) {
	if f == nil {
		return
	}
	fontHandles.Lock()
	defer fontHandles.Unlock()
	if id, ok := fontHandles.byValue[f]; ok {
		delete(fontHandles.byID, id)
		delete(fontHandles.byValue, f)
	}
}

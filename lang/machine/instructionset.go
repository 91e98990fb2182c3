package machine

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/space"
)

// Instruction is a single opcode body: it may read/write the IP's stacks,
// Funge-space, and the environment, and reports what the run loop should
// do next.
type Instruction func(ip *IP, sp *space.Space, env envrt.Environment) Result

// layerSize covers the printable ASCII range fingerprints bind into; any
// cell value outside it can never have a bound instruction.
const layerSize = 128

// Layer is one binding table: a slot per ASCII instruction character. It is
// exported so fingerprint bodies (lang/fingerprint) can populate the layer
// AddLayer hands them without this package knowing about any fingerprint.
type Layer [layerSize]Instruction

// Mode selects how Exec interprets the fetched cell: as an
// opcode (Normal) or as a character literal to push (String, entered by
// '"').
type Mode int

const (
	ModeNormal Mode = iota
	ModeString
)

// Layers holds the instructions available to an IP. Fingerprints add a
// layer with '(' and remove it with ')'; only the topmost layer is
// consulted, so popping one cleanly restores whatever a lower fingerprint
// (or no fingerprint) had bound to the same letters.
type Layers struct {
	Mode   Mode
	layers []*Layer
	// ids[i] is the fingerprint ID that loaded layers[i], or 0 for the base
	// layer (which no ')' can ever pop). Kept parallel to layers so ')' can
	// check the popped ID against the layer it would remove.
	ids []int32
}

// NewLayers returns a Layers with a single, empty base layer.
func NewLayers() *Layers {
	return &Layers{layers: []*Layer{&Layer{}}, ids: []int32{0}}
}

// Clone deep-copies the layer stack, for 't' split: the child IP gets an
// independent copy that can load/unload fingerprints without affecting
// the parent.
func (l *Layers) Clone() *Layers {
	layers := make([]*Layer, len(l.layers))
	for i, layer := range l.layers {
		cp := *layer
		layers[i] = &cp
	}
	ids := make([]int32, len(l.ids))
	copy(ids, l.ids)
	return &Layers{Mode: l.Mode, layers: layers, ids: ids}
}

// Get returns the instruction bound to v in the topmost layer, if any.
func (l *Layers) Get(v cell.Value) (Instruction, bool) {
	if v < 0 || int(v) >= layerSize {
		return nil, false
	}
	top := l.layers[len(l.layers)-1]
	fn := top[int(v)]
	return fn, fn != nil
}

// AddLayer pushes a new layer seeded as a copy of the current top. It
// returns the new layer so a fingerprint's Load callback can overlay its
// bindings on it directly. id is recorded so a later ')'
// can verify it is popping the fingerprint that was actually loaded.
func (l *Layers) AddLayer(id int32) *Layer {
	top := *l.layers[len(l.layers)-1]
	l.layers = append(l.layers, &top)
	l.ids = append(l.ids, id)
	return l.layers[len(l.layers)-1]
}

// TopLayerID returns the fingerprint ID that loaded the topmost layer, or
// 0 if only the base layer remains.
func (l *Layers) TopLayerID() int32 {
	return l.ids[len(l.ids)-1]
}

// PopLayer removes the topmost layer. It is a no-op if only the base
// layer remains, since ')' with no matching '(' has nothing to undo.
func (l *Layers) PopLayer() {
	if len(l.layers) <= 1 {
		return
	}
	l.layers = l.layers[:len(l.layers)-1]
	l.ids = l.ids[:len(l.ids)-1]
}

// Bind sets the instruction for v in layer (as returned by AddLayer).
func Bind(layer *Layer, v cell.Value, fn Instruction) {
	layer[int(v)] = fn
}

package machine

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
)

// FingerprintLoader is what lang/fingerprint registers for each
// fingerprint it implements: a Load callback that fills in a fresh layer.
// Registration happens by import side effect (each fingerprint file calls
// RegisterFingerprint from an init func), so this package never needs to know the
// fingerprint package exists.
type FingerprintLoader struct {
	Load func(layer *Layer)
}

var fingerprintRegistry = map[int32]FingerprintLoader{}

// RegisterFingerprint makes a fingerprint loadable by '(' under the given
// 4-character ID (see FingerprintID). Called from lang/fingerprint's
// init() functions.
func RegisterFingerprint(id int32, loader FingerprintLoader) {
	fingerprintRegistry[id] = loader
}

// FingerprintID folds a 4-character ASCII fingerprint name into the
// 32-bit integer form '(' and ')' exchange with a running program (each
// character shifts the accumulator left by a byte, most significant
// character first).
func FingerprintID(name string) int32 {
	var id int32
	for i := 0; i < len(name); i++ {
		id = (id << 8) | int32(name[i])
	}
	return id
}

// popFingerprintID pops a count n followed by n characters, as '(' and ')'
// both do, and folds them into the FingerprintID encoding. A string
// literal like "ABCD" pushes its characters in order, so popping them
// back comes out reversed (D, C, B, A); reversing that pop order before
// folding restores the original, most-significant-character-first id.
func popFingerprintID(ip *IP) int32 {
	n := int(ip.Pop())
	popped := make([]cell.Value, n)
	for i := 0; i < n; i++ {
		popped[i] = ip.Pop()
	}
	var id int32
	for i := n - 1; i >= 0; i-- {
		id = (id << 8) | int32(popped[i]&0xff)
	}
	return id
}

// loadFingerprint implements '('. On success it pushes the fingerprint ID
// back followed by 1, so a program can tell which of several requested
// fingerprints actually loaded.
func loadFingerprint(ip *IP, env envrt.Environment) bool {
	id := popFingerprintID(ip)
	loader, ok := fingerprintRegistry[id]
	if !ok || !env.FingerprintEnabled(id) {
		return false
	}
	layer := ip.Instructions.AddLayer(id)
	loader.Load(layer)
	ip.Push(cell.Value(id))
	ip.Push(1)
	return true
}

// unloadFingerprint implements ')'. The popped ID must match the
// fingerprint that loaded the current top layer; a mismatch (or an
// attempt to pop the base layer) reflects instead.
func unloadFingerprint(ip *IP) bool {
	id := popFingerprintID(ip)
	if len(ip.Instructions.layers) <= 1 {
		return false
	}
	if ip.Instructions.TopLayerID() != id {
		return false
	}
	ip.Instructions.PopLayer()
	return true
}

// Package bridge serializes (signature, fitness) pairs for a cgo
// boundary: an embedding application can hand a batch of individuals'
// signatures and fitnesses to Go without recomputing them, and read a
// batch back the same way after an external process scores them.
//
// Grounded on the teacher's cgo/bridge.go, which uses
// flatbuffers.Builder/Table across its own C boundary (SimulateBatch);
// this package keeps that same Builder/Table pair but, since Vita has no
// flatc-generated schema of its own, hand-builds a single-field table
// (one byte-vector field carrying a length-prefixed record stream)
// rather than a multi-field generated message — the same underlying
// vtable mechanics, scoped to what this bridge actually needs to carry
// (SPEC_FULL.md §11).
package bridge

import (
	"encoding/binary"
	"fmt"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/morinim/vita/cache"
	"github.com/morinim/vita/fitness"
)

// Pair is one individual's signature and its computed fitness.
type Pair struct {
	Signature cache.Signature
	Fitness   fitness.Fitness
}

// dataFieldSlot is the single field this hand-built table carries: a
// byte vector at field index 0, i.e. vtable offset (0+2)*2 = 4, the
// layout flatc would emit for `table Batch { data: [ubyte]; }`.
const dataFieldSlot = 4

// Encode packs pairs into a flatbuffers message: one table with a
// single byte-vector field holding a length-prefixed stream of
// (signature, fitness-length, fitness...) records.
func Encode(pairs []Pair) []byte {
	payload := encodePayload(pairs)

	b := flatbuffers.NewBuilder(len(payload) + 64)
	dataOffset := b.CreateByteVector(payload)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, dataOffset, 0)
	root := b.EndObject()
	b.Finish(root)
	return b.FinishedBytes()
}

// Decode reverses Encode.
func Decode(buf []byte) ([]Pair, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("bridge: message too short to contain a root offset")
	}
	payload, err := readDataField(buf)
	if err != nil {
		return nil, err
	}
	return decodePayload(payload)
}

func readDataField(buf []byte) ([]byte, error) {
	root := flatbuffers.GetUOffsetT(buf)
	tab := flatbuffers.Table{Bytes: buf, Pos: root}

	off := tab.Offset(dataFieldSlot)
	if off == 0 {
		return nil, nil
	}
	return tab.ByteVector(tab.Pos + flatbuffers.UOffsetT(off)), nil
}

// encodePayload writes each pair as: sig.hi, sig.lo (uint64 each),
// fitness length (uint32), then that many float64 components, all
// little-endian.
func encodePayload(pairs []Pair) []byte {
	size := 0
	for _, p := range pairs {
		size += 8 + 8 + 4 + 8*len(p.Fitness)
	}
	buf := make([]byte, size)
	off := 0
	for _, p := range pairs {
		binary.LittleEndian.PutUint64(buf[off:], p.Signature[0])
		off += 8
		binary.LittleEndian.PutUint64(buf[off:], p.Signature[1])
		off += 8
		binary.LittleEndian.PutUint32(buf[off:], uint32(len(p.Fitness)))
		off += 4
		for _, f := range p.Fitness {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(f))
			off += 8
		}
	}
	return buf
}

func decodePayload(buf []byte) ([]Pair, error) {
	var pairs []Pair
	off := 0
	for off < len(buf) {
		if off+20 > len(buf) {
			return nil, fmt.Errorf("bridge: truncated record header at offset %d", off)
		}
		var p Pair
		p.Signature[0] = binary.LittleEndian.Uint64(buf[off:])
		off += 8
		p.Signature[1] = binary.LittleEndian.Uint64(buf[off:])
		off += 8
		n := int(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
		if off+8*n > len(buf) {
			return nil, fmt.Errorf("bridge: truncated fitness vector at offset %d", off)
		}
		p.Fitness = make(fitness.Fitness, n)
		for i := 0; i < n; i++ {
			p.Fitness[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
			off += 8
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

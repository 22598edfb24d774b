package persist

import (
	"encoding/binary"
	"fmt"
	"math"

	"go-waypoint-defense/pkg/geom"
)

// Reader decodes fields written by Writer. The first read past the end of
// the data sets a sticky error; later reads return zero values.
type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Err returns the first decoding error, if any.
func (r *Reader) Err() error { return r.err }

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.off+n > len(r.data) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.off, r.Remaining())
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) ReadU8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) ReadBool() bool {
	switch v := r.ReadU8(); v {
	case 0:
		return false
	case 1:
		return true
	default:
		r.fail(fmt.Errorf("%w: bool byte %d at offset %d", ErrCorrupt, v, r.off-1))
		return false
	}
}

func (r *Reader) ReadU16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) ReadU64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) ReadI64() int64 {
	return int64(r.ReadU64())
}

func (r *Reader) ReadF64() float64 {
	return math.Float64frombits(r.ReadU64())
}

// ReadLen reads a length prefix of elements at least minSize bytes each and
// rejects counts the remaining data cannot hold.
func (r *Reader) ReadLen(minSize int) int {
	n := r.ReadU64()
	if r.err != nil {
		return 0
	}
	if minSize < 1 {
		minSize = 1
	}
	if n > uint64(r.Remaining()/minSize) {
		r.fail(fmt.Errorf("%w: length %d at offset %d exceeds remaining %d bytes", ErrTruncated, n, r.off-8, r.Remaining()))
		return 0
	}
	return int(n)
}

func (r *Reader) ReadString() string {
	n := r.ReadLen(1)
	return string(r.take(n))
}

func (r *Reader) ReadBytes(n int) []byte {
	return r.take(n)
}

func (r *Reader) ReadVec() geom.Vec2 {
	x := r.ReadF64()
	y := r.ReadF64()
	return geom.V(x, y)
}

func (r *Reader) ReadRect() geom.Rect {
	x := r.ReadF64()
	y := r.ReadF64()
	w := r.ReadF64()
	h := r.ReadF64()
	return geom.R(x, y, w, h)
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

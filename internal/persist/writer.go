package persist

import (
	"encoding/binary"
	"math"

	"go-waypoint-defense/pkg/geom"
)

// Writer builds a level blob. All multi-byte fields are little-endian.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 4096)}
}

func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
		return
	}
	w.WriteU8(0)
}

func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WriteI64 stores a signed value as its two's complement bits.
func (w *Writer) WriteI64(v int64) {
	w.WriteU64(uint64(v))
}

func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

// WriteLen writes a sequence or string length prefix.
func (w *Writer) WriteLen(n int) {
	w.WriteU64(uint64(n))
}

func (w *Writer) WriteString(s string) {
	w.WriteLen(len(s))
	w.buf = append(w.buf, s...)
}

func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *Writer) WriteVec(v geom.Vec2) {
	w.WriteF64(v.X)
	w.WriteF64(v.Y)
}

func (w *Writer) WriteRect(r geom.Rect) {
	w.WriteF64(r.X)
	w.WriteF64(r.Y)
	w.WriteF64(r.Width)
	w.WriteF64(r.Height)
}

// Bytes returns the encoded content.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

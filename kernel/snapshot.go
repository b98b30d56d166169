package kernel

import (
	"encoding/binary"
	"errors"
)

// snapshotVersion is incremented whenever the binary layout below
// changes, the same discipline the teacher's CPU serializer uses.
const snapshotVersion = 1

// snapshotSize is the number of bytes ThreadSnapshot produces.
const snapshotSize = 1 + 4 + 4 + 4 + 1 + 1 + 1 + 1 + 4

// ThreadSnapshot is a byte-stable encoding of a Thread's scheduling
// state, used by tests to assert round-trips across a fabricated
// stack (property R1) without depending on in-memory struct layout.
// Bus/Fn references are not included, mirroring the teacher's
// exclusion of its Bus field from CPU serialization.
func ThreadSnapshot(t *Thread, buf []byte) error {
	if len(buf) < snapshotSize {
		return errors.New("kernel: snapshot buffer too small")
	}

	buf[0] = snapshotVersion
	be := binary.BigEndian
	off := 1

	be.PutUint32(buf[off:], uint32(t.Context.StackAddr))
	off += 4
	be.PutUint32(buf[off:], t.Prio)
	off += 4
	be.PutUint32(buf[off:], uint32(t.FnAddr))
	off += 4

	buf[off] = boolByte(t.Privileged)
	off++
	buf[off] = boolByte(t.FP)
	off++
	buf[off] = byte(t.State)
	off++
	buf[off] = byte(t.Block.Kind)
	off++

	be.PutUint32(buf[off:], t.Block.Deadline)
	return nil
}

// RestoreThreadSnapshot is the inverse of ThreadSnapshot: it
// overwrites t's scheduling fields from buf, leaving Fn untouched
// since a function value has no byte representation.
func RestoreThreadSnapshot(t *Thread, buf []byte) error {
	if len(buf) < snapshotSize {
		return errors.New("kernel: snapshot buffer too small")
	}
	if buf[0] != snapshotVersion {
		return errors.New("kernel: unsupported snapshot version")
	}

	be := binary.BigEndian
	off := 1

	t.Context.StackAddr = uintptr(be.Uint32(buf[off:]))
	off += 4
	t.Prio = be.Uint32(buf[off:])
	off += 4
	t.FnAddr = uintptr(be.Uint32(buf[off:]))
	off += 4

	t.Privileged = buf[off] != 0
	off++
	t.FP = buf[off] != 0
	off++
	t.State = ThreadState(buf[off])
	off++
	t.Block.Kind = BlockKind(buf[off])
	off++

	t.Block.Deadline = be.Uint32(buf[off:])
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

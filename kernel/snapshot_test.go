package kernel

import "testing"

func TestThreadSnapshotRoundTrip(t *testing.T) {
	th := NewThread(func() {}, testStack(), true)
	th.State = Blocked
	th.Block = BlockReason{Kind: BlockSleep, Deadline: 12345}

	buf := make([]byte, snapshotSize)
	if err := ThreadSnapshot(&th, buf); err != nil {
		t.Fatalf("ThreadSnapshot: %v", err)
	}

	var restored Thread
	if err := RestoreThreadSnapshot(&restored, buf); err != nil {
		t.Fatalf("RestoreThreadSnapshot: %v", err)
	}

	if restored.Context.StackAddr != th.Context.StackAddr {
		t.Errorf("StackAddr = %#x, want %#x", restored.Context.StackAddr, th.Context.StackAddr)
	}
	if restored.FnAddr != th.FnAddr {
		t.Errorf("FnAddr = %#x, want %#x", restored.FnAddr, th.FnAddr)
	}
	if restored.Privileged != th.Privileged {
		t.Errorf("Privileged = %v, want %v", restored.Privileged, th.Privileged)
	}
	if restored.State != th.State {
		t.Errorf("State = %v, want %v", restored.State, th.State)
	}
	if restored.Block != th.Block {
		t.Errorf("Block = %+v, want %+v", restored.Block, th.Block)
	}
}

func TestThreadSnapshotBufferTooSmall(t *testing.T) {
	th := NewThread(func() {}, testStack(), false)
	buf := make([]byte, snapshotSize-1)

	if err := ThreadSnapshot(&th, buf); err == nil {
		t.Error("expected error for undersized buffer")
	}
	if err := RestoreThreadSnapshot(&th, buf); err == nil {
		t.Error("expected error for undersized buffer")
	}
}

func TestThreadSnapshotVersionMismatch(t *testing.T) {
	th := NewThread(func() {}, testStack(), false)
	buf := make([]byte, snapshotSize)
	if err := ThreadSnapshot(&th, buf); err != nil {
		t.Fatalf("ThreadSnapshot: %v", err)
	}
	buf[0] = snapshotVersion + 1

	if err := RestoreThreadSnapshot(&th, buf); err == nil {
		t.Error("expected error for version mismatch")
	}
}

package kernel

import "testing"

func TestRegisterAndDispatchSyscall(t *testing.T) {
	defer clearSyscallTable()

	var got [3]uintptr
	called := false
	RegisterSyscall(7, func(a1, a2, a3 uintptr) {
		called = true
		got = [3]uintptr{a1, a2, a3}
	})

	Dispatch(7, 1, 2, 3)

	if !called {
		t.Fatal("handler was not called")
	}
	if got != ([3]uintptr{1, 2, 3}) {
		t.Errorf("args = %v, want [1 2 3]", got)
	}
}

func TestRegisterSyscallOutOfRangePanics(t *testing.T) {
	defer clearSyscallTable()
	cases := []int{-1, MaxSyscallID, MaxSyscallID + 5}
	for _, id := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("RegisterSyscall(%d, ...) did not panic", id)
				}
			}()
			RegisterSyscall(id, func(a1, a2, a3 uintptr) {})
		}()
	}
}

func TestDispatchUnregisteredPanics(t *testing.T) {
	defer clearSyscallTable()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dispatching an unregistered syscall")
		}
	}()
	Dispatch(3, 0, 0, 0)
}

func TestGetSyscallOutOfRange(t *testing.T) {
	if _, ok := GetSyscall(-1); ok {
		t.Error("GetSyscall(-1) should report not found")
	}
	if _, ok := GetSyscall(MaxSyscallID); ok {
		t.Error("GetSyscall(MaxSyscallID) should report not found")
	}
}

func clearSyscallTable() {
	for i := range syscallTable {
		syscallTable[i] = nil
	}
}

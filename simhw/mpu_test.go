package simhw

import "testing"

func TestMPURequiresInitBeforeProgrammingStack(t *testing.T) {
	m := NewMPU()
	if err := m.ProgramThreadStack(0x20000000, 1024); err == nil {
		t.Fatal("expected error programming the stack region before InitStatic")
	}
}

func TestMPUContainsReflectsLastProgrammedRegion(t *testing.T) {
	m := NewMPU()
	if err := m.InitStatic(); err != nil {
		t.Fatalf("InitStatic: %v", err)
	}
	if err := m.ProgramThreadStack(0x20000000, 1024); err != nil {
		t.Fatalf("ProgramThreadStack: %v", err)
	}

	if !m.Contains(0x20000000) {
		t.Error("expected region start to be contained")
	}
	if !m.Contains(0x200003FF) {
		t.Error("expected last byte of region to be contained")
	}
	if m.Contains(0x20000400) {
		t.Error("expected one past the end to be excluded")
	}
	if m.Contains(0x1FFFFFFF) {
		t.Error("expected one before the start to be excluded")
	}
}

func TestMPUCurrentStackRegion(t *testing.T) {
	m := NewMPU()
	m.InitStatic()
	m.ProgramThreadStack(0x20002000, 512)

	base, size := m.CurrentStackRegion()
	if base != 0x20002000 || size != 512 {
		t.Errorf("CurrentStackRegion() = (%#x, %d), want (%#x, 512)", base, size, 0x20002000)
	}
}

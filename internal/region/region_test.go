package region

import "testing"

func TestSliceAcquire(t *testing.T) {
	var p Slice

	buf, err := p.Acquire(1024)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if len(buf) != 1024 {
		t.Fatalf("len(buf) = %d, want 1024", len(buf))
	}

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}

	if err := p.Release(buf); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestSliceAcquireZeroSize(t *testing.T) {
	var p Slice

	if _, err := p.Acquire(0); err == nil {
		t.Fatal("Acquire(0) should fail")
	}
}

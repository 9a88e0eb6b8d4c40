package mathutil

import "testing"

func TestIntHelpers(t *testing.T) {
	if IntMin(3, 5) != 3 || IntMin(-2, -7) != -7 {
		t.Error("IntMin")
	}
	if IntMax(3, 5) != 5 || IntMax(-2, -7) != -2 {
		t.Error("IntMax")
	}
	if IntAbs(-4) != 4 || IntAbs(4) != 4 || IntAbs(0) != 0 {
		t.Error("IntAbs")
	}
}

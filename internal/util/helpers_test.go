package util

import "testing"

func TestPtrDeref(t *testing.T) {
	p := Ptr(4.7)
	if Deref(p) != 4.7 {
		t.Fatalf("Deref(Ptr(4.7)) = %v", Deref(p))
	}
	var nilPtr *int
	if Deref(nilPtr) != 0 {
		t.Fatalf("Deref(nil) should be zero")
	}
}

func TestIntToBool(t *testing.T) {
	if !IntToBool(1) || IntToBool(0) {
		t.Fatalf("IntToBool mismatch")
	}
}

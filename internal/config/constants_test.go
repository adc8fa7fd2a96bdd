package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if DefaultLabelsPerSticker < 1 || DefaultLabelsPerSticker > MaxLabelsPerSticker {
		t.Fatalf("DefaultLabelsPerSticker out of range")
	}
	if DefaultHistoryLimit <= 0 || DefaultHistoryLimit > MaxHistoryLimit {
		t.Fatalf("DefaultHistoryLimit out of range")
	}
	if MinPreviewWidth >= CompactModeThreshold {
		t.Fatalf("MinPreviewWidth should be below CompactModeThreshold")
	}
}

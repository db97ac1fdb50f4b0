package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	result := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	result := NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3))

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	length := NewVector3(3, 4, 0).Length()

	if math.Abs(length-5.0) > 1e-10 {
		t.Errorf("Length failed: expected 5, got %v", length)
	}
}

func TestVector3Cross(t *testing.T) {
	result := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	result := NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6))

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	if n := (Vector3{}).Normalize(); n != (Vector3{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", n)
	}
}

func TestVector3IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want bool
	}{
		{"finite", NewVector3(1, -2, 3.5), true},
		{"nan", NewVector3(math.NaN(), 0, 0), false},
		{"+inf", NewVector3(0, math.Inf(1), 0), false},
		{"-inf", NewVector3(0, 0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

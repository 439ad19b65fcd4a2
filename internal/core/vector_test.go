package core

import "testing"

func TestVecPlus(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected Vec
	}{
		{"zero", V(0, 0), V(0, 0), V(0, 0)},
		{"positive", V(1, 2), V(3, 4), V(4, 6)},
		{"negative", V(1, 2), V(-1, -0.5), V(0, 1.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Plus(tc.b)
			if result != tc.expected {
				t.Errorf("Plus() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestVecTimes(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		factor   float64
		expected Vec
	}{
		{"identity", V(2, 3), 1, V(2, 3)},
		{"reverse", V(2, 0), -1, V(-2, 0)},
		{"half", V(0.8, 1.5), 0.5, V(0.4, 0.75)},
		{"zero", V(5, 5), 0, V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.v.Times(tc.factor)
			if result != tc.expected {
				t.Errorf("Times(%v) = %v, expected %v", tc.factor, result, tc.expected)
			}
		})
	}
}

func TestVecImmutable(t *testing.T) {
	v := V(1, 1)
	_ = v.Plus(V(5, 5))
	_ = v.Times(10)

	if v != V(1, 1) {
		t.Errorf("operations should not modify the receiver, got %v", v)
	}
}

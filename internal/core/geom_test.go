package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestVec2Ops(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %f, expected -5", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}

	n, ok := a.Normalize()
	if !ok || math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize() = %v, %v, expected unit vector", n, ok)
	}

	if _, ok := V(0, 0).Normalize(); ok {
		t.Error("Normalize() of zero vector should report false")
	}
}

func TestVec2Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec2
		expected Vec2
	}{
		{"off floor", V(3, 5), V(0, -1), V(3, -5)},
		{"off left wall", V(-2, 1), V(1, 0), V(2, 1)},
		{"head on", V(0, -4), V(0, 1), V(0, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Reflect(tc.n)
			if got != tc.expected {
				t.Errorf("Reflect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFromPolarRoundTrip(t *testing.T) {
	v := V(-3, 7)
	back := FromPolar(v.Angle(), v.Len())
	if math.Abs(back.X-v.X) > 1e-9 || math.Abs(back.Y-v.Y) > 1e-9 {
		t.Errorf("FromPolar(Angle, Len) = %v, expected %v", back, v)
	}
}

func TestBoxEdges(t *testing.T) {
	b := BoxFromEdges(10, 20, 8, 16)

	if b.Center != V(14, 28) {
		t.Errorf("Center = %v, expected (14, 28)", b.Center)
	}
	if b.Left() != 10 || b.Right() != 18 || b.Top() != 20 || b.Bottom() != 36 {
		t.Errorf("edges = %f %f %f %f, expected 10 18 20 36", b.Left(), b.Right(), b.Top(), b.Bottom())
	}
}

func TestBoxCircleOverlaps(t *testing.T) {
	b := BoxFromEdges(0, 0, 10, 10)

	tests := []struct {
		name     string
		c        Vec2
		r        float64
		expected bool
	}{
		{"center inside", V(5, 5), 1, true},
		{"overlapping left edge", V(-2, 5), 3, true},
		{"touching left edge", V(-3, 5), 3, false},
		{"near corner but outside", V(13, 13), 3, false},
		{"overlapping corner", V(12, 12), 3, true},
		{"far away", V(50, 50), 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CircleOverlaps(tc.c, tc.r); got != tc.expected {
				t.Errorf("CircleOverlaps(%v, %f) = %v, expected %v", tc.c, tc.r, got, tc.expected)
			}
		})
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := BoxFromEdges(0, 0, 10, 10)

	if got := b.ClosestPoint(V(5, 5)); got != V(5, 5) {
		t.Errorf("ClosestPoint(inside) = %v, expected (5, 5)", got)
	}
	if got := b.ClosestPoint(V(-4, 3)); got != V(0, 3) {
		t.Errorf("ClosestPoint(left) = %v, expected (0, 3)", got)
	}
	if got := b.ClosestPoint(V(20, 20)); got != V(10, 10) {
		t.Errorf("ClosestPoint(corner) = %v, expected (10, 10)", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}


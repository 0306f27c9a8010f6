package rowan

import "testing"

func TestPointConstructors(t *testing.T) {
	if got := Pt(3, -7); got != (Point{X: 3, Y: -7}) {
		t.Errorf("Pt(3, -7) = %v", got)
	}
	if got := Splat(5); got != (Point{X: 5, Y: 5}) {
		t.Errorf("Splat(5) = %v", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(10, 20)), Pt(11, 22)},
		{"sub", Pt(1, 2).Sub(Pt(10, 20)), Pt(-9, -18)},
		{"mul", Pt(3, -4).Mul(2), Pt(6, -8)},
		{"div", Pt(7, -7).Div(2), Pt(3, -3)},
		{"div truncates toward zero", Pt(-5, 5).Div(2), Pt(-2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointArea(t *testing.T) {
	if got := Pt(4, 6).Area(); got != 24 {
		t.Errorf("Area = %d, want 24", got)
	}
	if got := Pt(0, 6).Area(); got != 0 {
		t.Errorf("Area = %d, want 0", got)
	}
}

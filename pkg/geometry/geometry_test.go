package geometry

import "testing"

func TestRectangleContainsPoint(t *testing.T) {
	r := Rectangle{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Inside", Point{X: 15, Y: 15}, true},
		{"TopLeftCorner", Point{X: 10, Y: 10}, true},
		{"BottomRightCorner", Point{X: 30, Y: 30}, true},
		{"LeftOf", Point{X: 9, Y: 15}, false},
		{"Below", Point{X: 15, Y: 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectangleContainsRect(t *testing.T) {
	outer := Rectangle{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name  string
		inner Rectangle
		want  bool
	}{
		{"FullyInside", Rectangle{X: 10, Y: 10, Width: 20, Height: 20}, true},
		{"Self", outer, true},
		{"Overlapping", Rectangle{X: 90, Y: 90, Width: 20, Height: 20}, false},
		{"Outside", Rectangle{X: 200, Y: 200, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectangleIntersects(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"Overlapping", Rectangle{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"Touching", Rectangle{X: 10, Y: 0, Width: 10, Height: 10}, true},
		{"Disjoint", Rectangle{X: 20, Y: 20, Width: 5, Height: 5}, false},
		{"Contained", Rectangle{X: 2, Y: 2, Width: 2, Height: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectangleUnion(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rectangle{X: 20, Y: 5, Width: 10, Height: 10}

	got := a.Union(b)
	want := Rectangle{X: 0, Y: 0, Width: 30, Height: 15}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	p := Point{X: 1, Y: 2}.Translate(3, 4)
	if p != (Point{X: 4, Y: 6}) {
		t.Errorf("Point.Translate = %+v", p)
	}

	r := Rectangle{X: 1, Y: 2, Width: 5, Height: 5}.Translate(-1, -2)
	if r != (Rectangle{X: 0, Y: 0, Width: 5, Height: 5}) {
		t.Errorf("Rectangle.Translate = %+v", r)
	}
}

package tileview_test

import (
	"errors"
	"testing"

	"github.com/fuzzy-pickles/tileview"
)

func TestPixelRectToNDC(t *testing.T) {
	window := tileview.Size{Width: 800, Height: 600}
	r := tileview.PixelRect{X1: 100, Y1: 50, X2: 700, Y2: 550}

	ndc, err := r.ToNDC(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := tileview.NDCRect{X1: -0.75, Y1: -0.8333, X2: 0.75, Y2: 0.8333}
	if !approx(ndc.X1, want.X1) || !approx(ndc.Y1, want.Y1) ||
		!approx(ndc.X2, want.X2) || !approx(ndc.Y2, want.Y2) {
		t.Errorf("expected %+v, got %+v", want, ndc)
	}
}

func TestPixelRectFullWindow(t *testing.T) {
	window := tileview.Size{Width: 640, Height: 480}
	ndc, err := tileview.PixelRect{X2: 640, Y2: 480}.ToNDC(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ndc != (tileview.NDCRect{X1: -1, Y1: -1, X2: 1, Y2: 1}) {
		t.Errorf("expected full NDC range, got %+v", ndc)
	}
}

func TestPixelRectRoundTrip(t *testing.T) {
	tests := []struct {
		window tileview.Size
		rect   tileview.PixelRect
	}{
		{tileview.Size{Width: 800, Height: 600}, tileview.PixelRect{X1: 0, Y1: 0, X2: 800, Y2: 600}},
		{tileview.Size{Width: 800, Height: 600}, tileview.PixelRect{X1: 13, Y1: 37, X2: 411, Y2: 599}},
		{tileview.Size{Width: 1920, Height: 1080}, tileview.PixelRect{X1: 960, Y1: 32, X2: 1500.5, Y2: 1079}},
		{tileview.Size{Width: 33, Height: 77}, tileview.PixelRect{X1: 30, Y1: 70, X2: 3, Y2: 7}},
	}

	for _, tt := range tests {
		ndc, err := tt.rect.ToNDC(tt.window)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		back := ndc.ToPixels(tt.window)

		const tol = 1e-3
		if d := back.X1 - tt.rect.X1; d > tol || d < -tol {
			t.Errorf("X1: expected %v, got %v", tt.rect.X1, back.X1)
		}
		if d := back.Y1 - tt.rect.Y1; d > tol || d < -tol {
			t.Errorf("Y1: expected %v, got %v", tt.rect.Y1, back.Y1)
		}
		if d := back.X2 - tt.rect.X2; d > tol || d < -tol {
			t.Errorf("X2: expected %v, got %v", tt.rect.X2, back.X2)
		}
		if d := back.Y2 - tt.rect.Y2; d > tol || d < -tol {
			t.Errorf("Y2: expected %v, got %v", tt.rect.Y2, back.Y2)
		}
	}
}

func TestPixelRectInvalidWindow(t *testing.T) {
	_, err := tileview.PixelRect{X2: 10, Y2: 10}.ToNDC(tileview.Size{Width: 0, Height: 10})
	if !errors.Is(err, tileview.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

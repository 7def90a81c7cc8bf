package pixels

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// BenchmarkLine compares the two line algorithms on a shallow segment.
func BenchmarkLine(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		p0 := image.Pt(0, 0)
		p1 := image.Pt(size, size/3)

		b.Run(fmt.Sprintf("Bresenham%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				LineBresenham(p0, p1)
			}
		})
		b.Run(fmt.Sprintf("DDA%d", size), func(b *testing.B) {
			v0, v1 := toVec(p0), toVec(p1)
			b.ReportAllocs()
			for b.Loop() {
				LineDDA(v0, v1)
			}
		})
	}
}

// BenchmarkCircle measures the midpoint circle algorithm including
// painting the pixels into an image.
func BenchmarkCircle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			center := image.Pt(size/2, size/2)
			r := size * 45 / 100

			b.ReportAllocs()
			for b.Loop() {
				pix, _ := CircleBresenham(center, r)
				for _, p := range pix {
					dst.SetAlpha(p.X, p.Y, color.Alpha{A: 255})
				}
			}
		})
	}
}

// BenchmarkClip compares the two clipping algorithms on a segment which
// crosses the viewport diagonally.
func BenchmarkClip(b *testing.B) {
	v, err := NewViewport(0, 0, 100, 100)
	if err != nil {
		b.Fatal(err)
	}
	p0 := vec.Vec2{X: -30, Y: -10}
	p1 := vec.Vec2{X: 130, Y: 120}

	b.Run("CohenSutherland", func(b *testing.B) {
		for b.Loop() {
			ClipCohenSutherland(p0, p1, v)
		}
	})
	b.Run("LiangBarsky", func(b *testing.B) {
		for b.Loop() {
			ClipLiangBarsky(p0, p1, v)
		}
	})
}

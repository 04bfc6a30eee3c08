package projector

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/paulmach/orb"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestFit_EmptyExtent(t *testing.T) {
	_, err := Fit(nil, CanvasWidth, CanvasHeight)
	if !errors.Is(err, ErrEmptyExtent) {
		t.Fatalf("expected ErrEmptyExtent, got %v", err)
	}
}

func TestFit_ExtentFillsCanvas(t *testing.T) {
	geoms := []orb.Geometry{
		orb.Point{-10, -5},
		orb.Point{30, 15},
	}

	p, err := Fit(geoms, CanvasWidth, CanvasHeight)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	tests := []struct {
		name string
		in   orb.Point
		want orb.Point
	}{
		{"top-left corner", orb.Point{-10, 15}, orb.Point{0, 0}},
		{"bottom-right corner", orb.Point{30, -5}, orb.Point{1600, 900}},
		{"center", orb.Point{10, 5}, orb.Point{800, 450}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Project(tt.in)
			if got != tt.want {
				t.Errorf("Project(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	// No point of the extent may project outside the canvas.
	for _, pt := range []orb.Point{{-10, -5}, {30, 15}, {0, 0}, {-10, 15}, {30, -5}} {
		got := p.Project(pt)
		if got[0] < 0 || got[0] > 1600 || got[1] < 0 || got[1] > 900 {
			t.Errorf("Project(%v) = %v escapes the canvas", pt, got)
		}
	}
}

func TestProjection_PathDeterministic(t *testing.T) {
	p, err := Fit([]orb.Geometry{orb.Point{0, 0}, orb.Point{10, 10}}, 100, 100)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	const poly = "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))"
	first, err := p.Path(poly)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	second, err := p.Path(poly)
	if err != nil {
		t.Fatalf("Path failed on second call: %v", err)
	}
	if first != second {
		t.Errorf("same projection and input produced different paths:\n%s\n%s", first, second)
	}
}

func TestProjection_PathParseError(t *testing.T) {
	p, err := Fit([]orb.Geometry{orb.Point{0, 0}, orb.Point{10, 10}}, 100, 100)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	_, err = p.Path("POLYGON ((not a coordinate))")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if err != nil && len(err.Error()) == 0 {
		t.Error("parse error should name the offending text")
	}
}

func TestProjection_PathParseError_TruncatesText(t *testing.T) {
	p, err := Fit([]orb.Geometry{orb.Point{0, 0}, orb.Point{10, 10}}, 100, 100)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	long := "GARBAGE ("
	for i := 0; i < 100; i++ {
		long += "xxxxxxxxxx"
	}
	_, err = p.Path(long)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if len(err.Error()) > 200 {
		t.Errorf("error message should truncate the input, got %d chars", len(err.Error()))
	}
}

func TestProjection_PathEmpty(t *testing.T) {
	p, err := Fit([]orb.Geometry{orb.Point{0, 0}, orb.Point{10, 10}}, 100, 100)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	_, err = p.Path("POINT (5 5)")
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath for a point, got %v", err)
	}
}

func TestFitDataset_SkipsUnusableGeometry(t *testing.T) {
	ds := &world.Dataset{Regions: world.NewRegionMap()}
	ds.Regions.Set("aaa", &world.Region{
		RegionName: "A",
		Areas:      &world.AreaSet{HighRes: &world.Area{AreaWKT: "POLYGON ((broken"}},
	})
	ds.Regions.Set("bbb", &world.Region{
		RegionName: "B",
		Areas:      &world.AreaSet{HighRes: &world.Area{AreaWKT: "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))"}},
	})
	ds.Regions.Set("ccc", &world.Region{RegionName: "C"})

	p, err := FitDataset(ds, CanvasWidth, CanvasHeight, testLogger())
	if err != nil {
		t.Fatalf("FitDataset failed: %v", err)
	}

	want := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
	if p.Bound() != want {
		t.Errorf("expected extent %v from the one good region, got %v", want, p.Bound())
	}
}

func TestFitDataset_EmptyExtent(t *testing.T) {
	ds := &world.Dataset{Regions: world.NewRegionMap()}
	ds.Regions.Set("aaa", &world.Region{
		RegionName: "A",
		Areas:      &world.AreaSet{MediumRes: &world.Area{AreaWKT: "POINT (1 1)"}},
	})

	_, err := FitDataset(ds, CanvasWidth, CanvasHeight, testLogger())
	if !errors.Is(err, ErrEmptyExtent) {
		t.Fatalf("expected ErrEmptyExtent without high-res data, got %v", err)
	}
}

func BenchmarkPath_Polygon(b *testing.B) {
	p, err := Fit([]orb.Geometry{orb.Point{-180, -90}, orb.Point{180, 90}}, CanvasWidth, CanvasHeight)
	if err != nil {
		b.Fatalf("Fit failed: %v", err)
	}

	const poly = "POLYGON ((-10 -10, 10 -10, 15 0, 10 10, -10 10, -15 0, -10 -10))"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Path(poly); err != nil {
			b.Fatal(err)
		}
	}
}

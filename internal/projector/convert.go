package projector

import (
	"log/slog"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

// Options configures dataset conversion.
type Options struct {
	// Width and Height of the output canvas. Zero values fall back to the
	// fixed 1600×900 canvas.
	Width  float64
	Height float64
	// Resolutions to project and emit. Defaults to medium-res only.
	Resolutions []world.Resolution
	// Logger for skip and failure reporting. Defaults to slog.Default.
	Logger *slog.Logger
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Width <= 0 {
		out.Width = CanvasWidth
	}
	if out.Height <= 0 {
		out.Height = CanvasHeight
	}
	if len(out.Resolutions) == 0 {
		out.Resolutions = []world.Resolution{world.MediumRes}
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}

// Convertible reports whether a region qualifies for conversion: the code
// is at most 3 characters and every requested resolution tier carries a
// non-blank geometry. Placeholder and composite entries fail this test and
// are skipped rather than treated as errors.
func Convertible(code string, r *world.Region, resolutions []world.Resolution) bool {
	if len(code) > 3 {
		return false
	}
	if r == nil || r.Areas.Empty() {
		return false
	}
	for _, res := range resolutions {
		area := r.Areas.Get(res)
		if area == nil || strings.TrimSpace(area.AreaWKT) == "" {
			return false
		}
	}
	return true
}

// Convert projects every qualifying region of a dev-form dataset through
// the shared projection and assembles the prod-form dataset. Survivors keep
// their name and disputed-region claims verbatim and appear in input order;
// common territories pass through untouched. Conversion failures on a
// qualifying region are logged and skipped, never fatal.
func Convert(ds *world.Dataset, proj *Projection, opts *Options) *world.Dataset {
	opts = opts.withDefaults()
	log := opts.Logger

	out := &world.Dataset{
		CommonTerritories: ds.CommonTerritories,
		Regions:           world.NewRegionMap(),
		Width:             int(opts.Width),
		Height:            int(opts.Height),
	}

	for _, code := range ds.Regions.Codes() {
		r, _ := ds.Regions.Get(code)
		if !Convertible(code, r, opts.Resolutions) {
			log.Info("skipping region without convertible geometry", "region", code)
			continue
		}

		areas := &world.AreaSet{}
		failed := false
		for _, res := range opts.Resolutions {
			path, err := proj.Path(r.Areas.Get(res).AreaWKT)
			if err != nil {
				log.Error("region conversion failed", "region", code, "resolution", string(res), "err", err)
				failed = true
				break
			}
			areas.Set(res, &world.Area{AreaSVG: path})
		}
		if failed {
			continue
		}

		out.Regions.Set(code, &world.Region{
			RegionName:      r.RegionName,
			Areas:           areas,
			DisputedRegions: r.DisputedRegions,
		})
	}

	return out
}

// ConvertDataset builds the global projection from the dataset's high-res
// geometries, then converts it. The only fatal condition is an empty
// extent; everything else degrades to per-region skips.
func ConvertDataset(ds *world.Dataset, opts *Options) (*world.Dataset, error) {
	opts = opts.withDefaults()
	proj, err := FitDataset(ds, opts.Width, opts.Height, opts.Logger)
	if err != nil {
		return nil, err
	}
	return Convert(ds, proj, opts), nil
}

// Inspect renders the projected geometries of every qualifying region as a
// GeoJSON feature collection for visual review. Coordinates are in canvas
// space, properties carry the region code and name.
func Inspect(ds *world.Dataset, proj *Projection, res world.Resolution) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	resolutions := []world.Resolution{res}

	for _, code := range ds.Regions.Codes() {
		r, _ := ds.Regions.Get(code)
		if !Convertible(code, r, resolutions) {
			continue
		}
		g, err := proj.Geometry(r.Areas.Get(res).AreaWKT)
		if err != nil {
			continue
		}
		f := geojson.NewFeature(g)
		f.Properties = geojson.Properties{
			"code": code,
			"name": r.RegionName,
		}
		fc.Append(f)
	}

	return fc
}

// Package naturalearth builds a dev-form world dataset from Natural Earth
// admin-0 country layers in FlatGeobuf form. The three standard layers
// (110m, 50m, 10m) feed the low-, medium- and high-res area tiers; features
// are grouped by their ISO-3 code (ADM0_A3) with ADMIN as the display name.
package naturalearth

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

// Errors returned by this package.
var (
	ErrNoIndex    = errors.New("naturalearth: layer file has no spatial index")
	ErrNoFeatures = errors.New("naturalearth: no features ingested from any layer")
)

// Property columns read from the layers. Everything else is skipped.
const (
	colAdmin  = "ADMIN"
	colISOA3  = "ADM0_A3"
	idPrefix  = "ADMIN="
	fgbSuffix = ".fgb"
)

// Layer ties one FlatGeobuf file to the resolution tier it feeds.
type Layer struct {
	Path       string
	Name       string // layer name recorded in sourceMetadata
	Resolution world.Resolution
}

// Layers builds the layer list from the three admin-0 file paths. Empty
// paths are allowed and drop that tier. Layer names derive from the file
// name, e.g. ne_50m_admin_0_countries.fgb -> ne_50m_admin_0_countries.
func Layers(low, medium, high string) []Layer {
	var out []Layer
	for _, l := range []struct {
		path string
		res  world.Resolution
	}{
		{low, world.LowRes},
		{medium, world.MediumRes},
		{high, world.HighRes},
	} {
		if l.path == "" {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(l.path), fgbSuffix)
		out = append(out, Layer{Path: l.path, Name: name, Resolution: l.res})
	}
	return out
}

// feature is one decoded country polygon from a layer.
type feature struct {
	code string // ADM0_A3
	name string // ADMIN
	geom orb.Geometry
}

// Ingest reads every layer and assembles the dataset. A layer that cannot
// be read is reported and skipped, the way the original export tolerated
// missing QGIS layers; only a run that produces nothing at all fails.
func Ingest(layers []Layer, log *slog.Logger) (*world.Dataset, error) {
	if log == nil {
		log = slog.Default()
	}

	ds := &world.Dataset{Regions: world.NewRegionMap()}
	for _, layer := range layers {
		feats, err := readLayer(layer.Path)
		if err != nil {
			log.Error("skipping unreadable layer", "layer", layer.Name, "err", err)
			continue
		}
		log.Info("ingesting layer", "layer", layer.Name, "features", len(feats))
		assemble(ds, layer, feats, log)
	}

	prune(ds, log)
	if ds.Regions.Len() == 0 {
		return nil, ErrNoFeatures
	}
	return ds, nil
}

// assemble merges one layer's features into the dataset under their ISO-3
// codes. Codeless or geometry-less features cannot be grouped and are
// dropped.
func assemble(ds *world.Dataset, layer Layer, feats []feature, log *slog.Logger) {
	for _, f := range feats {
		if f.code == "" {
			continue
		}
		if f.geom == nil {
			log.Warn("no geometry for feature", "layer", layer.Name, "admin", f.name)
			continue
		}

		r, ok := ds.Regions.Get(f.code)
		if !ok {
			r = &world.Region{RegionName: f.name, Areas: &world.AreaSet{}}
			ds.Regions.Set(f.code, r)
		}
		if r.Areas == nil {
			r.Areas = &world.AreaSet{}
		}
		r.Areas.Set(layer.Resolution, &world.Area{
			AreaWKT: wkt.MarshalString(f.geom),
			SourceMetadata: &world.SourceMetadata{
				LayerName:        layer.Name,
				EntityIdentifier: idPrefix + f.name,
			},
		})
	}
}

// prune removes regions that ended up with no areas in any tier.
func prune(ds *world.Dataset, log *slog.Logger) {
	kept := world.NewRegionMap()
	for _, code := range ds.Regions.Codes() {
		r, _ := ds.Regions.Get(code)
		if r.Areas.Empty() {
			log.Warn("removing region with no valid geometries", "region", code)
			continue
		}
		kept.Set(code, r)
	}
	ds.Regions = kept
}

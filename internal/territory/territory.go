// Package territory resolves a curated list of territory display names
// against an exported countries dataset. Matched names keep the country's
// code and geometry; unmatched names become placeholder entries under a
// generated key so they can be filled in by hand later.
package territory

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

// Placeholder layer names stamped on unmatched entries, one per tier.
var placeholderLayers = map[world.Resolution]string{
	world.LowRes:    "ne_110m_admin_0_countries",
	world.MediumRes: "ne_50m_admin_0_countries",
	world.HighRes:   "ne_10m_admin_0_countries",
}

// LoadNames reads one territory name per line, skipping blank lines.
func LoadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names, sc.Err()
}

// Match builds a dataset containing one region per territory name. Matching
// against country display names is case-insensitive. Matched entries copy
// the country's areas, keeping only tiers with actual geometry; a match
// whose areas are all blank is dropped. Unmatched names get a UUID key and
// empty placeholder areas. The result is sorted: country codes first, then
// the generated keys.
func Match(names []string, countries *world.Dataset, log *slog.Logger) *world.Dataset {
	if log == nil {
		log = slog.Default()
	}

	byName := make(map[string]string, countries.Regions.Len())
	for _, code := range countries.Regions.Codes() {
		r, _ := countries.Regions.Get(code)
		if r.RegionName != "" {
			byName[strings.ToLower(r.RegionName)] = code
		}
	}

	out := &world.Dataset{
		CommonTerritories: countries.CommonTerritories,
		Regions:           world.NewRegionMap(),
	}

	for _, name := range names {
		code, ok := byName[strings.ToLower(name)]
		if !ok {
			key := uuid.NewString()
			out.Regions.Set(key, placeholder(name))
			log.Info("no match", "territory", name, "key", key)
			continue
		}

		r, _ := countries.Regions.Get(code)
		areas := keepValidAreas(r.Areas)
		if areas.Empty() {
			log.Warn("skipping match with no valid geometries", "territory", name, "region", code)
			continue
		}
		out.Regions.Set(code, &world.Region{RegionName: r.RegionName, Areas: areas})
		log.Info("matched", "territory", name, "region", code)
	}

	out.Regions.Sort()
	return out
}

// keepValidAreas copies the tiers that carry non-blank WKT.
func keepValidAreas(src *world.AreaSet) *world.AreaSet {
	out := &world.AreaSet{}
	for _, res := range world.Resolutions {
		a := src.Get(res)
		if a == nil || strings.TrimSpace(a.AreaWKT) == "" {
			continue
		}
		out.Set(res, a)
	}
	return out
}

// placeholder builds an empty-geometry region entry for an unmatched name.
func placeholder(name string) *world.Region {
	areas := &world.AreaSet{}
	for _, res := range world.Resolutions {
		areas.Set(res, &world.Area{
			SourceMetadata: &world.SourceMetadata{
				LayerName:        placeholderLayers[res],
				EntityIdentifier: "ADMIN=",
			},
		})
	}
	return &world.Region{RegionName: name, Areas: areas}
}

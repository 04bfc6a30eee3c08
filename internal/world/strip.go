package world

// HighResOnly derives a dataset that keeps only each region's high-res
// area. Regions left without any area are dropped, matching the cleanup the
// exporter applies to regions with no usable geometry.
func HighResOnly(ds *Dataset) *Dataset {
	out := &Dataset{
		CommonTerritories: ds.CommonTerritories,
		Regions:           NewRegionMap(),
		Width:             ds.Width,
		Height:            ds.Height,
	}
	for _, code := range ds.Regions.Codes() {
		r, _ := ds.Regions.Get(code)
		hi := r.Areas.Get(HighRes)
		if hi == nil {
			continue
		}
		out.Regions.Set(code, &Region{
			RegionName:      r.RegionName,
			Areas:           &AreaSet{HighRes: hi},
			DisputedRegions: r.DisputedRegions,
		})
	}
	return out
}

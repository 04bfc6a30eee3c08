// svg-build converts a dev-form world dataset (raw WKT areas) into the
// prod-form dataset: one shared projection fitted to every high-res
// geometry, one SVG path per qualifying region, canvas size stamped on the
// output.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/logging"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/projector"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

func main() {
	_ = godotenv.Load(".env")
	log := logging.Setup()

	in := flag.String("in", "world.json", "dev-form dataset to convert")
	out := flag.String("out", "world.prod.json", "prod-form output file")
	resolutions := flag.String("resolutions", string(world.MediumRes), "comma-separated resolution tiers to emit")
	width := flag.Float64("width", projector.CanvasWidth, "output canvas width")
	height := flag.Float64("height", projector.CanvasHeight, "output canvas height")
	inspect := flag.String("inspect", "", "optional GeoJSON dump of the projected geometries")
	flag.Parse()

	resList, err := parseResolutions(*resolutions)
	if err != nil {
		log.Error("bad -resolutions", "err", err)
		os.Exit(1)
	}

	ds, err := world.Load(*in)
	if err != nil {
		log.Error("load failed", "file", *in, "err", err)
		os.Exit(1)
	}

	proj, err := projector.FitDataset(ds, *width, *height, log)
	if err != nil {
		log.Error("projection fit failed", "err", err)
		os.Exit(1)
	}

	opts := &projector.Options{Width: *width, Height: *height, Resolutions: resList, Logger: log}
	prod := projector.Convert(ds, proj, opts)

	if err := world.Save(*out, prod); err != nil {
		log.Error("save failed", "file", *out, "err", err)
		os.Exit(1)
	}
	log.Info("converted", "regions", prod.Regions.Len(), "out", *out)

	if *inspect != "" {
		fc := projector.Inspect(ds, proj, resList[0])
		data, err := json.Marshal(fc)
		if err == nil {
			err = os.WriteFile(*inspect, data, 0o644)
		}
		if err != nil {
			log.Error("inspect dump failed", "file", *inspect, "err", err)
			os.Exit(1)
		}
		log.Info("inspect dump written", "file", *inspect, "features", len(fc.Features))
	}
}

func parseResolutions(s string) ([]world.Resolution, error) {
	var out []world.Resolution
	for _, part := range strings.Split(s, ",") {
		res, err := world.ParseResolution(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

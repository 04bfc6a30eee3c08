// territory-match resolves a territory-names file against an exported
// countries dataset, producing a sorted dataset of matched regions plus
// placeholder entries for names that could not be resolved.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/logging"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/territory"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

func main() {
	_ = godotenv.Load(".env")
	log := logging.Setup()

	names := flag.String("names", "", "territory names file, one name per line")
	countries := flag.String("countries", "world.json", "countries dataset to match against")
	out := flag.String("out", "matched_territories.json", "output file")
	flag.Parse()

	if *names == "" {
		log.Error("missing -names")
		os.Exit(1)
	}

	list, err := territory.LoadNames(*names)
	if err != nil {
		log.Error("names load failed", "file", *names, "err", err)
		os.Exit(1)
	}
	ds, err := world.Load(*countries)
	if err != nil {
		log.Error("countries load failed", "file", *countries, "err", err)
		os.Exit(1)
	}

	matched := territory.Match(list, ds, log)
	if err := world.Save(*out, matched); err != nil {
		log.Error("save failed", "file", *out, "err", err)
		os.Exit(1)
	}
	log.Info("matched territories written", "territories", len(list), "regions", matched.Regions.Len(), "out", *out)
}

// region-sort rewrites a world dataset with its region keys in canonical
// order: 3-character codes first (alphabetical), composite keys after
// (alphabetical).
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/logging"
	"github.com/helitopia/ultimate-geography-interactive-map-json/internal/world"
)

func main() {
	_ = godotenv.Load(".env")
	log := logging.Setup()

	file := flag.String("file", "world.json", "dataset to sort")
	out := flag.String("out", "", "output file (default: rewrite in place)")
	flag.Parse()

	ds, err := world.Load(*file)
	if err != nil {
		log.Error("load failed", "file", *file, "err", err)
		os.Exit(1)
	}

	ds.Regions.Sort()

	dest := *out
	if dest == "" {
		dest = *file
	}
	if err := world.Save(dest, ds); err != nil {
		log.Error("save failed", "file", dest, "err", err)
		os.Exit(1)
	}
	log.Info("sorted", "regions", ds.Regions.Len(), "out", dest)
}

// Command generate renders the unit tables of package dnf.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/damedic/dnf-toolbox-go/internal/generate"
)

func main() {
	unitsPath := flag.String("units", "internal/generate/units.yaml", "unit table source")
	out := flag.String("out", "dnf/units_gen.go", "output file")
	flag.Parse()

	log.Println("reading unit tables...")
	file, err := os.Open(*unitsPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	src, err := generate.ReadUnits(file)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("generating code...")
	if err := generate.GenerateUnits(src).Save(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}

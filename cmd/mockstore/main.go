package main

import (
	"flag"
	"log"
	"os"

	"github.com/dmitrijs2005/mymoney/internal/buildinfo"
	"github.com/dmitrijs2005/mymoney/internal/mockstore"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	addr := flag.String("addr", ":3000", "address to listen on")
	seed := flag.String("seed", "", "optional JSON file with initial collections")
	flag.Parse()

	srv := mockstore.NewServer()
	if *seed != "" {
		if err := srv.LoadSeed(*seed); err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Printf("seeded collections from %s", *seed)
	}

	log.Printf("mock store listening on %s", *addr)
	if err := srv.Router().Run(*addr); err != nil {
		log.Fatalf("%v", err)
	}
}

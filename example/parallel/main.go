package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to process (.gz permitted)")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of workers to split the trait-subset loop across")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	ped, err := heredity.OpenPedigree(*path)
	if err != nil {
		log.Fatalln(err)
	}

	// Each worker maintains its own accumulator, merged at the end, since
	// accumulation is commutative and associative.
	log.Println("Launching", *workers, "workers over", ped.Len(), "individuals")

	start := time.Now()
	marginals, err := heredity.InferParallel(ped, heredity.DefaultProbabilityModel(), *workers)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Enumeration finished in", time.Since(start))

	fmt.Print(marginals)
}

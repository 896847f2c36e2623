package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bonimy/FMV2FM2/fmv"
	"github.com/bonimy/FMV2FM2/framedump"
	log "github.com/sirupsen/logrus"
)

func main() {
	frameLimit := flag.Int("frame-limit", 0, "The number of frames to print.  If this is 0, then the whole movie will be printed.")

	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Printf("Missing filename.\n")
		os.Exit(1)
	}
	if len(flag.Args()) > 1 {
		fmt.Printf("Too many arguments.\n")
		os.Exit(1)
	}
	filename := flag.Args()[0]

	log.Infof("Frame limit: %d", *frameLimit)
	log.Infof("Filename: %s", filename)

	handle, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Could not open file '%s': %v\n", filename, err)
		os.Exit(1)
	}

	info, err := fmv.ParseReader(handle, false)
	if err != nil {
		fmt.Printf("Could not parse file: %v\n", err)
		os.Exit(1)
	}
	handle.Close()

	err = framedump.Print(info, *frameLimit)
	if err != nil {
		fmt.Printf("Could not print frames: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/bonimy/FMV2FM2/fmv"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Missing filename.\n")
		os.Exit(1)
	}
	filename := os.Args[1]

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

	fmt.Printf("Emulator: %s\n", info.EmulatorID)
	fmt.Printf("Title: %s\n", info.Title)
	fmt.Printf("Rerecords: %d\n", info.RerecordCount)

	ports := info.ActivePorts()
	fmt.Printf("Controllers: (%d)\n", len(ports))
	for i, port := range ports {
		fmt.Printf("   %d. port %d\n", i, port)
	}
	fmt.Printf("Frames: %d\n", info.FrameCount())

	//spew.Dump(info)
}

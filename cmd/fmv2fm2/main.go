package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bonimy/FMV2FM2/fm2"
	"github.com/bonimy/FMV2FM2/fmv"
	"github.com/bonimy/FMV2FM2/framedump"
	"github.com/bonimy/FMV2FM2/movieconv"
	"github.com/bonimy/FMV2FM2/nesrom"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	debugValue := false

	var rootCommand = &cobra.Command{
		Use:   "fmv2fm2",
		Short: "Famtasia movie file converter",
		Long: `
This tool converts Famtasia movie recordings (typically with the extension ".fmv") into FCEUX movie files (".fm2").
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugValue {
				logrus.SetLevel(logrus.DebugLevel)
				fmv.SetLogLevel(logrus.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
			os.Exit(1)
		},
	}
	rootCommand.PersistentFlags().BoolVar(&debugValue, "debug", false, "Enable debug output")

	{
		outputValue := ""
		var convertCommand = &cobra.Command{
			Use:   "convert <movie.fmv> <rom.nes> [output.fm2]",
			Short: "Convert an FMV movie to an FM2 movie",
			Long: `
The ROM file is the game the movie was recorded against; its checksum is embedded in the output so that FCEUX can match the movie to the right game.

If no output file is given, the movie is written next to the input with the extension replaced by ".fm2".
`,
			Args: cobra.RangeArgs(2, 3),
			Run: func(cmd *cobra.Command, args []string) {
				movieFilename := args[0]
				romFilename := args[1]

				destinationFilename := ""
				if len(args) == 3 {
					destinationFilename = args[2]
				}
				if outputValue != "" {
					destinationFilename = outputValue
				}
				if destinationFilename == "" {
					destinationFilename = strings.TrimSuffix(movieFilename, path.Ext(movieFilename)) + ".fm2"
				}

				romChecksum, err := nesrom.ChecksumFile(romFilename)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				logrus.Debugf("ROM checksum: base64:%s", romChecksum)

				info, err := parseFilename(movieFilename, false)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}

				movie, err := movieconv.MakeMovie(info, path.Base(romFilename), romChecksum)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}

				fmt.Printf("Converting %d frames...\n", movie.FrameCount())

				pendingFile, err := renameio.NewPendingFile(destinationFilename)
				if err != nil {
					panic(fmt.Sprintf("Couldn't create output file: %v", err))
				}
				defer pendingFile.Cleanup()
				err = fm2.Write(pendingFile, movie)
				if err != nil {
					panic(err)
				}
				err = pendingFile.CloseAtomicallyReplace()
				if err != nil {
					panic(err)
				}
				fmt.Printf("-> %s\n", destinationFilename)
			},
		}
		convertCommand.Flags().StringVar(&outputValue, "output", "", "The output file; overrides the positional output argument")
		rootCommand.AddCommand(convertCommand)
	}

	{
		dumpValue := false
		headerOnlyValue := false
		var infoCommand = &cobra.Command{
			Use:   "info <movie.fmv> [...]",
			Short: "Show the information from the given file(s)",
			Long: `
The output here isn't particularly pretty, but it should be enough for you to do whatever you need to do with the files.

For a more aggressive output, use the --dump flag.
`,
			Args: cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				for _, filename := range args {
					fmt.Printf("File: %s\n", filename)
					info, err := parseFilename(filename, headerOnlyValue)
					if err != nil {
						fmt.Printf("Error: %v\n", err)
						continue
					}
					printFileInfo(info)

					if dumpValue {
						spew.Dump(info)
					}
				}
			},
		}
		infoCommand.Flags().BoolVar(&dumpValue, "dump", false, "Dump out everything about the file")
		infoCommand.Flags().BoolVar(&headerOnlyValue, "header-only", false, "Only read the header data")
		rootCommand.AddCommand(infoCommand)
	}

	{
		var frameLimit int
		var debugCommand = &cobra.Command{
			Use:   "debug <movie.fmv>",
			Short: "Show the frame-by-frame input from the given file",
			Long: `
The output here isn't particularly pretty, but it should be enough for you to see what every controller is doing on every frame.
`,
			Args: cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				filename := args[0]

				fmt.Printf("File: %s\n", filename)
				info, err := parseFilename(filename, false /*headerOnly*/)
				if err != nil {
					panic(fmt.Sprintf("Error: %v\n", err))
				}

				fmt.Printf("Buttons: %s\n", strings.Join(fmv.ButtonNames[:], ", "))
				err = framedump.Print(info, frameLimit)
				if err != nil {
					panic(err)
				}
			},
		}
		debugCommand.Flags().IntVar(&frameLimit, "frame-limit", 120, "The number of frames to print; use 0 for no limit")
		rootCommand.AddCommand(debugCommand)
	}

	{
		var checksumCommand = &cobra.Command{
			Use:   "checksum <rom.nes> [...]",
			Short: "Show the movie checksum for the given ROM(s)",
			Long: `
This prints the exact value that "convert" embeds in the romChecksum header line.
`,
			Args: cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				for _, filename := range args {
					sum, err := nesrom.ChecksumFile(filename)
					if err != nil {
						fmt.Printf("Error: %v\n", err)
						continue
					}
					fmt.Printf("base64:%s  %s\n", sum, filename)
				}
			},
		}
		rootCommand.AddCommand(checksumCommand)
	}

	err := rootCommand.Execute()
	if err != nil {
		panic(err)
	}
	os.Exit(0)
}

// parseFilename parses the given file and returns a `FileInfo` instance.
func parseFilename(filename string, headerOnly bool) (*fmv.FileInfo, error) {
	handle, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Could not open file '%s': %v\n", filename, err)
		return nil, err
	}
	defer handle.Close()

	info, err := fmv.ParseReader(handle, headerOnly)
	if err != nil {
		fmt.Printf("Could not parse file: %v\n", err)
		return nil, err
	}

	return info, nil
}

// printFileInfo prints out the information about the file.
func printFileInfo(info *fmv.FileInfo) {
	fmt.Printf("Emulator: %s\n", info.EmulatorID)
	fmt.Printf("Title: %s\n", info.Title)
	fmt.Printf("Rerecords: %d\n", info.RerecordCount)

	ports := info.ActivePorts()
	fmt.Printf("Controllers: (%d)\n", len(ports))
	for i, port := range ports {
		fmt.Printf("   %d. port %d\n", i, port)
	}
	fmt.Printf("Bytes per frame: %d\n", info.BytesPerFrame)
	fmt.Printf("Frames: %d\n", info.FrameCount())

	fmt.Printf("Unknown file header data:\n")
	spew.Dump(info.Unknown1)
	spew.Dump(info.Unknown2)
}

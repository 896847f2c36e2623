package fm2

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	version "github.com/hashicorp/go-version"
)

// fceuxRelease is the FCEUX release whose movie dialect we emit.
var fceuxRelease = version.Must(version.NewVersion("2.2.2"))

// emuVersion flattens the FCEUX release into the numeric form the emulator
// stamps into its own movie files (2.2.2 becomes 22020).
func emuVersion() int {
	segments := fceuxRelease.Segments()
	return segments[0]*10000 + segments[1]*1000 + segments[2]*10
}

// Write writes an FM2 movie: the ASCII header lines in FCEUX's fixed key
// order, a single '|' boundary byte, then the raw input body verbatim.
//
// Only binary-body movies can be written; a movie with Binary unset fails
// with ErrTextLogUnsupported before anything reaches the writer.
func Write(writer io.Writer, movie *Movie) error {
	if !movie.Binary {
		return ErrTextLogUnsupported
	}

	// Stage the header in memory so a failure leaves the destination
	// untouched.
	buffer := new(bytes.Buffer)

	fmt.Fprintf(buffer, "version %d\n", movie.Version)
	// FCEUX stamps its own release number here, not whatever the movie
	// was carrying.
	fmt.Fprintf(buffer, "emuVersion %d\n", emuVersion())
	fmt.Fprintf(buffer, "rerecordCount %d\n", movie.RerecordCount)
	fmt.Fprintf(buffer, "palFlag %d\n", boolFlag(movie.PalFlag))
	fmt.Fprintf(buffer, "NewPPU %d\n", boolFlag(movie.NewPPU))
	fmt.Fprintf(buffer, "FDS %d\n", boolFlag(movie.FDS))
	fmt.Fprintf(buffer, "fourscore %d\n", boolFlag(movie.Fourscore))
	fmt.Fprintf(buffer, "port0 %d\n", movie.Port0)
	fmt.Fprintf(buffer, "port1 %d\n", movie.Port1)
	fmt.Fprintf(buffer, "port2 %d\n", movie.Port2)
	fmt.Fprintf(buffer, "binary %d\n", boolFlag(movie.Binary))
	fmt.Fprintf(buffer, "length %d\n", movie.FrameCount())
	fmt.Fprintf(buffer, "romFilename %s\n", movie.ROMFilename)
	//for _, comment := range movie.Comments {
	//	fmt.Fprintf(buffer, "comment %s %s\n", comment.Subject, comment.Content)
	//}
	for _, subtitle := range movie.Subtitles {
		fmt.Fprintf(buffer, "subtitle %d %s\n", subtitle.Frame, subtitle.Content)
	}
	fmt.Fprintf(buffer, "guid %s\n", strings.ToUpper(movie.GUID.String()))
	fmt.Fprintf(buffer, "romChecksum base64:%s\n", movie.ROMChecksum)
	buffer.WriteString("savestate 0\n")
	buffer.WriteByte('|')

	if _, err := writer.Write(buffer.Bytes()); err != nil {
		return err
	}
	if _, err := writer.Write(movie.Input); err != nil {
		return err
	}
	return nil
}

// boolFlag renders a boolean the way FM2 headers spell them.
func boolFlag(value bool) int {
	if value {
		return 1
	}
	return 0
}

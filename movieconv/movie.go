package movieconv

import (
	"fmt"

	"github.com/bonimy/FMV2FM2/fm2"
	"github.com/bonimy/FMV2FM2/fmv"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// fm2Version is the movie file format revision that FCEUX 2.2.2 writes.
const fm2Version = 3

// MakeMovie creates an `fm2.Movie` instance based on this `fmv.FileInfo`
// one.
//
// The ROM filename and checksum identify the game the movie was recorded
// against; the checksum is expected in base64 form, see the nesrom package.
func MakeMovie(info *fmv.FileInfo, romFilename string, romChecksum string) (*fm2.Movie, error) {
	if info.BytesPerFrame == 0 && len(info.FrameData) > 0 {
		return nil, fmt.Errorf("%w: %d bytes of frame data", fmv.ErrNoControllers, len(info.FrameData))
	}

	movie := &fm2.Movie{
		Version:       fm2Version,
		EmuVersion:    22020, // FCEUX 2.2.2
		RerecordCount: int(info.RerecordCount) + 1,
		Binary:        true,
		Port0:         portDevice(info.Ports[0]),
		Port1:         portDevice(info.Ports[1]),
		Port2:         fm2.PortNone, // the expansion port is never populated
		ROMFilename:   romFilename,
		ROMChecksum:   romChecksum,
		GUID:          uuid.New(),
	}

	if info.EmulatorID != "" {
		movie.Comments = append(movie.Comments, fm2.Comment{Subject: "emuOrigin", Content: info.EmulatorID})
	}
	if info.Title != "" {
		movie.Comments = append(movie.Comments, fm2.Comment{Subject: "movieTitle", Content: info.Title})
	}

	frameCount := info.FrameCount()
	logrus.Debugf("Frames: %d", frameCount)
	logrus.Debugf("Bytes per frame: %d", info.BytesPerFrame)

	movie.Input = make([]byte, 0, frameCount*(1+info.BytesPerFrame))
	for frame := 0; frame < frameCount; frame++ {
		movie.Input = append(movie.Input, 0x00) // command byte
		for _, value := range info.Frame(frame) {
			movie.Input = append(movie.Input, RemapButtons(value))
		}
	}

	//spew.Dump(movie)

	return movie, nil
}

// portDevice maps a recorded FMV controller port to the FM2 device code.
func portDevice(active bool) byte {
	if active {
		return fm2.PortGamepad
	}
	return fm2.PortNone
}

package fm2

import (
	"github.com/google/uuid"
)

// Movie is an FM2 movie: an ASCII key/value header followed by one binary
// input record per emulated frame.
type Movie struct {
	Version       int
	EmuVersion    int
	RerecordCount int
	PalFlag       bool
	NewPPU        bool
	FDS           bool
	Fourscore     bool
	Port0         byte
	Port1         byte
	Port2         byte
	Binary        bool
	ROMFilename   string
	ROMChecksum   string
	GUID          uuid.UUID
	Comments      []Comment
	Subtitles     []Subtitle
	Input         []byte
}

// These are the controller-port device codes.
const (
	PortNone    byte = 0
	PortGamepad byte = 1
)

// FrameRecordSize returns the byte length of a single frame record: one
// command byte plus one byte for every connected port.
func (m *Movie) FrameRecordSize() int {
	size := 1
	for _, port := range []byte{m.Port0, m.Port1, m.Port2} {
		if port == PortGamepad {
			size++
		}
	}
	return size
}

// FrameCount returns the number of frame records in the input body.
func (m *Movie) FrameCount() int {
	return len(m.Input) / m.FrameRecordSize()
}

// Comment is a free-form header annotation.  Comments ride along on the
// movie but are not written out; see Write.
type Comment struct {
	Subject string
	Content string
}

// Subtitle is a message displayed during playback starting at a frame.
type Subtitle struct {
	Frame   int
	Content string
}

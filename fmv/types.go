package fmv

// FileInfo contains all of the information from an FMV movie file.
type FileInfo struct {
	Flags         byte   // flag byte at offset 0x04; bit 0x80 marks a savestate-anchored movie
	InputMode     byte   // input-mode byte at offset 0x05; the top three bits select the recorded ports
	Unknown1      []byte // offsets 0x06-0x09
	RerecordCount uint32 // times the session was rewound during recording, as stored
	Unknown2      []byte // offsets 0x0E-0x0F
	EmulatorID    string // emulator that produced the movie, from the fixed-width field at 0x10
	Title         string // movie title, from the fixed-width field at 0x50
	Ports         [3]bool
	BytesPerFrame int
	FrameData     []byte // packed controller bytes, BytesPerFrame per frame, Famtasia bit order
}

// ButtonNames gives the meaning of each controller bit in a frame byte.
// Famtasia packs the pad as (bit 0 to bit 7): right, left, up, down, B, A,
// select, start.
var ButtonNames = [8]string{"right", "left", "up", "down", "B", "A", "select", "start"}

// ButtonLetters is the single-letter form of ButtonNames used when rendering
// frame data ('T' is start, 'S' is select).
var ButtonLetters = [8]byte{'R', 'L', 'U', 'D', 'B', 'A', 'S', 'T'}

package fmv

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMovie assembles an FMV file image with the given input mode and the
// frame data appended after the fixed header.
func buildMovie(inputMode byte, frameData []byte) []byte {
	data := make([]byte, HeaderSize)
	copy(data, signature)
	data[0x05] = inputMode
	return append(data, frameData...)
}

func TestParseReader(t *testing.T) {
	data := buildMovie(0xC0, []byte{0x01, 0x02, 0x03, 0x04})
	copy(data[0x06:0x0A], []byte{0xDE, 0xAD, 0xBE, 0xEF})
	binary.LittleEndian.PutUint32(data[0x0A:0x0E], 41)
	copy(data[0x0E:0x10], []byte{0xCA, 0xFE})
	copy(data[0x10:], "FAMTASIA - v5.1")
	copy(data[0x50:], "lost levels in 8:19")

	info, err := ParseReader(bytes.NewReader(data), false)
	require.NoError(t, err)

	want := &FileInfo{
		InputMode:     0xC0,
		Unknown1:      []byte{0xDE, 0xAD, 0xBE, 0xEF},
		RerecordCount: 41,
		Unknown2:      []byte{0xCA, 0xFE},
		EmulatorID:    "FAMTASIA - v5.1",
		Title:         "lost levels in 8:19",
		Ports:         [3]bool{true, true, false},
		BytesPerFrame: 2,
		FrameData:     []byte{0x01, 0x02, 0x03, 0x04},
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("FileInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReaderHeaderOnly(t *testing.T) {
	data := buildMovie(0x80, []byte{0x01, 0x02, 0x03})
	copy(data[0x10:], "FAMTASIA")

	info, err := ParseReader(bytes.NewReader(data), true)
	require.NoError(t, err)

	assert.Equal(t, "FAMTASIA", info.EmulatorID)
	assert.Equal(t, 1, info.BytesPerFrame)
	assert.Nil(t, info.FrameData)
	assert.Equal(t, 0, info.FrameCount())
}

func TestParseReaderTruncatedHeader(t *testing.T) {
	data := buildMovie(0x80, []byte{0x00, 0x01})

	for length := 0; length < HeaderSize; length++ {
		_, err := ParseReader(bytes.NewReader(data[:length]), false)
		require.ErrorIsf(t, err, ErrTruncatedHeader, "length %d", length)
	}
}

func TestParseReaderInputMode(t *testing.T) {
	tests := []struct {
		name          string
		inputMode     byte
		ports         [3]bool
		bytesPerFrame int
	}{
		{"no controllers", 0x00, [3]bool{false, false, false}, 0},
		{"port 1 only", 0x80, [3]bool{true, false, false}, 1},
		{"port 2 only", 0x40, [3]bool{false, true, false}, 1},
		{"port 3 only", 0x20, [3]bool{false, false, true}, 1},
		{"ports 1 and 2", 0xC0, [3]bool{true, true, false}, 2},
		{"ports 1 and 3", 0xA0, [3]bool{true, false, true}, 2},
		{"all three ports", 0xE0, [3]bool{true, true, true}, 3},
		{"low bits are not ports", 0x1F, [3]bool{false, false, false}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseReader(bytes.NewReader(buildMovie(tt.inputMode, nil)), false)
			require.NoError(t, err)
			assert.Equal(t, tt.ports, info.Ports)
			assert.Equal(t, tt.bytesPerFrame, info.BytesPerFrame)
		})
	}
}

func TestParseReaderErrors(t *testing.T) {
	badSignature := buildMovie(0x80, nil)
	copy(badSignature, "NES\x1A")

	nulSignature := buildMovie(0x80, nil)
	copy(nulSignature, "\x00\x00\x00\x00")

	partialSignature := buildMovie(0x80, nil)
	partialSignature[3] = 0x00

	savestate := buildMovie(0x80, nil)
	savestate[0x04] = flagSavestate

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"wrong signature", badSignature, ErrBadSignature},
		{"nul signature", nulSignature, ErrBadSignature},
		{"partial signature", partialSignature, ErrBadSignature},
		{"savestate movie", savestate, ErrSavestateRecording},
		{"frame data without controllers", buildMovie(0x00, []byte{0x00}), ErrNoControllers},
		{"two ports with odd frame data", buildMovie(0xC0, []byte{0x01, 0x02, 0x03}), ErrCorruptFrameData},
		{"three ports with leftover bytes", buildMovie(0xE0, make([]byte, 4)), ErrCorruptFrameData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseReader(bytes.NewReader(tt.data), false)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, info)
		})
	}
}

func TestParseReaderIgnoresOtherFlagBits(t *testing.T) {
	data := buildMovie(0x80, nil)
	data[0x04] = 0x7F

	info, err := ParseReader(bytes.NewReader(data), false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7F), info.Flags)
}

func TestParseReaderEmptyMovie(t *testing.T) {
	// A header with no controllers and no frame data is a valid, empty
	// movie.
	info, err := ParseReader(bytes.NewReader(buildMovie(0x00, nil)), false)
	require.NoError(t, err)
	assert.Equal(t, 0, info.FrameCount())
	assert.Empty(t, info.ActivePorts())
}

package fmv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// HeaderSize is the size of the file header.
const HeaderSize int = 0x90

// signature is the magic at offset 0x00 of every FMV file.
const signature = "FMV\x1A"

// flagSavestate marks a movie recorded from a savestate instead of power-on.
const flagSavestate byte = 0x80

// Sizes of the fixed-width ASCII fields at offsets 0x10 and 0x50.
const (
	emulatorIDLength = 64
	titleLength      = 64
)

// ParseReader parses an FMV movie using an `io.Reader` instance.
//
// With headerOnly set, parsing stops after the fixed header and no frame
// data is read or validated.
func ParseReader(reader io.Reader, headerOnly bool) (*FileInfo, error) {
	buffer := make([]byte, HeaderSize)
	n, err := io.ReadFull(reader, buffer)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: %d of %d bytes", ErrTruncatedHeader, n, HeaderSize)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header: %v", err)
	}

	fileInfo, err := parseFileHeader(bytes.NewReader(buffer))
	if err != nil {
		return nil, err
	}

	if headerOnly {
		return fileInfo, nil
	}

	frameData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("could not read frame data: %v", err)
	}

	logger.Debugf("Frame data: %d bytes", len(frameData))

	if len(frameData) > 0 && fileInfo.BytesPerFrame == 0 {
		return nil, fmt.Errorf("%w: %d bytes of frame data", ErrNoControllers, len(frameData))
	}
	if fileInfo.BytesPerFrame > 0 && len(frameData)%fileInfo.BytesPerFrame != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d per frame",
			ErrCorruptFrameData, len(frameData), fileInfo.BytesPerFrame)
	}
	fileInfo.FrameData = frameData

	logger.Debugf("Frames: %d", fileInfo.FrameCount())

	return fileInfo, nil
}

func parseFileHeader(reader io.Reader) (*FileInfo, error) {
	buffer := make([]byte, len(signature))
	_, err := io.ReadFull(reader, buffer)
	if err != nil {
		return nil, fmt.Errorf("could not read the file type: %v", err)
	}
	if string(buffer) != signature {
		return nil, fmt.Errorf("%w: found %q", ErrBadSignature, buffer)
	}

	fileInfo := &FileInfo{}

	err = binary.Read(reader, binary.LittleEndian, &fileInfo.Flags)
	if err != nil {
		return nil, fmt.Errorf("could not read the flag byte: %v", err)
	}

	logger.Debugf("Flags: %08b", fileInfo.Flags)

	if fileInfo.Flags&flagSavestate != 0 {
		return nil, ErrSavestateRecording
	}

	err = binary.Read(reader, binary.LittleEndian, &fileInfo.InputMode)
	if err != nil {
		return nil, fmt.Errorf("could not read the input mode: %v", err)
	}

	for i := range fileInfo.Ports {
		mask := byte(1) << (7 - i)
		if fileInfo.InputMode&mask != 0 {
			fileInfo.Ports[i] = true
			fileInfo.BytesPerFrame++
		}
	}

	logger.Debugf("Input mode: %08b (%d bytes per frame)", fileInfo.InputMode, fileInfo.BytesPerFrame)

	fileInfo.Unknown1 = make([]byte, 4)
	_, err = io.ReadFull(reader, fileInfo.Unknown1)
	if err != nil {
		return nil, fmt.Errorf("could not read unknown1: %v", err)
	}

	err = binary.Read(reader, binary.LittleEndian, &fileInfo.RerecordCount)
	if err != nil {
		return nil, fmt.Errorf("could not read the rerecord count: %v", err)
	}

	logger.Debugf("Rerecord count: %d", fileInfo.RerecordCount)

	fileInfo.Unknown2 = make([]byte, 2)
	_, err = io.ReadFull(reader, fileInfo.Unknown2)
	if err != nil {
		return nil, fmt.Errorf("could not read unknown2: %v", err)
	}

	buffer = make([]byte, emulatorIDLength)
	_, err = io.ReadFull(reader, buffer)
	if err != nil {
		return nil, fmt.Errorf("could not read the emulator identifier: %v", err)
	}
	fileInfo.EmulatorID = strings.Trim(string(buffer), "\x00")

	logger.Debugf("Emulator: %s", fileInfo.EmulatorID)

	buffer = make([]byte, titleLength)
	_, err = io.ReadFull(reader, buffer)
	if err != nil {
		return nil, fmt.Errorf("could not read the movie title: %v", err)
	}
	fileInfo.Title = strings.Trim(string(buffer), "\x00")

	logger.Debugf("Title: %s", fileInfo.Title)

	return fileInfo, nil
}

package framedump

import (
	"fmt"
	"io"
	"os"

	"github.com/bonimy/FMV2FM2/fmv"
	log "github.com/sirupsen/logrus"
)

// Print renders the movie's frame data to standard output.
func Print(info *fmv.FileInfo, frameLimit int) error {
	return Write(os.Stdout, info, frameLimit)
}

// Write renders one row per frame: the frame index, then for every recorded
// controller port the held buttons (one letter per button, most significant
// bit first, '.' when released) and the raw byte.  A frame limit of zero or
// less renders every frame.
func Write(out io.Writer, info *fmv.FileInfo, frameLimit int) error {
	frameCount := info.FrameCount()
	if frameLimit > 0 && frameLimit < frameCount {
		frameCount = frameLimit
	}

	ports := info.ActivePorts()
	for frame := 0; frame < frameCount; frame++ {
		if _, err := fmt.Fprintf(out, "%6d:", frame); err != nil {
			return err
		}
		for i, value := range info.Frame(frame) {
			if _, err := fmt.Fprintf(out, "  P%d %s 0x%02x", ports[i], buttonField(value), value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	if frameLimit > 0 && frameLimit < info.FrameCount() {
		log.Debugf("Reached the frame limit of %d; ending early.", frameLimit)
	}
	return nil
}

// buttonField spells out one controller byte, bit 7 down to bit 0.
func buttonField(value byte) string {
	field := make([]byte, 8)
	for i := range field {
		bit := 7 - i
		if value&(1<<bit) != 0 {
			field[i] = fmv.ButtonLetters[bit]
		} else {
			field[i] = '.'
		}
	}
	return string(field)
}

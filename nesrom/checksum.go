package nesrom

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// headerSize is the size of the iNES header.
const headerSize = 16

var magic = []byte("NES\x1A")

// Checksum hashes a ROM image the way FCEUX fingerprints the game a movie
// was recorded against: the 16-byte iNES header is skipped and the rest is
// MD5 summed, rendered in base64.
func Checksum(reader io.Reader) (string, error) {
	header := make([]byte, headerSize)
	n, err := io.ReadFull(reader, header)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return "", fmt.Errorf("could not read the iNES header: %d of %d bytes", n, headerSize)
	}
	if err != nil {
		return "", fmt.Errorf("could not read the iNES header: %v", err)
	}
	if !bytes.Equal(header[0:4], magic) {
		logrus.Warnf("Unexpected ROM magic: %q; hashing anyway", header[0:4])
	}

	hash := md5.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", fmt.Errorf("could not read the ROM contents: %v", err)
	}
	return base64.StdEncoding.EncodeToString(hash.Sum(nil)), nil
}

// ChecksumFile hashes the ROM image at the given path.
func ChecksumFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open the file: %v", err)
	}
	defer file.Close()

	return Checksum(file)
}

package rtplan

import (
	"io"
	"os"
)

// dicomMagic is the "DICM" marker following the 128-byte preamble of a
// DICOM Part 10 file.
const dicomMagic = "DICM"

// Detect reports whether the file at path carries a DICOM preamble. It
// reads only the first 132 bytes, making it cheap enough for directory
// scans; a full parse still decides whether the file is an RT plan.
func Detect(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [132]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return false
	}
	return string(header[128:]) == dicomMagic
}

package rtplan

import (
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
	"golang.org/x/text/encoding/charmap"
)

// isoCharmaps maps DICOM single-byte specific character sets to their
// decoders. Multi-byte and code-extension sets pass through undecoded.
var isoCharmaps = map[string]*charmap.Charmap{
	"ISO_IR 100": charmap.ISO8859_1,
	"ISO_IR 101": charmap.ISO8859_2,
	"ISO_IR 109": charmap.ISO8859_3,
	"ISO_IR 110": charmap.ISO8859_4,
	"ISO_IR 144": charmap.ISO8859_5,
	"ISO_IR 127": charmap.ISO8859_6,
	"ISO_IR 126": charmap.ISO8859_7,
	"ISO_IR 138": charmap.ISO8859_8,
	"ISO_IR 148": charmap.ISO8859_9,
}

// textDecoder returns a decoder for identity strings based on the
// dataset's SpecificCharacterSet. The default repertoire and unrecognized
// sets decode as-is.
func textDecoder(elems []*dicom.Element) func(string) string {
	cs, ok := findString(elems, tag.SpecificCharacterSet)
	if !ok {
		return identity
	}
	cm, ok := isoCharmaps[cs]
	if !ok {
		return identity
	}
	return func(s string) string {
		out, err := cm.NewDecoder().String(s)
		if err != nil {
			return s
		}
		return out
	}
}

func identity(s string) string { return s }

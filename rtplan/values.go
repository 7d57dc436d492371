package rtplan

import (
	"strconv"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// find returns the element with tag t, or nil.
func find(elems []*dicom.Element, t tag.Tag) *dicom.Element {
	for _, el := range elems {
		if el.Tag == t {
			return el
		}
	}
	return nil
}

// seqItems returns the item element lists of a sequence element.
func seqItems(el *dicom.Element) [][]*dicom.Element {
	if el == nil {
		return nil
	}
	items, ok := el.Value.GetValue().([]*dicom.SequenceItemValue)
	if !ok {
		return nil
	}
	out := make([][]*dicom.Element, 0, len(items))
	for _, item := range items {
		if elems, ok := item.GetValue().([]*dicom.Element); ok {
			out = append(out, elems)
		}
	}
	return out
}

// nestedSeq returns the items of the sequence with tag t, or nil.
func nestedSeq(elems []*dicom.Element, t tag.Tag) [][]*dicom.Element {
	return seqItems(find(elems, t))
}

// findString returns the first value of tag t as a trimmed string.
func findString(elems []*dicom.Element, t tag.Tag) (string, bool) {
	el := find(elems, t)
	if el == nil {
		return "", false
	}
	if v, ok := el.Value.GetValue().([]string); ok && len(v) > 0 {
		return strings.TrimSpace(v[0]), true
	}
	return "", false
}

// findInt returns the first value of tag t as an int. Integer string (IS)
// values arrive as ints or decimal strings depending on the writer.
func findInt(elems []*dicom.Element, t tag.Tag) (int, bool) {
	el := find(elems, t)
	if el == nil {
		return 0, false
	}
	switch v := el.Value.GetValue().(type) {
	case []int:
		if len(v) > 0 {
			return v[0], true
		}
	case []string:
		if len(v) > 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(v[0])); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// findFloat returns the first value of tag t as a float64.
func findFloat(elems []*dicom.Element, t tag.Tag) (float64, bool) {
	vals, ok := findFloats(elems, t)
	if !ok || len(vals) == 0 {
		return 0, false
	}
	return vals[0], true
}

// findFloats returns all values of tag t as float64s. Decimal-string (DS)
// values arrive as strings and are parsed; unparseable entries discard
// the whole tag.
func findFloats(elems []*dicom.Element, t tag.Tag) ([]float64, bool) {
	el := find(elems, t)
	if el == nil {
		return nil, false
	}
	switch v := el.Value.GetValue().(type) {
	case []float64:
		return v, true
	case []string:
		out := make([]float64, 0, len(v))
		for _, s := range v {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	case []int:
		out := make([]float64, 0, len(v))
		for _, n := range v {
			out = append(out, float64(n))
		}
		return out, true
	}
	return nil, false
}

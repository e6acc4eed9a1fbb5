package platform

// TextRange represents a range of text in UTF-16 code units, matching the
// native widget's range representation.
type TextRange struct {
	Start int
	End   int
}

// IsEmpty returns true if the range has zero length.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if both start and end are non-negative.
func (r TextRange) IsValid() bool {
	return r.Start >= 0 && r.End >= 0
}

// IsNormalized returns true if start <= end.
func (r TextRange) IsNormalized() bool {
	return r.Start <= r.End
}

// Length returns the number of code units covered by the range.
func (r TextRange) Length() int {
	return r.End - r.Start
}

// TextRangeEmpty is an invalid/empty text range.
var TextRangeEmpty = TextRange{Start: -1, End: -1}

// translateNativeRange converts the native {location, length} range
// representation into a TextRange. Returns false when the native values are
// missing, negative, non-integral, or overflow — callers must treat that as
// a denial, never as an open range.
func translateNativeRange(args map[string]any) (TextRange, bool) {
	location, ok := toInt(args["location"])
	if !ok || location < 0 {
		return TextRangeEmpty, false
	}
	length, ok := toInt(args["length"])
	if !ok || length < 0 {
		return TextRangeEmpty, false
	}
	end := location + length
	if end < location {
		return TextRangeEmpty, false
	}
	return TextRange{Start: location, End: end}, true
}

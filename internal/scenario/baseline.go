package scenario

// ReferenceBaseline returns the six-month static sample series used when a
// caller has no baseline of its own. A fresh copy is returned on every call.
func ReferenceBaseline() Series {
	return Series{
		NewRecord("Jan", 1200, 1100, 300, 550000),
		NewRecord("Feb", 1350, 1250, 200, 635000),
		NewRecord("Mar", 1100, 1200, 300, 615000),
		NewRecord("Apr", 1400, 1350, 250, 687500),
		NewRecord("May", 1500, 1450, 200, 735000),
		NewRecord("Jun", 1300, 1400, 300, 715000),
	}
}

// Clone returns a deep copy of s. Decimal values are immutable, so copying
// the records is sufficient.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Labels returns the period labels in order.
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, r := range s {
		labels[i] = r.Label
	}
	return labels
}

package notation

import "slices"

// Copy rebuilds an equivalent tree that shares no backing arrays with c.
func Copy(c Column) Column {
	switch v := c.(type) {
	case Rest:
		return v
	case Note:
		return v
	case Chord:
		return Chord{value: v.value, pitches: slices.Clone(v.pitches)}
	case Beam:
		return Beam{elements: copyAll(v.elements)}
	case Tuplet:
		return Tuplet{value: v.value, elements: copyAll(v.elements)}
	}
	return nil
}

func copyAll(cols []Column) []Column {
	if cols == nil {
		return nil
	}
	out := make([]Column, len(cols))
	for i, c := range cols {
		out[i] = Copy(c)
	}
	return out
}

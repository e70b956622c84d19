package notation

// Equal reports whether a and b are the same kind with equal fields,
// comparing child elements in order.
func Equal(a, b Column) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Rest:
		y, ok := b.(Rest)
		return ok && x.value == y.value
	case Note:
		y, ok := b.(Note)
		return ok && x.value == y.value && x.pitch == y.pitch
	case Chord:
		y, ok := b.(Chord)
		if !ok || x.value != y.value || len(x.pitches) != len(y.pitches) {
			return false
		}
		for i := range x.pitches {
			if x.pitches[i] != y.pitches[i] {
				return false
			}
		}
		return true
	case Beam:
		y, ok := b.(Beam)
		return ok && equalAll(x.elements, y.elements)
	case Tuplet:
		y, ok := b.(Tuplet)
		return ok && x.value == y.value && equalAll(x.elements, y.elements)
	}
	return false
}

func equalAll(a, b []Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

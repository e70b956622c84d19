package notation

// beamReason reports why c may not appear in a beam of n elements, or ""
// when it may.
func beamReason(c Column, n int) string {
	quarter := QuarterValue()
	switch v := c.(type) {
	case nil:
		return "cannot contain empty elements"
	case Rest:
		return "cannot contain rests"
	case Note:
		if v.value.Cmp(quarter) > 0 {
			return "cannot hold whole or half notes"
		}
		if n < 2 {
			return "must contain at least two values"
		}
	case Chord:
		if v.value.Cmp(quarter) > 0 {
			return "cannot hold whole or half notes"
		}
		if n < 2 {
			return "must contain at least two values"
		}
	case Beam:
		if n < 2 || v.Len() < 2 {
			return "nested beams must contain at least two values"
		}
	case Tuplet:
		if v.value.Cmp(quarter) > 0 {
			return "cannot hold whole or half note tuplets"
		}
		if v.Len() < 2 {
			return "nested tuplets must contain at least two values"
		}
	}
	return ""
}

// validateBeam checks elements in order and reports the first violation,
// then the overall arity.
func validateBeam(elements []Column) error {
	for _, c := range elements {
		if reason := beamReason(c, len(elements)); reason != "" {
			return &InvalidBeamError{Reason: reason}
		}
	}
	if len(elements) < 2 {
		return &InvalidBeamError{Reason: "must contain at least two values"}
	}
	return nil
}

func validateTuplet(elements []Column) error {
	if len(elements) < 2 {
		return invalidValuef("tuplet must contain at least two elements")
	}
	for i, c := range elements {
		if c == nil {
			return invalidValuef("tuplet element %d is empty", i)
		}
	}
	return nil
}

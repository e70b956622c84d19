// Package notation is the validated data model for rhythmic notation.
//
// Every composite is built through a constructor that checks its invariants
// before returning, and no type exposes a mutator, so a Column that exists is
// a valid one. Durations are exact fractions of a whole note.
package notation

package cppext

// FlagSet is an ordered, mutable collection of compiler flags.
//
// It backs a driver's default flag set. Removal of a flag that is not
// present is a visible no-op: callers check Contains first or inspect
// Remove's return value, there is no error to swallow.
type FlagSet struct {
	flags []string
}

// NewFlagSet creates a FlagSet holding the given flags in order.
func NewFlagSet(flags ...string) *FlagSet {
	return &FlagSet{flags: append([]string{}, flags...)}
}

// Contains reports whether the set holds the given flag.
func (s *FlagSet) Contains(flag string) bool {
	for _, f := range s.flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Append adds flags to the end of the set.
func (s *FlagSet) Append(flags ...string) {
	s.flags = append(s.flags, flags...)
}

// Remove deletes the first occurrence of flag from the set and reports
// whether anything was removed. Removing an absent flag leaves the set
// unchanged.
func (s *FlagSet) Remove(flag string) bool {
	for i, f := range s.flags {
		if f == flag {
			s.flags = append(s.flags[:i], s.flags[i+1:]...)
			return true
		}
	}
	return false
}

// Slice returns a copy of the flags in order. The copy can be modified
// without affecting the set.
func (s *FlagSet) Slice() []string {
	return append([]string{}, s.flags...)
}

// Len returns the number of flags in the set.
func (s *FlagSet) Len() int {
	return len(s.flags)
}

package instance

// List is an ordered collection of instances, newest first — matching the
// reference's singly-linked InstanceList and the ordering guarantee
// ("all iteration over instance lists and sub lists proceeds in
// insertion order (newest first)").
type List struct {
	Items []*Instance
}

// NewList returns an empty List.
func NewList() *List {
	return &List{}
}

// Insert prepends inst to the list. When unique is true, the list is first
// scanned for an instance matching inst (Matches); if found, inst is
// dropped (not inserted) and Insert reports false. Complexity: O(n) in
// either case, since prepending shifts every existing item.
func (l *List) Insert(inst *Instance, unique bool) bool {
	if unique {
		for _, x := range l.Items {
			if Matches(x, inst) {
				return false
			}
		}
	}
	l.Items = append(l.Items, nil)
	copy(l.Items[1:], l.Items)
	l.Items[0] = inst

	return true
}

// Overlap reports whether inst overlaps any member of the list.
// Complexity: O(n) instance-overlap tests.
func (l *List) Overlap(inst *Instance) bool {
	for _, x := range l.Items {
		if Overlaps(x, inst) {
			return true
		}
	}

	return false
}

// Len returns the number of instances in the list.
func (l *List) Len() int { return len(l.Items) }

// AnyPairOverlaps reports whether any two distinct members of the list
// overlap. Used only to decide whether compression must add an OVERLAP
// edge label. Complexity: O(n^2).
func AnyPairOverlaps(l *List) bool {
	for i := 0; i < len(l.Items); i++ {
		for j := i + 1; j < len(l.Items); j++ {
			if Overlaps(l.Items[i], l.Items[j]) {
				return true
			}
		}
	}

	return false
}

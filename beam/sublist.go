// Package beam implements the Beam Search Engine: one outer-loop iteration
// of substructure discovery, from initial one-vertex candidates through
// repeated extension, pruning, and width-bounded survival, to a final
// value-sorted list of discovered substructures.
package beam

import (
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/katalvlaran/subdue/substructure"
)

// SubList is a value-sorted (descending) collection of substructures.
// Grounded on original_source/src/subops.c's SubList/SubListInsert.
type SubList struct {
	Items []*substructure.Substructure
}

func newSubList() *SubList { return &SubList{} }

// Insert adds sub to l, keeping l sorted by descending Value, ties broken
// by insertion order. An exact duplicate — equal Value and a threshold-0
// full match against an already-present entry of that value — is
// discarded rather than inserted. max bounds how much of l survives: by
// entry count when valueBased is false, by distinct Value count when
// true; max == 0 means unbounded. Insert assumes l already satisfies max
// before the call, matching SubListInsert's own contract.
func (l *SubList) Insert(sub *substructure.Substructure, max int, valueBased bool, m *matcher.Matcher, labels *label.Table) {
	if len(l.Items) == 0 {
		l.Items = append(l.Items, sub)
		return
	}

	for _, existing := range l.Items {
		if existing.Value < sub.Value {
			break
		}
		if existing.Value == sub.Value {
			if _, ok := m.Match(existing.Definition, labels, sub.Definition, labels, 0); ok {
				return
			}
		}
	}

	insertAt := len(l.Items)
	for i, existing := range l.Items {
		if existing.Value < sub.Value {
			insertAt = i
			break
		}
	}
	l.Items = append(l.Items, nil)
	copy(l.Items[insertAt+1:], l.Items[insertAt:])
	l.Items[insertAt] = sub

	l.truncate(max, valueBased)
}

func (l *SubList) truncate(max int, valueBased bool) {
	if max <= 0 {
		return
	}

	if !valueBased {
		if len(l.Items) > max {
			l.Items = l.Items[:max]
		}
		return
	}

	distinct := 0
	lastVal := 0.0
	for i, s := range l.Items {
		if i == 0 || s.Value != lastVal {
			distinct++
			lastVal = s.Value
		}
		if distinct > max {
			l.Items = l.Items[:i]
			return
		}
	}
}

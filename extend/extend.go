// Package extend implements the Extension Strategy: growing every instance
// of a substructure by one edge in every possible way, grouping the
// resulting instances into new candidate substructures by the pattern
// graph each induces, and (optionally) folding chains of instances linked
// by a same-labeled edge into a recursive substructure.
//
// This package always tests a newly extended instance against its
// candidate definition with a full matcher.Match rather than maintaining
// an incrementally-updated vertex mapping per instance to fast-path the
// single-new-edge case: a full match at threshold 0 accepts exactly the
// same instances a new-edge-only check would, and skipping the
// incremental mapping keeps each instance's bookkeeping to its vertex
// list and parent pointer instead of a second mapping that must be kept
// in sync on every extension.
package extend

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/katalvlaran/subdue/substructure"
)

// Config bundles what Extend needs beyond the parent substructure itself.
type Config struct {
	Matcher *matcher.Matcher
	Labels  *label.Table

	PosGraph *gstore.Graph
	NegGraph *gstore.Graph // nil when no negative graph is in play

	Threshold            float64
	AllowInstanceOverlap bool
}

// Extend returns every new candidate substructure reachable from parent by
// extending one of its instances by a single edge. Matching extended
// instances are grouped under one new Substructure per distinct induced
// pattern graph; duplicates of an already-produced definition (an exact
// match at threshold 0) are folded into the existing entry instead of
// appearing twice.
func Extend(parent *substructure.Substructure, cfg Config) []*substructure.Substructure {
	newPos := extendInstances(parent.Instances, cfg.PosGraph)

	var newNeg *instance.List
	if cfg.NegGraph != nil {
		newNeg = extendInstances(parent.NegInstances, cfg.NegGraph)
	}

	var result []*substructure.Substructure
	for _, seed := range newPos.Items {
		definition := instance.ToGraph(seed, cfg.PosGraph)
		if memberOf(definition, cfg.Labels, result, cfg.Matcher) {
			continue
		}

		sub := substructure.New(definition)
		sub.Instances = addInstances(definition, cfg.Labels, seed, newPos, cfg.PosGraph, cfg.Labels, cfg.Matcher, cfg.Threshold, cfg.AllowInstanceOverlap)
		if newNeg != nil {
			sub.NegInstances = addInstances(definition, cfg.Labels, nil, newNeg, cfg.NegGraph, cfg.Labels, cfg.Matcher, cfg.Threshold, cfg.AllowInstanceOverlap)
		}

		result = append(result, sub)
	}

	return result
}

// memberOf reports whether definition exactly matches (threshold 0) the
// definition of any substructure already in subs.
func memberOf(definition *gstore.Graph, labels *label.Table, subs []*substructure.Substructure, m *matcher.Matcher) bool {
	for _, s := range subs {
		if _, ok := m.Match(definition, labels, s.Definition, labels, 0); ok {
			return true
		}
	}

	return false
}

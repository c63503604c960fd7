package beam

import (
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/extend"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/substructure"
)

// Run performs one outer-loop iteration of beam search discovery and
// returns the discovered substructures, sorted by descending value.
// Grounded on original_source/src/discover.c's DiscoverSubs.
//
// Each parent substructure that qualifies for extension — more than one
// positive instance (under any method but SetCover) or at least one
// negative instance — is extended while cfg.Limit still allows it;
// extensions exceeding cfg.MaxVertices are dropped, the rest are scored
// and, when cfg.Prune is set, dropped again if their value did not
// improve on the parent's, and the survivors compete for cfg.BeamWidth
// slots in the next iteration's parent list. Regardless of whether a
// parent was itself extended, it is considered for the discovered list
// (gated by cfg.MinVertices and singlePreviousSub), immediately followed
// by its best recursive variant, if cfg.Recursion is set and one exists.
// Once the limit is exhausted or no parents remain, any substructures
// still in the parent list are drained into the discovered list under the
// same gating, with no further extension.
func Run(cfg Config) []*substructure.Substructure {
	parents := InitialSubs(cfg)
	discovered := newSubList()

	limit := cfg.Limit
	for limit > 0 && len(parents.Items) > 0 {
		children := newSubList()

		for _, parent := range parents.Items {
			qualifies := (parent.Instances.Len() > 1 && cfg.Method != evaluate.SetCover) ||
				(parent.NegInstances != nil && parent.NegInstances.Len() > 0)

			if qualifies && limit > 0 {
				limit--
				extendParent(parent, cfg, children)
			}

			emit(parent, cfg, discovered)
		}

		parents = children
	}

	for _, parent := range parents.Items {
		emit(parent, cfg, discovered)
	}

	return discovered.Items
}

func extendParent(parent *substructure.Substructure, cfg Config, children *SubList) {
	for _, child := range extend.Extend(parent, cfg.extendConfig()) {
		if len(child.Definition.Vertices) > cfg.MaxVertices {
			continue
		}
		if err := cfg.evaluateSub(child); err != nil {
			continue
		}
		if cfg.Prune && child.Value < parent.Value {
			continue
		}

		children.Insert(child, cfg.BeamWidth, cfg.ValueBased, cfg.Matcher, cfg.Labels)
	}
}

// emit files sub (and, when enabled, its best recursive variant) into
// discovered, unless sub is too small or is itself a compression product
// from an earlier iteration (singlePreviousSub).
func emit(sub *substructure.Substructure, cfg Config, discovered *SubList) {
	if len(sub.Definition.Vertices) < cfg.MinVertices {
		return
	}
	if singlePreviousSub(sub, cfg.Labels) {
		return
	}

	discovered.Insert(sub, cfg.NumBestSubs, false, cfg.Matcher, cfg.Labels)

	if !cfg.Recursion {
		return
	}
	if recSub, ok := extend.Recursify(sub, cfg.recursifyConfig()); ok {
		discovered.Insert(recSub, cfg.NumBestSubs, false, cfg.Matcher, cfg.Labels)
	}
}

// singlePreviousSub reports whether sub is a single vertex labeled SUB —
// the vertex a previous iteration's compressor.Compress call substituted
// for an already-discovered substructure. Such a vertex trivially
// "discovers" whatever was found last iteration, so it is excluded from
// the discovered list.
//
// Grounded on original_source/src/discover.c's SinglePreviousSub, adapted
// for compressor's single reused "SUB" label (see compressor.Compress)
// rather than the reference's per-iteration numbered SUB_1, SUB_2, ...
// labels: both conventions identify the same thing, a vertex standing in
// for a prior compression, so equality against the one constant label
// serves exactly where the reference parsed a numbered suffix.
func singlePreviousSub(sub *substructure.Substructure, labels *label.Table) bool {
	if len(sub.Definition.Vertices) != 1 {
		return false
	}
	subLabel, ok := labels.Lookup(label.String("SUB"))
	if !ok {
		return false
	}

	return sub.Definition.Vertices[0].Label == subLabel
}

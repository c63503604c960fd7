package evaluate

import "github.com/katalvlaran/subdue/gstore"

// GraphSize returns |V|+|E|, the raw (uncompressed-description) size
// primitive the Size evaluation method scores against.
func GraphSize(g *gstore.Graph) int {
	return g.Size()
}

// DL computes the minimum description length of g in bits, treating its
// vertex and edge labels as drawn from an alphabet of numLabels symbols:
//
//	V*(1+lg L) + (V+1)*lg(B+1) + Σ lg C(V,k_i) + E*(1+lg L) + (K+1)*lg M
//
// k_i is the number of distinct neighbors of vertex i (an undirected edge
// counts only toward its lower-indexed endpoint, so it isn't charged
// twice), B = max k_i, K = Σ k_i, and M is the largest number of parallel
// edges between any one pair of vertices. cache memoizes the lg(k!) terms
// C(V,k_i) is built from.
func DL(g *gstore.Graph, numLabels int, cache *Cache) float64 {
	v := len(g.Vertices)
	e := len(g.Edges)

	vertexBits := float64(v) * (1 + log2(numLabels))
	edgeBits := float64(e) * (1 + log2(numLabels))

	var rowBits float64
	b, k, m := 0, 0, 0
	for i := range g.Vertices {
		ki, mi := vertexStats(g, i)
		rowBits += cache.log2Choose(v, ki)
		if ki > b {
			b = ki
		}
		k += ki
		if mi > m {
			m = mi
		}
	}
	rowBits += float64(v+1) * log2(b+1)
	edgeBits += float64(k+1) * log2(m)

	return vertexBits + rowBits + edgeBits
}

// vertexStats returns, for vertex v of g: the number of distinct neighbors
// charged to v (uniqueNeighbors — an undirected edge counted only from the
// lower-indexed endpoint, a directed edge counted only from its source),
// and the largest number of parallel edges from v to any single one of
// those neighbors (maxParallel).
func vertexStats(g *gstore.Graph, v int) (uniqueNeighbors, maxParallel int) {
	counts := make(map[int]int)
	for _, e := range g.Vertices[v].Edges {
		edge := g.Edges[e]
		other := g.OtherEndpoint(e, v)
		chargedToV := (edge.Directed && edge.From == v) || (!edge.Directed && other >= v)
		if !chargedToV {
			continue
		}
		counts[other]++
	}

	for _, n := range counts {
		uniqueNeighbors++
		if n > maxParallel {
			maxParallel = n
		}
	}

	return uniqueNeighbors, maxParallel
}

// externalEdgeBits is the extra description length a compressed graph
// needs beyond DL to stay lossless: compression discards which vertex
// inside an instance an external edge actually touched, so each edge
// incident to a SUB vertex costs lg(|V(pattern)|) bits to recover (doubled
// for a self-edge on the SUB vertex, which lost that information on both
// ends).
func externalEdgeBits(compressed, pattern *gstore.Graph, numInstances int) float64 {
	bitsPerEdge := log2(len(pattern.Vertices))

	var bits float64
	for sub := 0; sub < numInstances && sub < len(compressed.Vertices); sub++ {
		for _, e := range compressed.Vertices[sub].Edges {
			bits += bitsPerEdge
			edge := compressed.Edges[e]
			if edge.From == edge.To {
				bits += bitsPerEdge
			}
		}
	}

	return bits
}

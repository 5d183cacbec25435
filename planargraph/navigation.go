package planargraph

// TailOf returns the vertex whose rotation owns d, i.e. the dart's origin.
// Complexity: O(1).
func (g *Graph[V, E, F]) TailOf(d Dart) VertexID {
	g.checkDart(d)
	return VertexID(g.emb.LookupIdx(d).Orbit)
}

// HeadOf returns the vertex d points at: the tail of its twin.
// Complexity: O(1).
func (g *Graph[V, E, F]) HeadOf(d Dart) VertexID {
	return g.TailOf(d.Twin())
}

// EndPoints returns d's tail and head in that order. Complexity: O(1).
func (g *Graph[V, E, F]) EndPoints(d Dart) (tail, head VertexID) {
	return g.TailOf(d), g.HeadOf(d)
}

// IncidentDarts returns the counterclockwise rotation of darts whose tail
// is v. The slice is the embedding's backing storage: read-only, O(1).
func (g *Graph[V, E, F]) IncidentDarts(v VertexID) []Dart {
	g.checkVertex(v)
	return []Dart(g.emb.Orbit(int(v)))
}

// OutgoingDarts filters v's rotation down to its Forward darts (arcs that
// leave v in canonical orientation), preserving counterclockwise order.
// Freshly allocated. Complexity: O(deg v).
func (g *Graph[V, E, F]) OutgoingDarts(v VertexID) []Dart {
	return g.filterIncident(v, true)
}

// IncomingDarts filters v's rotation down to its Backward darts (arcs that
// enter v in canonical orientation), preserving counterclockwise order.
// Freshly allocated. Complexity: O(deg v).
func (g *Graph[V, E, F]) IncomingDarts(v VertexID) []Dart {
	return g.filterIncident(v, false)
}

// NeighborsOf returns the head of each dart in v's rotation, in
// counterclockwise order. Loops contribute v itself and parallel arcs
// repeat their endpoint. Freshly allocated. Complexity: O(deg v).
func (g *Graph[V, E, F]) NeighborsOf(v VertexID) []VertexID {
	rot := g.IncidentDarts(v)
	out := make([]VertexID, len(rot))
	for i, d := range rot {
		out[i] = g.HeadOf(d)
	}
	return out
}

// NextIncidentDart returns the dart following d in the rotation around d's
// tail vertex. Complexity: O(1).
func (g *Graph[V, E, F]) NextIncidentDart(d Dart) Dart {
	g.checkDart(d)
	return g.emb.Apply(d)
}

// PrevIncidentDart returns the dart preceding d in the rotation around d's
// tail vertex. Complexity: O(1).
func (g *Graph[V, E, F]) PrevIncidentDart(d Dart) Dart {
	g.checkDart(d)
	return g.emb.ApplyInverse(d)
}

// filterIncident keeps the darts of v's rotation whose IsForward matches
// forward.
func (g *Graph[V, E, F]) filterIncident(v VertexID, forward bool) []Dart {
	rot := g.IncidentDarts(v)
	out := make([]Dart, 0, len(rot))
	for _, d := range rot {
		if d.IsForward() == forward {
			out = append(out, d)
		}
	}
	return out
}

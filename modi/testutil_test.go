package modi_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtransport/transport"
	"github.com/stretchr/testify/require"
)

var (
	refCosts  = [][]float64{{4, 6, 8}, {3, 5, 2}, {9, 1, 7}}
	refSupply = []float64{20, 30, 25}
	refDemand = []float64{10, 25, 40}
)

// initial solves the reference instance with m under obj.
func initial(t testing.TB, obj transport.Objective, m transport.Method) transport.Solution {
	t.Helper()
	p, err := transport.NewProblem(refCosts, refSupply, refDemand, obj)
	require.NoError(t, err)
	sol, err := transport.Solve(p, m)
	require.NoError(t, err)

	return sol
}

func cell(r, c int) transport.Cell { return transport.Cell{Row: r, Col: c} }

// optimum solves the instance as a min-cost flow (successive shortest
// paths, Bellman-Ford) and returns the best total under obj. It shares no
// code with the engine and serves as the reference answer.
func optimum(costs [][]float64, supply, demand []float64, obj transport.Objective) float64 {
	type edge struct {
		to        int
		cap, cost float64
	}
	var (
		sign  = 1.0
		m, n  = len(supply), len(demand)
		nodes = m + n + 2
		src   = 0
		sink  = nodes - 1
		edges []edge
		adj   = make([][]int, nodes)
		total float64
	)
	if obj == transport.Maximize {
		sign = -1
	}
	add := func(u, v int, c, w float64) {
		adj[u] = append(adj[u], len(edges))
		edges = append(edges, edge{to: v, cap: c, cost: w})
		adj[v] = append(adj[v], len(edges))
		edges = append(edges, edge{to: u, cap: 0, cost: -w})
	}
	for i := range supply {
		add(src, 1+i, supply[i], 0)
	}
	for j := range demand {
		add(1+m+j, sink, demand[j], 0)
	}
	for i := range costs {
		for j := range costs[i] {
			add(1+i, 1+m+j, math.Inf(1), sign*costs[i][j])
		}
	}

	for {
		dist := make([]float64, nodes)
		prev := make([]int, nodes)
		for k := range dist {
			dist[k], prev[k] = math.Inf(1), -1
		}
		dist[src] = 0
		for pass := 0; pass < nodes-1; pass++ {
			changed := false
			for u := 0; u < nodes; u++ {
				if math.IsInf(dist[u], 1) {
					continue
				}
				for _, e := range adj[u] {
					if ed := edges[e]; ed.cap > 0 && dist[u]+ed.cost < dist[ed.to] {
						dist[ed.to], prev[ed.to] = dist[u]+ed.cost, e
						changed = true
					}
				}
			}
			if !changed {
				break
			}
		}
		if math.IsInf(dist[sink], 1) {
			return sign * total
		}

		f := math.Inf(1)
		for v := sink; v != src; v = edges[prev[v]^1].to {
			f = math.Min(f, edges[prev[v]].cap)
		}
		for v := sink; v != src; v = edges[prev[v]^1].to {
			edges[prev[v]].cap -= f
			edges[prev[v]^1].cap += f
		}
		total += f * dist[sink]
	}
}

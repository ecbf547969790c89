package tabletop

import "container/heap"

// MovementRange computes every cell a token can reach within its speed
// budget: a uniform-cost search over the 8-connected cell lattice, charging
// terrain-adjusted entry costs. Walls block movement between two cells when
// a segment crosses the centre-to-centre line, the same primitive vision
// uses. Diagonal steps cost the same as straight ones (5-foot diagonals).
//
// The token's own footprint is always included. A nil terrain grid means
// uniform normal ground.
func MovementRange(g Grid, walls []WallSegment, terrain *TerrainGrid, tok *Token) CellSet {
	reach := make(CellSet)
	if tok == nil || g.Cols() == 0 || g.Rows() == 0 {
		return reach
	}
	budget := float64(tok.SpeedFeet)
	walls = pruneWalls(g, walls)

	for _, c := range tok.Footprint() {
		if g.InBounds(c) {
			reach.Add(c)
		}
	}
	if budget <= 0 {
		return reach
	}

	// cost[cell] = cheapest feet spent to stand there.
	cost := make(map[Cell]float64, 64)
	pq := &cellQueue{}
	heap.Init(pq)
	for _, c := range tok.Footprint() {
		if g.InBounds(c) {
			cost[c] = 0
			heap.Push(pq, cellCost{cell: c, cost: 0})
		}
	}

	steps := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(cellCost)
		if cur.cost > cost[cur.cell] {
			continue // stale entry
		}
		for _, s := range steps {
			next := Cell{X: cur.cell.X + s[0], Y: cur.cell.Y + s[1]}
			if !g.InBounds(next) {
				continue
			}
			entry := terrain.MoveCostFeet(next.X, next.Y)
			if entry == 0 {
				continue // impassable
			}
			nc := cur.cost + entry
			if nc > budget {
				continue
			}
			if prev, ok := cost[next]; ok && prev <= nc {
				continue
			}
			if !cellSightlineClear(g, cur.cell, next, walls) {
				continue // a wall separates the two cells
			}
			cost[next] = nc
			reach.Add(next)
			heap.Push(pq, cellCost{cell: next, cost: nc})
		}
	}
	return reach
}

// cellCost is a priority-queue entry for the movement search.
type cellCost struct {
	cell Cell
	cost float64
}

// cellQueue is a min-heap of cellCost ordered by cost.
type cellQueue []cellCost

func (q cellQueue) Len() int            { return len(q) }
func (q cellQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q cellQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(cellCost)) }
func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

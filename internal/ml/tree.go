// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Node is one tree node. Leaves have Left == -1.
// Value holds class probabilities for classification trees and a single
// prediction for regression trees.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     []float64
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left < 0
}

// Tree is a binary decision tree stored as a flat node slice; node 0 is
// the root.
type Tree struct {
	Nodes []Node
}

// Leaf returns the index of the leaf x falls into.
func (t *Tree) Leaf(x []float64) int {
	i := 0
	for {
		n := &t.Nodes[i]
		if n.IsLeaf() {
			return i
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Predict returns the leaf value for x.
func (t *Tree) Predict(x []float64) []float64 {
	return t.Nodes[t.Leaf(x)].Value
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	var walk func(i int) int
	walk = func(i int) int {
		n := &t.Nodes[i]
		if n.IsLeaf() {
			return 0
		}
		return 1 + max(walk(n.Left), walk(n.Right))
	}
	if len(t.Nodes) == 0 {
		return 0
	}
	return walk(0)
}

type criterion int

const (
	criterionGini criterion = iota
	criterionMSE
)

// minImprovement is the smallest impurity decrease that justifies a split.
const minImprovement = 1e-12

// treeBuilder grows one CART tree. Samples are addressed by row index into
// X; w carries a per-row weight (bootstrap multiplicity times class weight).
type treeBuilder struct {
	X           [][]float64
	yClass      []int
	yReg        []float64
	w           []float64
	nClasses    int
	crit        criterion
	maxDepth    int
	minSplit    int
	maxFeatures int
	rng         *rand.Rand

	nodes []Node
	order []int
}

type split struct {
	feature   int
	threshold float64
	score     float64
}

func (b *treeBuilder) build(idx []int) Tree {
	b.nodes = b.nodes[:0]
	b.order = make([]int, len(idx))
	b.grow(idx, 0)
	return Tree{Nodes: slices.Clone(b.nodes)}
}

func (b *treeBuilder) grow(idx []int, depth int) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{Left: -1, Right: -1, Value: b.leafValue(idx)})

	if (b.maxDepth > 0 && depth >= b.maxDepth) || len(idx) < b.minSplit || b.pure(idx) {
		return id
	}
	s, ok := b.bestSplit(idx)
	if !ok {
		return id
	}

	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, i := range idx {
		if b.X[i][s.feature] <= s.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	n := &b.nodes[id]
	n.Feature = s.feature
	n.Threshold = s.threshold
	n.Left = l
	n.Right = r
	return id
}

func (b *treeBuilder) leafValue(idx []int) []float64 {
	if b.crit == criterionMSE {
		var sum, wt float64
		for _, i := range idx {
			sum += b.w[i] * b.yReg[i]
			wt += b.w[i]
		}
		if wt == 0 {
			return []float64{0}
		}
		return []float64{sum / wt}
	}

	v := make([]float64, b.nClasses)
	var wt float64
	for _, i := range idx {
		v[b.yClass[i]] += b.w[i]
		wt += b.w[i]
	}
	if wt > 0 {
		for k := range v {
			v[k] /= wt
		}
	}
	return v
}

func (b *treeBuilder) pure(idx []int) bool {
	for _, i := range idx[1:] {
		if b.crit == criterionMSE {
			if b.yReg[i] != b.yReg[idx[0]] {
				return false
			}
		} else if b.yClass[i] != b.yClass[idx[0]] {
			return false
		}
	}
	return true
}

// impurity returns the weighted impurity sum of a node: W*gini or SSE.
func (b *treeBuilder) impurity(idx []int) float64 {
	if b.crit == criterionMSE {
		var sum, sq, wt float64
		for _, i := range idx {
			sum += b.w[i] * b.yReg[i]
			sq += b.w[i] * b.yReg[i] * b.yReg[i]
			wt += b.w[i]
		}
		return sse(sum, sq, wt)
	}
	counts := make([]float64, b.nClasses)
	var wt float64
	for _, i := range idx {
		counts[b.yClass[i]] += b.w[i]
		wt += b.w[i]
	}
	return giniSum(counts, wt)
}

// bestSplit visits features in random order and evaluates up to
// maxFeatures of them that are not constant within the node.
func (b *treeBuilder) bestSplit(idx []int) (split, bool) {
	nFeatures := len(b.X[idx[0]])
	limit := b.maxFeatures
	if limit <= 0 || limit > nFeatures {
		limit = nFeatures
	}

	best := split{score: b.impurity(idx) - minImprovement}
	found := false
	order := b.order[:len(idx)]

	visited := 0
	for _, f := range b.rng.Perm(nFeatures) {
		if visited >= limit {
			break
		}
		copy(order, idx)
		slices.SortFunc(order, func(a, c int) int {
			return cmp.Compare(b.X[a][f], b.X[c][f])
		})
		if b.X[order[0]][f] == b.X[order[len(order)-1]][f] {
			continue
		}
		visited++

		var score, thr float64
		var ok bool
		if b.crit == criterionMSE {
			score, thr, ok = b.sweepMSE(order, f)
		} else {
			score, thr, ok = b.sweepGini(order, f)
		}
		if ok && score < best.score {
			best = split{feature: f, threshold: thr, score: score}
			found = true
		}
	}
	return best, found
}

func (b *treeBuilder) sweepGini(order []int, f int) (float64, float64, bool) {
	total := make([]float64, b.nClasses)
	var wTotal float64
	for _, i := range order {
		total[b.yClass[i]] += b.w[i]
		wTotal += b.w[i]
	}

	left := make([]float64, b.nClasses)
	right := make([]float64, b.nClasses)
	var wLeft float64
	bestScore, bestThr, ok := 0.0, 0.0, false

	for k := 0; k < len(order)-1; k++ {
		i := order[k]
		left[b.yClass[i]] += b.w[i]
		wLeft += b.w[i]

		xi, xn := b.X[i][f], b.X[order[k+1]][f]
		if xi == xn {
			continue
		}
		for c := range total {
			right[c] = total[c] - left[c]
		}
		score := giniSum(left, wLeft) + giniSum(right, wTotal-wLeft)
		if !ok || score < bestScore {
			bestScore, bestThr, ok = score, midpoint(xi, xn), true
		}
	}
	return bestScore, bestThr, ok
}

func (b *treeBuilder) sweepMSE(order []int, f int) (float64, float64, bool) {
	var sumT, sqT, wT float64
	for _, i := range order {
		sumT += b.w[i] * b.yReg[i]
		sqT += b.w[i] * b.yReg[i] * b.yReg[i]
		wT += b.w[i]
	}

	var sumL, sqL, wL float64
	bestScore, bestThr, ok := 0.0, 0.0, false

	for k := 0; k < len(order)-1; k++ {
		i := order[k]
		sumL += b.w[i] * b.yReg[i]
		sqL += b.w[i] * b.yReg[i] * b.yReg[i]
		wL += b.w[i]

		xi, xn := b.X[i][f], b.X[order[k+1]][f]
		if xi == xn {
			continue
		}
		score := sse(sumL, sqL, wL) + sse(sumT-sumL, sqT-sqL, wT-wL)
		if !ok || score < bestScore {
			bestScore, bestThr, ok = score, midpoint(xi, xn), true
		}
	}
	return bestScore, bestThr, ok
}

// giniSum is W * gini(counts) = W - sum(c^2)/W.
func giniSum(counts []float64, w float64) float64 {
	if w <= 0 {
		return 0
	}
	var sq float64
	for _, c := range counts {
		sq += c * c
	}
	return w - sq/w
}

func sse(sum, sq, w float64) float64 {
	if w <= 0 {
		return 0
	}
	v := sq - sum*sum/w
	if v < 0 {
		return 0
	}
	return v
}

func midpoint(lo, hi float64) float64 {
	m := lo + (hi-lo)/2
	if m >= hi {
		return lo
	}
	return m
}

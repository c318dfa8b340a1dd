// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// Split holds row indices of a train/test partition.
type Split struct {
	Train []int
	Test  []int
}

// TrainTestSplit shuffles n rows and holds out ceil(testSize*n) of them.
// When stratify is non-nil the held-out share of each class matches its
// share of the data, with remainders going to the largest fractions.
func TrainTestSplit(n int, testSize float64, stratify []int, seed uint64) (Split, error) {
	if n < 2 {
		return Split{}, ErrEmptyInput
	}
	if testSize <= 0 || testSize >= 1 {
		return Split{}, fmt.Errorf("test size %v must be in (0, 1)", testSize)
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	nTest = min(max(nTest, 1), n-1)
	rng := rand.New(rand.NewPCG(seed, 0x7e57))

	if stratify == nil {
		perm := rng.Perm(n)
		return Split{Train: sorted(perm[nTest:]), Test: sorted(perm[:nTest])}, nil
	}
	if len(stratify) != n {
		return Split{}, ErrShapeMismatch
	}

	groups := groupByClass(stratify)
	alloc := make([]int, len(groups))
	type frac struct {
		class int
		rem   float64
	}
	fracs := make([]frac, 0, len(groups))
	assigned := 0
	for c, members := range groups {
		exact := float64(nTest) * float64(len(members)) / float64(n)
		alloc[c] = int(math.Floor(exact))
		assigned += alloc[c]
		fracs = append(fracs, frac{class: c, rem: exact - math.Floor(exact)})
	}
	slices.SortStableFunc(fracs, func(a, b frac) int {
		switch {
		case a.rem > b.rem:
			return -1
		case a.rem < b.rem:
			return 1
		default:
			return a.class - b.class
		}
	})
	for i := 0; assigned < nTest && i < len(fracs); i++ {
		c := fracs[i].class
		if alloc[c] < len(groups[c]) {
			alloc[c]++
			assigned++
		}
	}

	var out Split
	for c, members := range groups {
		shuffled := slices.Clone(members)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		out.Test = append(out.Test, shuffled[:alloc[c]]...)
		out.Train = append(out.Train, shuffled[alloc[c]:]...)
	}
	out.Train = sorted(out.Train)
	out.Test = sorted(out.Test)
	return out, nil
}

// StratifiedKFold partitions rows into k folds, dealing each class's
// shuffled members round-robin so every fold keeps the class balance.
func StratifiedKFold(y []int, k int, seed uint64) ([]Split, error) {
	if k < 2 {
		return nil, fmt.Errorf("k=%d: need at least two folds", k)
	}
	if len(y) < k {
		return nil, fmt.Errorf("%w: %d samples for %d folds", ErrShapeMismatch, len(y), k)
	}
	rng := rand.New(rand.NewPCG(seed, 0xf01d))
	foldOf := make([]int, len(y))
	next := 0
	for _, members := range groupByClass(y) {
		shuffled := slices.Clone(members)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		for _, i := range shuffled {
			foldOf[i] = next % k
			next++
		}
	}

	folds := make([]Split, k)
	for i, f := range foldOf {
		for j := range folds {
			if j == f {
				folds[j].Test = append(folds[j].Test, i)
			} else {
				folds[j].Train = append(folds[j].Train, i)
			}
		}
	}
	return folds, nil
}

// CrossValScore fits a fresh classifier per fold and returns each fold's
// accuracy.
func CrossValScore(ctx context.Context, newModel func() Classifier, X [][]float64, y []int, folds []Split) ([]float64, error) {
	scores := make([]float64, 0, len(folds))
	for i, f := range folds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m := newModel()
		if err := m.Fit(ctx, Rows(X, f.Train), Ints(y, f.Train)); err != nil {
			return nil, fmt.Errorf("fold %d: %w", i, err)
		}
		pred, err := PredictAll(m, Rows(X, f.Test))
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", i, err)
		}
		scores = append(scores, Accuracy(Ints(y, f.Test), pred))
	}
	return scores, nil
}

// Rows selects rows of X by index.
func Rows(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}
	return out
}

// Ints selects elements of y by index.
func Ints(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}

// Floats selects elements of y by index.
func Floats(y []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}

// groupByClass returns row indices per class, indexed by class.
func groupByClass(y []int) [][]int {
	nClasses := 0
	for _, c := range y {
		nClasses = max(nClasses, c+1)
	}
	groups := make([][]int, nClasses)
	for i, c := range y {
		groups[c] = append(groups[c], i)
	}
	return groups
}

func sorted(v []int) []int {
	out := slices.Clone(v)
	slices.Sort(out)
	return out
}

package model

import "fmt"

// Estimator maps a feature vector to a predicted log10(HC).
type Estimator interface {
	Predict(x []float64) (float64, error)
	NumFeatures() int
}

// Node is one node of a regression tree. A node whose Left and Right are
// both -1 is a leaf and carries Value; otherwise samples with
// x[Feature] <= Threshold go Left.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

func (n Node) isLeaf() bool { return n.Left == -1 && n.Right == -1 }

// Tree is a regression tree rooted at Nodes[0].
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// check verifies every split points strictly forward to an existing node,
// which rules out cycles, and only reads features below nFeatures.
func (t Tree) check(nFeatures int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrMalformedTree)
	}
	for i, n := range t.Nodes {
		if n.isLeaf() {
			continue
		}
		if n.Left == -1 || n.Right == -1 {
			return fmt.Errorf("%w: node %d has a single child", ErrMalformedTree, i)
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return fmt.Errorf("%w: node %d reads feature %d of %d", ErrMalformedTree, i, n.Feature, nFeatures)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("%w: node %d has child %d", ErrMalformedTree, i, child)
			}
		}
	}
	return nil
}

func (t Tree) eval(x []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Forest averages the outputs of its trees, like a random forest regressor.
type Forest struct {
	Trees    []Tree `json:"trees"`
	features int
}

func (f *Forest) NumFeatures() int { return f.features }

func (f *Forest) Predict(x []float64) (float64, error) {
	if len(x) != f.features {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(x), f.features)
	}
	var sum float64
	for _, t := range f.Trees {
		sum += t.eval(x)
	}
	return sum / float64(len(f.Trees)), nil
}

// Linear is an intercept plus a weighted sum of the features.
type Linear struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

func (l *Linear) NumFeatures() int { return len(l.Coefficients) }

func (l *Linear) Predict(x []float64) (float64, error) {
	if len(x) != len(l.Coefficients) {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(x), len(l.Coefficients))
	}
	y := l.Intercept
	for i, c := range l.Coefficients {
		y += c * x[i]
	}
	return y, nil
}

package mvc

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	w := NewContainer("test")
	assertMatrix(t, "identity", computeLocalTransform(w), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslationScale(t *testing.T) {
	w := NewContainer("test")
	w.SetPosition(10, 20)
	w.SetScale(2, 3)
	assertMatrix(t, "local", computeLocalTransform(w), [6]float64{2, 0, 0, 3, 10, 20})
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 5, 7}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineComposes(t *testing.T) {
	parent := [6]float64{2, 0, 0, 2, 100, 50}
	child := [6]float64{1, 0, 0, 1, 10, 10}
	got := multiplyAffine(parent, child)
	assertMatrix(t, "composed", got, [6]float64{2, 0, 0, 2, 120, 70})
}

// --- updateWorldTransform ---

func TestWorldTransformHierarchy(t *testing.T) {
	root := NewContainer("root")
	panel := NewContainer("panel")
	label := NewText("label", "")
	root.AddChild(panel)
	panel.AddChild(label)

	panel.SetPosition(100, 50)
	panel.SetScale(2, 2)
	label.SetPosition(10, 5)

	updateWorldTransform(root, identityTransform, 1, false)

	x, y := label.LocalToWorld(0, 0)
	assertNear(t, "x", x, 120)
	assertNear(t, "y", y, 60)
}

func TestWorldAlphaAccumulates(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	root.SetAlpha(0.5)
	child.SetAlpha(0.5)

	updateWorldTransform(root, identityTransform, 1, false)
	assertNear(t, "worldAlpha", child.WorldAlpha(), 0.25)
}

func TestDirtyParentRecomputesChildren(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	updateWorldTransform(root, identityTransform, 1, false)

	if child.transformDirty {
		t.Fatal("child should be clean after update")
	}
	root.SetPosition(30, 40)
	updateWorldTransform(root, identityTransform, 1, false)

	x, y := child.LocalToWorld(0, 0)
	assertNear(t, "x", x, 30)
	assertNear(t, "y", y, 40)
}

func TestMarkSubtreeDirtyOnReparent(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	a.AddChild(child)
	child.AddChild(grandchild)
	updateWorldTransform(a, identityTransform, 1, false)

	b.AddChild(child)
	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("reparenting should mark the subtree dirty")
	}
}

package mvc

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the widget's
// position and scale. Returns [a, b, c, d, tx, ty].
func computeLocalTransform(w *Widget) [6]float64 {
	return [6]float64{w.ScaleX, 0, 0, w.ScaleY, w.X, w.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a widget's worldTransform and worldAlpha.
// parentRecomputed forces recomputation of this widget even if it's not dirty.
func updateWorldTransform(w *Widget, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := w.transformDirty || parentRecomputed
	if recompute {
		w.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(w))
		w.worldAlpha = parentAlpha * w.Alpha
		w.transformDirty = false
	}
	for _, child := range w.children {
		updateWorldTransform(child, w.worldTransform, w.worldAlpha, recompute)
	}
}

// markSubtreeDirty sets transformDirty on w and all its descendants.
func markSubtreeDirty(w *Widget) {
	w.transformDirty = true
	for _, child := range w.children {
		markSubtreeDirty(child)
	}
}

// --- Transform property setters ---

// SetPosition sets the widget's local X and Y and marks it dirty.
func (w *Widget) SetPosition(x, y float64) {
	w.X = x
	w.Y = y
	w.transformDirty = true
}

// SetScale sets the widget's ScaleX and ScaleY and marks it dirty.
func (w *Widget) SetScale(sx, sy float64) {
	w.ScaleX = sx
	w.ScaleY = sy
	w.transformDirty = true
}

// SetAlpha sets the widget's alpha and marks it dirty.
func (w *Widget) SetAlpha(a float64) {
	w.Alpha = a
	w.transformDirty = true
}

// MarkDirty forces recomputation of the world transform on the next frame.
// Useful after bulk-setting fields directly.
func (w *Widget) MarkDirty() {
	w.transformDirty = true
}

// LocalToWorld converts a local-space point to world-space using the
// transform computed on the last frame.
func (w *Widget) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(w.worldTransform, lx, ly)
}

// WorldAlpha returns the alpha accumulated from the root on the last frame.
func (w *Widget) WorldAlpha() float64 {
	return w.worldAlpha
}

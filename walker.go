package mvc

// loadDataBindings registers every ViewBinding found in w's subtree with c.
// The order is depth-first with each child's subtree completed before the
// next child; notifications later reach views in this order. It returns the
// running count of registered bindings.
func (c *Controller) loadDataBindings(w *Widget, count int) int {
	if vb, ok := w.Script().(ViewBinding); ok {
		if c.registry.Insert(vb) {
			vb.SetController(c)
			count++
		}
	}
	for _, child := range w.children {
		count = c.loadDataBindings(child, count)
	}
	return count
}

package mvc

import (
	"fmt"
	"reflect"
)

// --- TextBinding ---

// TextBinding writes the bound value into its widget's Text. Collections are
// rendered as their length.
type TextBinding struct {
	BindingBase

	// Format is a fmt verb string applied to the value; empty means %v.
	Format string
}

// NewTextBinding creates a TextBinding on w listening to name.
func NewTextBinding(w *Widget, name, format string) *TextBinding {
	return &TextBinding{BindingBase: NewBindingBase(w, name), Format: format}
}

// UpdateView re-renders the text from the current value.
func (b *TextBinding) UpdateView() {
	v, ok := b.Value()
	if !ok {
		return
	}
	b.Widget().SetText(formatValue(b.Format, displayValue(v)))
}

// UpdateCollection re-renders the text; the change itself is not needed.
func (b *TextBinding) UpdateCollection(args CollectionChangedArgs) {
	b.UpdateView()
}

// --- VisibilityBinding ---

// VisibilityBinding shows its widget while the bound value is truthy: true,
// non-zero, non-empty, or a non-empty collection.
type VisibilityBinding struct {
	BindingBase

	// Invert hides the widget while the value is truthy.
	Invert bool
}

// NewVisibilityBinding creates a VisibilityBinding on w listening to name.
func NewVisibilityBinding(w *Widget, name string, invert bool) *VisibilityBinding {
	return &VisibilityBinding{BindingBase: NewBindingBase(w, name), Invert: invert}
}

// UpdateView shows or hides the widget.
func (b *VisibilityBinding) UpdateView() {
	v, ok := b.Value()
	if !ok {
		return
	}
	b.Widget().SetVisible(truthy(v) != b.Invert)
}

// UpdateCollection re-evaluates emptiness.
func (b *VisibilityBinding) UpdateCollection(args CollectionChangedArgs) {
	b.UpdateView()
}

// --- ListBinding ---

// ListBinding renders a collection as one text child per item, stacked
// vertically. Collection changes are applied incrementally; UpdateView and
// ChangeReset rebuild every child.
type ListBinding struct {
	BindingBase

	// Format is applied to each item; empty means %v.
	Format string
	// Spacing is the vertical distance between items.
	Spacing float64
}

// NewListBinding creates a ListBinding on w listening to name.
func NewListBinding(w *Widget, name, format string, spacing float64) *ListBinding {
	return &ListBinding{BindingBase: NewBindingBase(w, name), Format: format, Spacing: spacing}
}

// UpdateView rebuilds every item widget.
func (b *ListBinding) UpdateView() {
	v, ok := b.Value()
	if !ok {
		return
	}
	b.rebuild(v)
}

// UpdateCollection applies args to the item widgets. Changes that do not fit
// the current children trigger a rebuild.
func (b *ListBinding) UpdateCollection(args CollectionChangedArgs) {
	w := b.Widget()
	n := w.NumChildren()
	switch {
	case args.Action == ChangeAdd && args.Index >= 0 && args.Index <= n:
		w.AddChildAt(b.newItem(args.Item), args.Index)
	case args.Action == ChangeRemove && args.Index >= 0 && args.Index < n:
		w.RemoveChildAt(args.Index).Dispose()
	case args.Action == ChangeReplace && args.Index >= 0 && args.Index < n:
		w.ChildAt(args.Index).SetText(formatValue(b.Format, args.Item))
	case args.Action == ChangeMove && args.OldIndex >= 0 && args.OldIndex < n && args.Index >= 0 && args.Index < n:
		w.SetChildIndex(w.ChildAt(args.OldIndex), args.Index)
	default:
		b.UpdateView()
		return
	}
	b.layoutItems()
}

func (b *ListBinding) newItem(item any) *Widget {
	return NewText(b.BindingName()+"Item", formatValue(b.Format, item))
}

func (b *ListBinding) rebuild(v any) {
	w := b.Widget()
	for w.NumChildren() > 0 {
		w.RemoveChildAt(w.NumChildren() - 1).Dispose()
	}
	if coll := collectionOf(v); coll != nil {
		for i := 0; i < coll.Len(); i++ {
			w.AddChild(b.newItem(coll.Item(i)))
		}
	}
	b.layoutItems()
}

func (b *ListBinding) layoutItems() {
	for i, child := range b.Widget().Children() {
		child.SetPosition(0, float64(i)*b.Spacing)
	}
}

// --- Value helpers ---

// sliceCollection adapts a plain slice or array to Collection.
type sliceCollection struct {
	v reflect.Value
}

func (s sliceCollection) Len() int       { return s.v.Len() }
func (s sliceCollection) Item(i int) any { return s.v.Index(i).Interface() }

// collectionOf returns v as a Collection, adapting slices and arrays, or nil.
func collectionOf(v any) Collection {
	rv := reflect.ValueOf(v)
	if c, ok := v.(Collection); ok {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return c
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return sliceCollection{rv}
	}
	return nil
}

// displayValue replaces collections by their length.
func displayValue(v any) any {
	if c := collectionOf(v); c != nil {
		return c.Len()
	}
	return v
}

func formatValue(format string, v any) string {
	if format == "" {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf(format, v)
}

// toFloat converts numeric values (and collection lengths) to float64.
func toFloat(v any) (float64, bool) {
	if c := collectionOf(v); c != nil {
		return float64(c.Len()), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	if c := collectionOf(v); c != nil {
		return c.Len() > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return true
}

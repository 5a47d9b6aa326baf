package mvc

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenField selects which widget field a TweenBinding animates.
type TweenField uint8

const (
	TweenAlpha  TweenField = iota // Widget.Alpha
	TweenX                        // Widget.X
	TweenY                        // Widget.Y
	TweenScaleX                   // Widget.ScaleX
	TweenScaleY                   // Widget.ScaleY
)

func parseTweenField(s string) (TweenField, error) {
	switch strings.ToLower(s) {
	case "", "alpha":
		return TweenAlpha, nil
	case "x":
		return TweenX, nil
	case "y":
		return TweenY, nil
	case "scalex":
		return TweenScaleX, nil
	case "scaley":
		return TweenScaleY, nil
	}
	return 0, fmt.Errorf("unknown tween field %q", s)
}

// easings maps layout-file names to easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"outbounce":  ease.OutBounce,
	"inoutsine":  ease.InOutSine,
}

// EaseByName returns the easing function registered under name
// (case-insensitive). An empty name is linear.
func EaseByName(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easings[strings.ToLower(name)]
	return fn, ok
}

// TweenBinding animates one numeric widget field towards the bound value
// whenever the value changes. A zero Duration applies values immediately.
//
// The workspace calls Advance every frame; there is no global animation
// manager.
type TweenBinding struct {
	BindingBase

	Field    TweenField
	Duration float32
	Ease     ease.TweenFunc

	tween *gween.Tween
}

// NewTweenBinding creates a TweenBinding on w listening to name.
func NewTweenBinding(w *Widget, name string, field TweenField, duration float32, fn ease.TweenFunc) *TweenBinding {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenBinding{
		BindingBase: NewBindingBase(w, name),
		Field:       field,
		Duration:    duration,
		Ease:        fn,
	}
}

// field returns a pointer to the animated widget field.
func (b *TweenBinding) field() *float64 {
	w := b.Widget()
	switch b.Field {
	case TweenX:
		return &w.X
	case TweenY:
		return &w.Y
	case TweenScaleX:
		return &w.ScaleX
	case TweenScaleY:
		return &w.ScaleY
	default:
		return &w.Alpha
	}
}

// UpdateView starts a tween from the field's current value to the bound value.
func (b *TweenBinding) UpdateView() {
	v, ok := b.Value()
	if !ok {
		return
	}
	to, ok := toFloat(v)
	if !ok {
		logger.Warningf("tween binding %q: %T is not numeric", b.BindingName(), v)
		return
	}
	f := b.field()
	if b.Duration <= 0 {
		b.tween = nil
		*f = to
		b.Widget().MarkDirty()
		return
	}
	b.tween = gween.New(float32(*f), float32(to), b.Duration, b.Ease)
}

// UpdateCollection animates towards the collection's new length.
func (b *TweenBinding) UpdateCollection(args CollectionChangedArgs) {
	b.UpdateView()
}

// Advance steps the running tween by dt seconds and writes the value to the
// widget. If the widget has been disposed the tween stops.
func (b *TweenBinding) Advance(dt float32) {
	if b.tween == nil {
		return
	}
	w := b.Widget()
	if w == nil || w.IsDisposed() {
		b.tween = nil
		return
	}
	val, finished := b.tween.Update(dt)
	*b.field() = float64(val)
	w.MarkDirty()
	if finished {
		b.tween = nil
	}
}

// Animating reports whether a tween is in progress.
func (b *TweenBinding) Animating() bool {
	return b.tween != nil
}

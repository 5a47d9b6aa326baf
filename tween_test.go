package mvc

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newTweenTree(field TweenField, duration float32) (*countController, *Widget, *TweenBinding) {
	root := NewContainer("root")
	w := NewBox("bar", 10, 10, ColorWhite)
	root.AddChild(w)
	tb := NewTweenBinding(w, "Count", field, duration, ease.Linear)
	w.SetScript(tb)
	c := newCountController(nil)
	c.OnWidgetScriptInit(root)
	return c, w, tb
}

func TestTweenBindingImmediate(t *testing.T) {
	c, w, tb := newTweenTree(TweenScaleX, 0)
	w.transformDirty = false

	c.SetValue("Count", 4)
	assertNear(t, "ScaleX", w.ScaleX, 4)
	if tb.Animating() {
		t.Error("zero duration should not animate")
	}
	if !w.transformDirty {
		t.Error("widget should be marked dirty")
	}
}

func TestTweenBindingFields(t *testing.T) {
	tests := []struct {
		field TweenField
		get   func(*Widget) float64
	}{
		{TweenAlpha, func(w *Widget) float64 { return w.Alpha }},
		{TweenX, func(w *Widget) float64 { return w.X }},
		{TweenY, func(w *Widget) float64 { return w.Y }},
		{TweenScaleX, func(w *Widget) float64 { return w.ScaleX }},
		{TweenScaleY, func(w *Widget) float64 { return w.ScaleY }},
	}
	for _, tt := range tests {
		c, w, _ := newTweenTree(tt.field, 0)
		c.SetValue("Count", 3)
		assertNear(t, "field", tt.get(w), 3)
	}
}

func TestTweenBindingAnimates(t *testing.T) {
	c, w, tb := newTweenTree(TweenY, 2)
	c.SetValue("Count", 20)

	tb.Advance(1)
	assertNear(t, "Y", w.Y, 10)
	if !tb.Animating() {
		t.Error("tween should still be running")
	}
	tb.Advance(5)
	assertNear(t, "Y", w.Y, 20)
	if tb.Animating() {
		t.Error("tween should be finished")
	}
}

func TestTweenBindingRetargetsFromCurrent(t *testing.T) {
	c, w, tb := newTweenTree(TweenX, 1)
	c.SetValue("Count", 10)
	tb.Advance(0.5)
	assertNear(t, "X", w.X, 5)

	// A new value starts from where the widget is now.
	c.SetValue("Count", 15)
	tb.Advance(0.5)
	assertNear(t, "X", w.X, 10)
}

func TestTweenBindingStopsOnDispose(t *testing.T) {
	c, w, tb := newTweenTree(TweenX, 1)
	c.SetValue("Count", 10)
	w.Dispose()
	tb.Advance(0.5)
	if tb.Animating() {
		t.Error("tween should stop once the widget is disposed")
	}
}

func TestTweenBindingNonNumeric(t *testing.T) {
	rec := recordLogs(t)
	root := NewContainer("root")
	w := NewBox("bar", 1, 1, ColorWhite)
	root.AddChild(w)
	w.SetScript(NewTweenBinding(w, "Title", TweenX, 0, nil))
	c := InitController(&bindController{})
	c.OnWidgetScriptInit(root)

	c.SetValue("Title", "abc")
	if w.X != 0 {
		t.Error("non-numeric value should not move the widget")
	}
	if len(rec.warnings) != 1 {
		t.Errorf("warnings = %v, want one", rec.warnings)
	}
}

func TestEaseByName(t *testing.T) {
	for _, name := range []string{"", "linear", "OutCubic", "inoutsine"} {
		if fn, ok := EaseByName(name); !ok || fn == nil {
			t.Errorf("EaseByName(%q) not found", name)
		}
	}
	if _, ok := EaseByName("wobble"); ok {
		t.Error("unknown ease should not be found")
	}
}

func TestParseTweenField(t *testing.T) {
	tests := map[string]TweenField{
		"":       TweenAlpha,
		"alpha":  TweenAlpha,
		"X":      TweenX,
		"y":      TweenY,
		"scaleX": TweenScaleX,
		"scaley": TweenScaleY,
	}
	for in, want := range tests {
		got, err := parseTweenField(in)
		if err != nil || got != want {
			t.Errorf("parseTweenField(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := parseTweenField("rotation"); err == nil {
		t.Error("unknown field should fail")
	}
}

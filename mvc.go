package mvc

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default widget tint.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts the color to a premultiplied color.RGBA scaled by alpha.
func (c Color) RGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("mvc: invalid color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("mvc: invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// WidgetType distinguishes how the workspace presents a Widget.
type WidgetType uint8

const (
	WidgetContainer WidgetType = iota // group widget with no visual output
	WidgetText                        // draws its Text
	WidgetBox                         // solid rectangle of Width x Height
)

// String returns the layout-file name of the widget type.
func (t WidgetType) String() string {
	switch t {
	case WidgetContainer:
		return "container"
	case WidgetText:
		return "text"
	case WidgetBox:
		return "box"
	default:
		return "unknown"
	}
}

// parseWidgetType maps a layout-file type name to a WidgetType. An empty name
// is a container.
func parseWidgetType(s string) (WidgetType, bool) {
	switch strings.ToLower(s) {
	case "", "container":
		return WidgetContainer, true
	case "text":
		return WidgetText, true
	case "box":
		return WidgetBox, true
	}
	return 0, false
}

// ChangeAction identifies what happened to an observable collection.
type ChangeAction uint8

const (
	ChangeAdd     ChangeAction = iota // Item inserted at Index
	ChangeRemove                      // Old removed from Index
	ChangeReplace                     // Old at Index replaced by Item
	ChangeMove                        // Item moved from OldIndex to Index
	ChangeReset                       // contents replaced wholesale
)

// String returns the action name.
func (a ChangeAction) String() string {
	switch a {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeReplace:
		return "replace"
	case ChangeMove:
		return "move"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// CollectionChangedArgs describes a change to an observable collection. It is
// passed unmodified from the mutation site to every interested ViewBinding.
type CollectionChangedArgs struct {
	Action   ChangeAction
	Index    int
	OldIndex int // valid for ChangeMove
	Item     any // valid for ChangeAdd, ChangeReplace, ChangeMove
	Old      any // valid for ChangeRemove, ChangeReplace
}

// NotificationKind distinguishes property and collection notifications.
type NotificationKind uint8

const (
	NotifyProperty   NotificationKind = iota // NotifyPropertyChanged
	NotifyCollection                         // NotifyCollectionChanged
)

// Notification is what a Controller emits to its NotificationSink after views
// and hooks have run.
type Notification struct {
	Kind NotificationKind
	Name string
	Args CollectionChangedArgs // zero for NotifyProperty
}

// NotificationSink is the interface for optional integration with systems
// outside the widget tree, such as an ECS world.
type NotificationSink interface {
	EmitNotification(n Notification)
}

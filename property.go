package mvc

import "reflect"

// Property describes one bindable value declared on a controller or view.
type Property struct {
	// Name is the binding-name the property is published under.
	Name string
	// Type is the declared value type.
	Type reflect.Type
	// Owner is the type that declared the property. RemoveType strips
	// properties by owner.
	Owner reflect.Type

	get func() any
	set func(any) bool
}

// ReadOnly reports whether the property has no setter.
func (p Property) ReadOnly() bool {
	return p.set == nil
}

// PropertyDeclarer is implemented by controllers and views. DeclareProperties
// registers every bindable value with Declare or DeclareFunc.
type PropertyDeclarer interface {
	DeclareProperties(p *PropertyIndex)
}

// PropertyIndex maps property names to typed accessors. It is built once per
// instance by explicit declaration and never changes afterwards except through
// RemoveType.
type PropertyIndex struct {
	props  []Property
	byName map[string]int
}

// NewPropertyIndex returns an empty index.
func NewPropertyIndex() *PropertyIndex {
	return &PropertyIndex{byName: make(map[string]int)}
}

// IndexProperties builds the index of everything d declares.
func IndexProperties(d PropertyDeclarer) *PropertyIndex {
	idx := NewPropertyIndex()
	if d != nil {
		d.DeclareProperties(idx)
	}
	return idx
}

// Declare registers the field behind ptr as property name, declared by owner.
// Declaring a name again replaces the earlier accessor in place, the way an
// embedding type's field shadows an embedded one.
func Declare[T any](p *PropertyIndex, owner any, name string, ptr *T) {
	if ptr == nil {
		panic("mvc: Declare with nil pointer for " + name)
	}
	p.add(Property{
		Name:  name,
		Type:  reflect.TypeFor[T](),
		Owner: ownerType(owner),
		get:   func() any { return *ptr },
		set: func(v any) bool {
			tv, ok := v.(T)
			if !ok {
				return false
			}
			*ptr = tv
			return true
		},
	})
}

// DeclareFunc registers a computed property. A nil set makes it read-only.
func DeclareFunc[T any](p *PropertyIndex, owner any, name string, get func() T, set func(T)) {
	if get == nil {
		panic("mvc: DeclareFunc with nil getter for " + name)
	}
	prop := Property{
		Name:  name,
		Type:  reflect.TypeFor[T](),
		Owner: ownerType(owner),
		get:   func() any { return get() },
	}
	if set != nil {
		prop.set = func(v any) bool {
			tv, ok := v.(T)
			if !ok {
				return false
			}
			set(tv)
			return true
		}
	}
	p.add(prop)
}

func ownerType(owner any) reflect.Type {
	if t, ok := owner.(reflect.Type); ok {
		return t
	}
	return reflect.TypeOf(owner)
}

func (p *PropertyIndex) add(prop Property) {
	if i, ok := p.byName[prop.Name]; ok {
		p.props[i] = prop
		return
	}
	p.byName[prop.Name] = len(p.props)
	p.props = append(p.props, prop)
}

// RemoveType removes every property whose Owner is owner.
func (p *PropertyIndex) RemoveType(owner reflect.Type) {
	kept := p.props[:0]
	for _, prop := range p.props {
		if prop.Owner != owner {
			kept = append(kept, prop)
		}
	}
	clear(p.props[len(kept):])
	p.props = kept
	clear(p.byName)
	for i, prop := range p.props {
		p.byName[prop.Name] = i
	}
}

// Lookup returns the property registered under name.
func (p *PropertyIndex) Lookup(name string) (Property, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Property{}, false
	}
	return p.props[i], true
}

// Type returns the declared type of name, or nil when name is not bindable.
func (p *PropertyIndex) Type(name string) reflect.Type {
	i, ok := p.byName[name]
	if !ok {
		return nil
	}
	return p.props[i].Type
}

// Get returns the current value of name.
func (p *PropertyIndex) Get(name string) (any, bool) {
	i, ok := p.byName[name]
	if !ok {
		return nil, false
	}
	return p.props[i].get(), true
}

// Set assigns v to name. It reports false for unknown names, read-only
// properties, and values of the wrong type.
func (p *PropertyIndex) Set(name string, v any) bool {
	i, ok := p.byName[name]
	if !ok || p.props[i].set == nil {
		return false
	}
	return p.props[i].set(v)
}

// Names returns property names in declaration order.
func (p *PropertyIndex) Names() []string {
	names := make([]string, len(p.props))
	for i, prop := range p.props {
		names[i] = prop.Name
	}
	return names
}

// Len returns the number of properties.
func (p *PropertyIndex) Len() int {
	return len(p.props)
}

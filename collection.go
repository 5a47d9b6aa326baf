package mvc

// Collection is implemented by observable collections bound to views.
type Collection interface {
	Len() int
	Item(i int) any
}

// List is an observable slice. Once attached to a Controller, every mutation
// is reported through NotifyCollectionChanged under the attached name.
type List[T any] struct {
	items []T
	ctrl  *Controller
	name  string
}

// NewList creates a list holding items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: items}
}

// Attach routes change notifications to c under name.
func (l *List[T]) Attach(c *Controller, name string) *List[T] {
	l.ctrl = c
	l.name = name
	return l
}

func (l *List[T]) notify(args CollectionChangedArgs) {
	if l.ctrl != nil {
		l.ctrl.NotifyCollectionChanged(l.name, args)
	}
}

// Items returns all items. The returned slice MUST NOT be mutated by the caller.
func (l *List[T]) Items() []T {
	return l.items
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at index i, or the zero value if out of bounds.
func (l *List[T]) At(i int) T {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero
	}
	return l.items[i]
}

// Item implements Collection.
func (l *List[T]) Item(i int) any {
	return l.At(i)
}

// Add appends an item.
func (l *List[T]) Add(item T) *List[T] {
	l.items = append(l.items, item)
	l.notify(CollectionChangedArgs{Action: ChangeAdd, Index: len(l.items) - 1, Item: item})
	return l
}

// Insert inserts an item at index i, clamped to the list bounds.
func (l *List[T]) Insert(i int, item T) *List[T] {
	i = max(0, min(i, len(l.items)))
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.notify(CollectionChangedArgs{Action: ChangeAdd, Index: i, Item: item})
	return l
}

// RemoveAt removes the item at index i. Out-of-range indexes are ignored.
func (l *List[T]) RemoveAt(i int) *List[T] {
	if i < 0 || i >= len(l.items) {
		return l
	}
	old := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	l.notify(CollectionChangedArgs{Action: ChangeRemove, Index: i, Old: old})
	return l
}

// Replace sets the item at index i. Out-of-range indexes are ignored.
func (l *List[T]) Replace(i int, item T) *List[T] {
	if i < 0 || i >= len(l.items) {
		return l
	}
	old := l.items[i]
	l.items[i] = item
	l.notify(CollectionChangedArgs{Action: ChangeReplace, Index: i, Item: item, Old: old})
	return l
}

// Move moves the item at from to index to. Out-of-range indexes are ignored.
func (l *List[T]) Move(from, to int) *List[T] {
	n := len(l.items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return l
	}
	item := l.items[from]
	if from < to {
		copy(l.items[from:], l.items[from+1:to+1])
	} else {
		copy(l.items[to+1:], l.items[to:from])
	}
	l.items[to] = item
	l.notify(CollectionChangedArgs{Action: ChangeMove, Index: to, OldIndex: from, Item: item})
	return l
}

// Reset replaces all items.
func (l *List[T]) Reset(items []T) *List[T] {
	l.items = items
	l.notify(CollectionChangedArgs{Action: ChangeReset})
	return l
}

// Clear removes all items.
func (l *List[T]) Clear() *List[T] {
	clear(l.items)
	l.items = l.items[:0]
	l.notify(CollectionChangedArgs{Action: ChangeReset})
	return l
}

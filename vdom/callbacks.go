package vdom

// releaser is satisfied by js.Func; kept abstract so the bookkeeping builds natively.
type releaser interface {
	Release()
}

// callbackRegistry remembers the event callbacks attached under each mount
// selector so they can be released before that DOM subtree is discarded.
type callbackRegistry[T releaser] struct {
	bySelector map[string][]T
}

func (c *callbackRegistry[T]) add(selector string, fns ...T) {
	if len(fns) == 0 {
		return
	}
	if c.bySelector == nil {
		c.bySelector = make(map[string][]T)
	}
	c.bySelector[selector] = append(c.bySelector[selector], fns...)
}

// release releases and forgets every callback under selector and reports how many there were.
func (c *callbackRegistry[T]) release(selector string) int {
	fns := c.bySelector[selector]
	for _, fn := range fns {
		fn.Release()
	}
	delete(c.bySelector, selector)
	return len(fns)
}

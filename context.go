package shunting

// A Context holds the variable bindings an Expression is evaluated
// against. It is owned by the caller and never modified by evaluation,
// so a single compiled Expression can be evaluated concurrently as long
// as each goroutine uses its own Context. Mutating a shared Context
// while another goroutine evaluates requires external locking.
type Context struct {
	vars map[string]float64
}

// NewContext creates a Context with no variable bound.
func NewContext() *Context {
	return &Context{vars: make(map[string]float64)}
}

// Set binds a value to a variable name, overwriting any previous
// binding.
func (c *Context) Set(name string, value float64) {
	c.vars[name] = value
}

// Get returns the value bound to name, and whether such a binding
// exists.
func (c *Context) Get(name string) (float64, bool) {
	value, ok := c.vars[name]
	return value, ok
}

// Delete removes the binding for name if it exists.
func (c *Context) Delete(name string) {
	delete(c.vars, name)
}

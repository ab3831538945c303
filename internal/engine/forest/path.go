package forest

// Path records the canonical keys visited while building one tree.
// Siblings share the same Path, and keys are never removed.
type Path struct {
	keys []string
	seen map[string]struct{}
}

// NewPath returns an empty Path.
func NewPath() *Path {
	return &Path{seen: make(map[string]struct{})}
}

// Push records key as visited.
func (p *Path) Push(key string) {
	if _, ok := p.seen[key]; ok {
		return
	}
	p.seen[key] = struct{}{}
	p.keys = append(p.keys, key)
}

// Contains reports whether key has been visited.
func (p *Path) Contains(key string) bool {
	_, ok := p.seen[key]
	return ok
}

// Keys returns the visited keys in visiting order.
func (p *Path) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of visited keys.
func (p *Path) Len() int {
	return len(p.keys)
}

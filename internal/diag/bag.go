package diag

// Bag is an ordered accumulator of diagnostics. Items keep the order in
// which they were added.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add appends d unless the bag is full. It reports whether d was kept.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	if b == nil {
		return 0
	}
	return b.max
}

// HasErrors reports whether any diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	return b.has(SevError)
}

// HasWarnings reports whether any diagnostic has Severity >= Warning.
func (b *Bag) HasWarnings() bool {
	return b.has(SevWarning)
}

func (b *Bag) has(min Severity) bool {
	if b == nil {
		return false
	}
	for i := range b.items {
		if b.items[i].Severity >= min {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Items returns the backing slice. Callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	if b == nil {
		return nil
	}
	return b.items
}

// Messages returns the messages of every diagnostic with exactly sev, in
// insertion order. The result is never nil.
func (b *Bag) Messages(sev Severity) []string {
	out := make([]string, 0, b.Len())
	for _, d := range b.Items() {
		if d.Severity == sev {
			out = append(out, d.Message)
		}
	}
	return out
}

// Without returns a copy of the bag with every diagnostic of severity sev
// removed.
func (b *Bag) Without(sev Severity) *Bag {
	out := NewBag(int(b.Cap()))
	for _, d := range b.Items() {
		if d.Severity != sev {
			out.items = append(out.items, d)
		}
	}
	return out
}

package phys

// Quantity is a numeric value paired with an optional unit string.
// A zero Unit means the value is assumed to be in canonical SI already.
type Quantity struct {
	Value float64
	Unit  string
}

// QuantitySet maps symbolic names to quantities. It is built once by the
// argument parser and never mutated afterwards.
type QuantitySet map[string]Quantity

func (s QuantitySet) Get(name string) (Quantity, bool) {
	q, ok := s[name]
	return q, ok
}

func (s QuantitySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the symbol names present in the set, in no particular order.
func (s QuantitySet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

package rotation

// StateTable maps modern string-keyed block states to orientations. The
// flattened format replaced the 4-bit data value with named properties
// ("facing", "axis", "half", ...) whose meaning is per-block and does not
// follow the legacy bit rules, so entries must be registered explicitly —
// an unmapped block resolves to the identity rather than a guess.
type StateTable map[string]func(props map[string]string) Orientation

// Determine resolves a modern block state against the table.
func (t StateTable) Determine(name string, props map[string]string) Orientation {
	fn, ok := t[name]
	if !ok {
		return Identity
	}
	return fn(props)
}

// Register adds or replaces a mapping for one block name.
func (t StateTable) Register(name string, fn func(props map[string]string) Orientation) {
	t[name] = fn
}

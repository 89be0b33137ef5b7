package symtab

// interner assigns small dense integer ids to symbol strings so that
// per-scope active-variable and active-hypothesis membership can be
// tracked with a bitset rather than a map. Ids are stable for the
// lifetime of a session: once assigned, a name never changes id.
type interner struct {
	ids   map[string]uint
	names []string
}

func newInterner() *interner {
	return &interner{ids: make(map[string]uint)}
}

// intern returns the id for name, assigning a fresh one if this is the
// first time name has been seen.
func (in *interner) intern(name string) uint {
	if id, ok := in.ids[name]; ok {
		return id
	}

	id := uint(len(in.names))
	in.ids[name] = id
	in.names = append(in.names, name)

	return id
}

// lookup returns the id already assigned to name, if any.
func (in *interner) lookup(name string) (uint, bool) {
	id, ok := in.ids[name]
	return id, ok
}

// name returns the string an id was interned from.
func (in *interner) name(id uint) string {
	return in.names[id]
}

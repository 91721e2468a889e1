package query

// Merge returns a new map with add entries applied on top of base.
//
// When dup is false the value of add replaces the base value of the same key.
// When dup is true and the key is already present, the values are concatenated
// into a sequence, base values first (see [Value.Concat]).
// Replaced keys keep their base position, new keys are appended in add order.
// Neither base nor add is modified.
func Merge(base, add *Map, dup bool) *Map {
	res := base.Clone()
	for k, v := range add.All() {
		if cur, ok := res.Get(k); ok && dup {
			res.Set(k, cur.Concat(v))
			continue
		}
		res.Set(k, v.clone())
	}
	return res
}

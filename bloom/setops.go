package bloom

// compatible reports whether f and o share bitset geometry and hash count.
func (f *Filter) compatible(o *Filter) bool {
	return f.mBits == o.mBits && f.k == o.k
}

// Union returns a new filter whose bitset is the bitwise OR of f and o and
// whose confirmation record is the set union of theirs.
//
// The result is exactly the filter that adding every item of both operands
// to one filter would have produced. Operands must share capacity and hash
// count.
func (f *Filter) Union(o *Filter) (*Filter, error) {
	if !f.compatible(o) {
		return nil, ErrIncompatibleFilter
	}
	out := f.Clone()
	out.bits.InPlaceUnion(o.bits)
	for s := range o.added {
		out.added[s] = struct{}{}
	}
	return out, nil
}

// UnionWith is the in-place form of Union.
func (f *Filter) UnionWith(o *Filter) error {
	if !f.compatible(o) {
		return ErrIncompatibleFilter
	}
	f.bits.InPlaceUnion(o.bits)
	for s := range o.added {
		f.added[s] = struct{}{}
	}
	return nil
}

// Intersect returns a new filter whose bitset is the bitwise AND of f and o
// and whose confirmation record is the set intersection of theirs.
//
// An item definitely absent from either operand is definitely absent from
// the result; items outside the true intersection may still report "maybe
// present". Operands must share capacity and hash count.
func (f *Filter) Intersect(o *Filter) (*Filter, error) {
	if !f.compatible(o) {
		return nil, ErrIncompatibleFilter
	}
	out := f.Clone()
	out.bits.InPlaceIntersection(o.bits)
	for s := range f.added {
		if _, ok := o.added[s]; !ok {
			delete(out.added, s)
		}
	}
	return out, nil
}

// IntersectWith is the in-place form of Intersect.
func (f *Filter) IntersectWith(o *Filter) error {
	if !f.compatible(o) {
		return ErrIncompatibleFilter
	}
	f.bits.InPlaceIntersection(o.bits)
	for s := range f.added {
		if _, ok := o.added[s]; !ok {
			delete(f.added, s)
		}
	}
	return nil
}

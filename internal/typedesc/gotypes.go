package typedesc

import (
	"go/types"
)

// Mapper converts go/types types into descriptors.
//
// Pkg is the package the types are read from; names declared in it print
// unqualified. Self is the class under test; Object descriptors of that type
// carry the Self marker.
type Mapper struct {
	Pkg  *types.Package
	Self *types.TypeName
}

var errorType = types.Universe.Lookup("error").Type()

// Map converts t into a descriptor.
func (m Mapper) Map(t types.Type) Type {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Basic:
		return basic(tt)

	case *types.Named:
		return m.named(tt)

	case *types.Pointer, *types.Slice, *types.Map:
		return Union{
			Members: []Type{NullLike{Kind: Null}, m.elem(tt)},
			Label:   m.label(tt),
		}

	case *types.Array, *types.Struct:
		return Object{Label: m.label(tt)}

	case *types.Interface:
		return m.iface(tt, "", "")
	}

	// Signatures, channels, type parameters and tuples.
	return Opaque{Name: m.label(t)}
}

// ReturnType describes what calling a function with signature sig produces.
// A trailing error result is not part of the value: it is how the function
// reports failure. No results map to void and several results are opaque.
func (m Mapper) ReturnType(sig *types.Signature) Type {
	res := sig.Results()
	n := res.Len()
	if n > 0 && types.Identical(res.At(n-1).Type(), errorType) {
		n--
	}
	switch n {
	case 0:
		return NullLike{Kind: Void}
	case 1:
		return m.Map(res.At(0).Type())
	}
	return Opaque{Name: m.label(res)}
}

// elem maps the referent of a pointer, slice or map. Pointers keep the
// element descriptor so *int still checks as a number; slices and maps are
// objects in their own right.
func (m Mapper) elem(t types.Type) Type {
	if p, ok := t.(*types.Pointer); ok {
		inner := m.Map(p.Elem())
		if u, ok := inner.(Union); ok && len(u.Members) == 2 {
			if _, null := u.Members[0].(NullLike); null {
				return u.Members[1]
			}
		}
		return inner
	}
	return Object{Label: m.label(t)}
}

func (m Mapper) named(n *types.Named) Type {
	label := m.label(n)

	switch u := n.Underlying().(type) {
	case *types.Basic:
		if p, ok := basic(u).(Primitive); ok {
			p.Label = label
			return p
		}
		return Opaque{Name: label}

	case *types.Interface:
		return m.iface(u, m.symbol(n), label)

	case *types.Struct, *types.Array:
		return m.object(n, label)

	case *types.Slice, *types.Map, *types.Pointer:
		return Union{
			Members: []Type{NullLike{Kind: Null}, m.object(n, label)},
			Label:   label,
		}
	}

	return Opaque{Name: label}
}

func (m Mapper) object(n *types.Named, label string) Object {
	return Object{
		Symbol: m.symbol(n),
		Self:   m.Self != nil && n.Obj() == m.Self,
		Label:  label,
	}
}

// iface maps an interface. The empty interface is Any; any other interface
// admits nil plus values implementing it. An interface made only of two or
// more embedded interfaces is the intersection of them.
func (m Mapper) iface(it *types.Interface, symbol, label string) Type {
	if it.Empty() {
		return Any{}
	}
	if label == "" {
		label = m.label(it)
	}

	var value Type = Object{Symbol: symbol, Interface: true, Label: label}
	if it.NumExplicitMethods() == 0 && it.NumEmbeddeds() >= 2 {
		members := make([]Type, 0, it.NumEmbeddeds())
		for i := 0; i < it.NumEmbeddeds(); i++ {
			emb := it.EmbeddedType(i)
			if named, ok := types.Unalias(emb).(*types.Named); ok {
				members = append(members, Object{Symbol: m.symbol(named), Interface: true, Label: m.label(named)})
				continue
			}
			members = append(members, Object{Interface: true, Label: m.label(emb)})
		}
		value = Intersection{Members: members, Label: label}
	}

	return Union{Members: []Type{NullLike{Kind: Null}, value}, Label: label}
}

func (m Mapper) symbol(n *types.Named) string {
	obj := n.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

// label spells t the way it reads in source: names from Pkg unqualified,
// others qualified by package name.
func (m Mapper) label(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == m.Pkg {
			return ""
		}
		return p.Name()
	})
}

func basic(b *types.Basic) Type {
	info := b.Info()
	switch {
	case b.Kind() == types.UntypedNil:
		return NullLike{Kind: Null}
	case info&types.IsString != 0:
		return Primitive{Kind: String}
	case info&types.IsBoolean != 0:
		return Primitive{Kind: Boolean}
	case info&(types.IsInteger|types.IsFloat) != 0:
		return Primitive{Kind: Number}
	}
	return Opaque{Name: b.Name()}
}

package java

// scope is the lexical context of a render call: the enclosing types and the
// type variables visible at that point. Values are immutable; entering a
// type or generic method makes a new scope that links to its parent.
type scope struct {
	parent *scope

	// typeSpec is set for type frames.
	typeSpec *TypeSpec
	// header frames cover a type's declaration line, where its nested types
	// are not yet visible.
	header bool

	typeVariables []string
}

func (s *scope) withType(t *TypeSpec) *scope {
	return &scope{parent: s, typeSpec: t}
}

func (s *scope) withHeader(t *TypeSpec) *scope {
	return &scope{parent: s, typeSpec: t, header: true}
}

func (s *scope) withTypeVariables(vars []TypeName) *scope {
	if len(vars) == 0 {
		return s
	}
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		if tv, ok := WithoutAnnotations(v).(*TypeVariableName); ok {
			names = append(names, tv.name)
		}
	}
	return &scope{parent: s, typeVariables: names}
}

func (s *scope) hasTypeVariable(name string) bool {
	for n := s; n != nil; n = n.parent {
		for _, v := range n.typeVariables {
			if v == name {
				return true
			}
		}
	}
	return false
}

// types lists the enclosing type frames, outermost first.
func (s *scope) types() []*scope {
	var frames []*scope
	for n := s; n != nil; n = n.parent {
		if n.typeSpec != nil {
			frames = append(frames, n)
		}
	}
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return frames
}

package types

// Oracle decides assignability between two Candy types. The lowering core
// never makes this decision itself; it treats the oracle as an injected
// collaborator.
type Oracle interface {
	IsAssignableTo(from, to Type) bool
}

// StructuralOracle is the default Oracle: a hand-written compatibility
// cascade over the Type variants in this package, rather than a
// unification algorithm.
type StructuralOracle struct{}

var _ Oracle = StructuralOracle{}

var structural = StructuralOracle{}

// IsAssignableTo reports whether a value of type from may be used where a
// value of type to is expected.
func (StructuralOracle) IsAssignableTo(from, to Type) bool {
	if from == nil || to == nil {
		return false
	}
	if to.Kind() == KindAny {
		return true
	}
	if from.Kind() == KindNever {
		return true
	}
	if from.Kind() == KindUnion {
		for _, m := range from.(*UnionType).Members {
			if !structural.IsAssignableTo(m, to) {
				return false
			}
		}
		return true
	}
	if to.Kind() == KindUnion {
		for _, m := range to.(*UnionType).Members {
			if structural.IsAssignableTo(from, m) {
				return true
			}
		}
		return false
	}
	if to.Kind() == KindIntersection {
		for _, m := range to.(*IntersectionType).Members {
			if !structural.IsAssignableTo(from, m) {
				return false
			}
		}
		return true
	}
	if from.Kind() == KindIntersection {
		for _, m := range from.(*IntersectionType).Members {
			if structural.IsAssignableTo(m, to) {
				return true
			}
		}
		return false
	}

	if equalKindAndShape(from, to) {
		return true
	}

	// Int and Float both widen to the umbrella Number type.
	if to.Kind() == KindNumber && (from.Kind() == KindInt || from.Kind() == KindFloat || from.Kind() == KindNumber) {
		return true
	}

	if fromFn, ok := from.(*FunctionType); ok {
		if toFn, ok := to.(*FunctionType); ok {
			return functionAssignable(fromFn, toFn)
		}
		return false
	}

	if fromTuple, ok := from.(*TupleType); ok {
		if toTuple, ok := to.(*TupleType); ok {
			return tupleAssignable(fromTuple, toTuple)
		}
		return false
	}

	if fromNamed, ok := from.(*NamedType); ok {
		if toNamed, ok := to.(*NamedType); ok {
			return namedAssignable(fromNamed, toNamed)
		}
		return false
	}

	return false
}

func equalKindAndShape(from, to Type) bool {
	if from.Kind() != to.Kind() {
		return false
	}
	switch from.Kind() {
	case KindUnit, KindNever, KindBool, KindInt, KindFloat, KindNumber, KindString, KindAny, KindThis:
		return true
	case KindTypeParam:
		return from.(*TypeParameterType).Name == to.(*TypeParameterType).Name
	case KindReflection:
		return from.(*ReflectionType).DeclarationName == to.(*ReflectionType).DeclarationName
	default:
		return false
	}
}

func functionAssignable(from, to *FunctionType) bool {
	if (from.Receiver == nil) != (to.Receiver == nil) {
		return false
	}
	if from.Receiver != nil && !equalType(from.Receiver, to.Receiver) {
		return false
	}
	if len(from.Parameters) != len(to.Parameters) {
		return false
	}
	// Parameters are contravariant: the supplied function must accept at
	// least what the expected signature will pass it.
	for i := range from.Parameters {
		if !structural.IsAssignableTo(to.Parameters[i], from.Parameters[i]) {
			return false
		}
	}
	// Return type is covariant.
	return structural.IsAssignableTo(from.Return, to.Return)
}

func tupleAssignable(from, to *TupleType) bool {
	if len(from.Elements) != len(to.Elements) {
		return false
	}
	for i := range from.Elements {
		if !structural.IsAssignableTo(from.Elements[i], to.Elements[i]) {
			return false
		}
	}
	return true
}

func namedAssignable(from, to *NamedType) bool {
	if from.Module != to.Module || from.Name != to.Name {
		return false
	}
	if len(from.Arguments) != len(to.Arguments) {
		return false
	}
	for i := range from.Arguments {
		if !equalType(from.Arguments[i], to.Arguments[i]) {
			return false
		}
	}
	return true
}

func equalType(a, b Type) bool {
	return structural.IsAssignableTo(a, b) && structural.IsAssignableTo(b, a)
}

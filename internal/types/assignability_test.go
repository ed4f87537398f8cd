package types

import "testing"

func TestPrimitivesAreAssignableOnlyToThemselvesAndAny(t *testing.T) {
	oracle := StructuralOracle{}
	if !oracle.IsAssignableTo(Bool, Bool) {
		t.Fatalf("Bool must be assignable to itself")
	}
	if oracle.IsAssignableTo(Bool, Int) {
		t.Fatalf("Bool must not be assignable to Int")
	}
	if !oracle.IsAssignableTo(Bool, Any) {
		t.Fatalf("anything must be assignable to Any")
	}
}

func TestNeverIsAssignableToEverything(t *testing.T) {
	oracle := StructuralOracle{}
	for _, to := range []Type{Unit, Bool, Int, String, &NamedType{Name: "Foo"}} {
		if !oracle.IsAssignableTo(Never, to) {
			t.Fatalf("Never must be assignable to %s", to)
		}
	}
}

func TestIntAndFloatWidenToNumber(t *testing.T) {
	oracle := StructuralOracle{}
	if !oracle.IsAssignableTo(Int, Number) {
		t.Fatalf("Int must widen to Number")
	}
	if !oracle.IsAssignableTo(Float, Number) {
		t.Fatalf("Float must widen to Number")
	}
	if oracle.IsAssignableTo(Number, Int) {
		t.Fatalf("Number must not narrow to Int")
	}
}

func TestUnionAssignabilityIsMemberwise(t *testing.T) {
	oracle := StructuralOracle{}
	union := &UnionType{Members: []Type{Int, String}}

	if !oracle.IsAssignableTo(Int, union) {
		t.Fatalf("a member type must be assignable to its union")
	}
	if oracle.IsAssignableTo(Bool, union) {
		t.Fatalf("a non-member type must not be assignable to the union")
	}
	if !oracle.IsAssignableTo(union, union) {
		t.Fatalf("a union is assignable to itself when every member matches")
	}

	widerUnion := &UnionType{Members: []Type{Int, String, Bool}}
	if !oracle.IsAssignableTo(union, widerUnion) {
		t.Fatalf("a narrower union must be assignable to a wider union covering every member")
	}
}

func TestFunctionAssignabilityIsContravariantInParametersCovariantInReturn(t *testing.T) {
	oracle := StructuralOracle{}
	narrow := &FunctionType{Parameters: []Type{Number}, Return: Int}
	wide := &FunctionType{Parameters: []Type{Int}, Return: Number}

	// A function accepting Number and returning Int satisfies a context
	// expecting a function that accepts Int and returns Number: it accepts
	// at least as much as required, and returns no less specifically than
	// promised.
	if !oracle.IsAssignableTo(narrow, wide) {
		t.Fatalf("expected the Number-param/Int-return function to satisfy the Int-param/Number-return expectation")
	}
	if oracle.IsAssignableTo(wide, narrow) {
		t.Fatalf("expected the reverse assignment to fail")
	}
}

func TestNamedTypeAssignabilityRequiresMatchingArguments(t *testing.T) {
	oracle := StructuralOracle{}
	boxInt := &NamedType{Name: "Box", Arguments: []Type{Int}}
	boxInt2 := &NamedType{Name: "Box", Arguments: []Type{Int}}
	boxString := &NamedType{Name: "Box", Arguments: []Type{String}}

	if !oracle.IsAssignableTo(boxInt, boxInt2) {
		t.Fatalf("expected identically-parameterized named types to be assignable")
	}
	if oracle.IsAssignableTo(boxInt, boxString) {
		t.Fatalf("expected differently-parameterized named types to be rejected")
	}
}

func TestNilTypesAreNeverAssignable(t *testing.T) {
	oracle := StructuralOracle{}
	if oracle.IsAssignableTo(nil, Int) || oracle.IsAssignableTo(Int, nil) {
		t.Fatalf("a nil type must never participate in an assignability decision")
	}
}

package lowering

import (
	"testing"

	"github.com/quag/candy/internal/diag"
)

func TestMergeAllCollectsAllErrorsWithoutShortCircuiting(t *testing.T) {
	results := []Result[int]{
		Ok(1),
		Fail[int](diag.New(diag.InvalidExpressionType, diag.Location{}, "bad one")),
		Ok(2),
		Fail[int](diag.New(diag.InvalidExpressionType, diag.Location{}, "bad two")),
		Fail[int](diag.New(diag.InvalidExpressionType, diag.Location{}, "bad three")),
	}

	merged := MergeAll(results)
	if !merged.IsError() {
		t.Fatalf("expected an error result")
	}
	if len(merged.Errors) != 3 {
		t.Fatalf("expected all three sibling errors collected, got %d: %v", len(merged.Errors), merged.Errors)
	}
}

func TestMergeAllSucceedsWhenEveryElementSucceeds(t *testing.T) {
	merged := MergeAll([]Result[int]{Ok(1), Ok(2), Ok(3)})
	if merged.IsError() {
		t.Fatalf("unexpected errors: %v", merged.Errors)
	}
	if len(merged.Value) != 3 || merged.Value[0] != 1 || merged.Value[2] != 3 {
		t.Fatalf("unexpected values: %v", merged.Value)
	}
}

func TestMergeFlattenConcatenatesSuccessLists(t *testing.T) {
	merged := MergeFlatten([]Result[int]{Ok([]int{1, 2}), Ok([]int{3}), Ok[[]int](nil)})
	if merged.IsError() {
		t.Fatalf("unexpected errors: %v", merged.Errors)
	}
	if len(merged.Value) != 3 {
		t.Fatalf("expected flattened length 3, got %v", merged.Value)
	}
}

func TestMergeFlattenCollectsErrorsAcrossAllElements(t *testing.T) {
	results := []Result[[]int]{
		Ok([]int{1}),
		Fail[[]int](diag.New(diag.InvalidExpressionType, diag.Location{}, "one")),
		Fail[[]int](diag.New(diag.InvalidExpressionType, diag.Location{}, "two")),
	}
	merged := MergeFlatten(results)
	if !merged.IsError() {
		t.Fatalf("expected an error result")
	}
	if len(merged.Errors) != 2 {
		t.Fatalf("expected both errors collected, got %d", len(merged.Errors))
	}
}

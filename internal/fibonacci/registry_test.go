package fibonacci

import (
	"context"
	"sort"
	"testing"

	apperrors "github.com/agbru/numlab/internal/errors"
)

func TestDefaultFactory_ListsStandardVariants(t *testing.T) {
	factory := NewDefaultFactory()
	names := factory.List()

	if !sort.StringsAreSorted(names) {
		t.Errorf("List() = %v, want sorted order", names)
	}

	for _, want := range []string{"recursive", "iterative", "sequence", "cached", "matrix", "binet", "binet-approx"} {
		if !factory.Has(want) {
			t.Errorf("Has(%q) = false, want true", want)
		}
	}
}

func TestDefaultFactory_GetCachesInstances(t *testing.T) {
	factory := NewDefaultFactory()

	first, err := factory.Get("iterative")
	if err != nil {
		t.Fatalf("Get(iterative): %v", err)
	}
	second, err := factory.Get("iterative")
	if err != nil {
		t.Fatalf("Get(iterative): %v", err)
	}
	if first != second {
		t.Error("Get returned distinct instances, want the cached one")
	}

	fresh, err := factory.Create("iterative")
	if err != nil {
		t.Fatalf("Create(iterative): %v", err)
	}
	if fresh == first {
		t.Error("Create returned the cached instance, want a fresh one")
	}
}

func TestDefaultFactory_UnknownName(t *testing.T) {
	factory := NewDefaultFactory()
	if _, err := factory.Get("nonexistent"); err == nil {
		t.Error("Get(nonexistent) succeeded, want error")
	}
	if _, err := factory.Create("nonexistent"); err == nil {
		t.Error("Create(nonexistent) succeeded, want error")
	}
}

func TestDefaultFactory_SetRecursionLimit(t *testing.T) {
	factory := NewDefaultFactory()
	factory.SetRecursionLimit(5)

	calc, err := factory.Get("recursive")
	if err != nil {
		t.Fatalf("Get(recursive): %v", err)
	}

	if _, err := calc.Calculate(context.Background(), nil, 0, 5); err != nil {
		t.Errorf("F(5) with limit 5: %v", err)
	}
	_, err = calc.Calculate(context.Background(), nil, 0, 6)
	if !apperrors.IsInvalidArgument(err) {
		t.Errorf("F(6) with limit 5 returned %v, want InvalidArgumentError", err)
	}
}

func TestDefaultFactory_GetAllReturnsCopy(t *testing.T) {
	factory := NewDefaultFactory()
	all := factory.GetAll()
	if len(all) != len(factory.List()) {
		t.Fatalf("GetAll() has %d entries, List() has %d", len(all), len(factory.List()))
	}

	delete(all, "iterative")
	if !factory.Has("iterative") {
		t.Error("mutating GetAll()'s map affected the factory")
	}
}

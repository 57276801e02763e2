package launcher

import (
	"sort"
	"testing"
)

func TestCategoriesSortedAndCopied(t *testing.T) {
	cats := Categories()
	if !sort.StringsAreSorted(cats) {
		t.Error("Categories() must be sorted")
	}
	if len(cats) != 22 {
		t.Errorf("Categories() returned %d entries, want 22", len(cats))
	}

	cats[0] = "mutated"
	if Categories()[0] == "mutated" {
		t.Error("Categories() must return a copy")
	}
}

func TestCategoriesWithExtras(t *testing.T) {
	cats := CategoriesWith([]string{"HamRadio", "Utility", "", "HamRadio"})
	if !sort.StringsAreSorted(cats) {
		t.Error("merged categories must be sorted")
	}
	if len(cats) != 23 {
		t.Errorf("merged categories has %d entries, want 23", len(cats))
	}

	count := 0
	for _, cat := range cats {
		if cat == "HamRadio" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("HamRadio appears %d times, want 1", count)
	}
}

func TestValidateCategories(t *testing.T) {
	if errs := ValidateCategories([]string{"Utility", "Development"}, nil); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	errs := ValidateCategories([]string{"Utility", "Nonsense"}, nil)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Field != "categories" {
		t.Errorf("Field = %q, want categories", errs[0].Field)
	}

	// Matching is case-sensitive.
	if errs := ValidateCategories([]string{"utility"}, nil); len(errs) != 1 {
		t.Errorf("lowercase category should not validate, got %v", errs)
	}

	// Extras extend the vocabulary.
	if errs := ValidateCategories([]string{"HamRadio"}, []string{"HamRadio"}); len(errs) != 0 {
		t.Errorf("configured extra should validate, got %v", errs)
	}
}

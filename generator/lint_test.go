package generator_test

import (
	"testing"

	"scriptweaver/generator"
)

func TestCheckSyntaxUnbalancedBraces(t *testing.T) {
	got := generator.CheckSyntax("{ { } ")
	if len(got) != 1 || got[0] != "Mismatched curly braces" {
		t.Fatalf("expected only the braces warning, got %v", got)
	}
}

func TestCheckSyntaxClean(t *testing.T) {
	got := generator.CheckSyntax("function ready() { if (x) { go(); } }")
	if len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
}

func TestCheckSyntaxParens(t *testing.T) {
	got := generator.CheckSyntax("call(a, b")
	if len(got) != 1 || got[0] != "Mismatched parentheses" {
		t.Fatalf("expected only the parens warning, got %v", got)
	}
}

func TestCheckSyntaxKeywordSpacing(t *testing.T) {
	got := generator.CheckSyntax("function(x) {} if(y) {}")
	want := []string{
		"Missing space after function keyword",
		"Missing space after if keyword",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("warning %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// Warnings follow check order: braces, parens, function spacing, if spacing.
func TestCheckSyntaxOrder(t *testing.T) {
	got := generator.CheckSyntax("if(x { function(")
	want := []string{
		"Mismatched curly braces",
		"Mismatched parentheses",
		"Missing space after function keyword",
		"Missing space after if keyword",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("warning %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// A mismatch split across snippet boundaries is caught because counting runs
// over the whole concatenated text.
func TestCheckSyntaxAggregateText(t *testing.T) {
	got := generator.CheckSyntax("block one {\n// boundary\n} }")
	if len(got) != 1 || got[0] != "Mismatched curly braces" {
		t.Fatalf("expected braces warning across boundary, got %v", got)
	}
}

package nickel

import "testing"

func TestDeepCopyIsIndependent(t *testing.T) {
	orig := NewList()
	orig.Children = []Node{NewInt(1), NewString("a")}

	cp := orig.DeepCopy()
	cp.Children[0].Integer = 999
	cp.Children = append(cp.Children, NewInt(2))

	if orig.Children[0].Integer != 1 {
		t.Fatalf("mutating the copy's child changed the original: %d", orig.Children[0].Integer)
	}
	if len(orig.Children) != 2 {
		t.Fatalf("appending to the copy changed the original's length: %d", len(orig.Children))
	}
}

func TestDeepCopyNested(t *testing.T) {
	inner := NewList()
	inner.Children = []Node{NewInt(1)}
	outer := NewList()
	outer.Children = []Node{inner}

	cp := outer.DeepCopy()
	cp.Children[0].Children[0].Integer = 42

	if outer.Children[0].Children[0].Integer != 1 {
		t.Fatalf("deep copy did not isolate nested children")
	}
}

func TestPositionalIndexParsing(t *testing.T) {
	n := NewName(":3")
	idx, err := n.PositionalIndex()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 3 {
		t.Fatalf("got %d, want 3", idx)
	}
}

func TestPositionalIndexRejectsNegative(t *testing.T) {
	n := NewName(":-1")
	_, err := n.PositionalIndex()
	if err == nil {
		t.Fatalf("expected an error for a negative positional index")
	}
	if _, ok := err.(*DomainError); !ok {
		t.Fatalf("want *DomainError, got %T", err)
	}
}

func TestPositionalIndexRejectsUnparsable(t *testing.T) {
	n := NewName(":abc")
	_, err := n.PositionalIndex()
	if err == nil {
		t.Fatalf("expected an error for an unparsable positional index")
	}
	if _, ok := err.(*ResolutionError); !ok {
		t.Fatalf("want *ResolutionError, got %T", err)
	}
}

func TestIsPositionalRef(t *testing.T) {
	if !NewName(":0").IsPositionalRef() {
		t.Fatalf("':0' should be a positional reference")
	}
	if NewName("foo").IsPositionalRef() {
		t.Fatalf("'foo' should not be a positional reference")
	}
	if NewName("").IsPositionalRef() {
		t.Fatalf("'' should not be a positional reference")
	}
}

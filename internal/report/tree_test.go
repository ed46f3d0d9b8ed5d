package report

import (
	"strings"
	"testing"
)

func TestTree_NestedRender(t *testing.T) {
	tree := New()
	tree.OpenBranch("root")
	tree.Leaf("Name", `"Speakers"`)
	tree.OpenBranch("child")
	tree.Leaf("IsActive", "true")
	tree.CloseBranch()
	tree.Leaf("After", "1")
	tree.CloseBranch()

	var b strings.Builder
	if err := tree.Flush(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "root\n" +
		"├─ Name: \"Speakers\"\n" +
		"├─ child\n" +
		"│  └─ IsActive: true\n" +
		"└─ After: 1\n"
	if b.String() != want {
		t.Errorf("rendered tree:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestTree_ChildIndentedUnderParent(t *testing.T) {
	tree := New()
	tree.OpenBranch("parent")
	tree.OpenBranch("child")
	tree.Leaf("k", "v")
	tree.CloseBranch()
	tree.CloseBranch()

	var b strings.Builder
	tree.Flush(&b)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	parentIndent := strings.Index(lines[1], "child")
	childIndent := strings.Index(lines[2], "k: v")
	if childIndent <= parentIndent {
		t.Errorf("child leaf not indented deeper than its branch: %q vs %q", lines[1], lines[2])
	}
}

func TestTree_FlushResets(t *testing.T) {
	tree := New()
	tree.OpenBranch("first")
	tree.CloseBranch()

	var b strings.Builder
	tree.Flush(&b)

	b.Reset()
	if err := tree.Flush(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "" {
		t.Errorf("expected empty output after reset, got %q", b.String())
	}
}

func TestTree_CloseWithoutOpenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unmatched CloseBranch")
		}
	}()
	New().CloseBranch()
}

func TestTree_MultipleRoots(t *testing.T) {
	tree := New()
	tree.OpenBranch("a")
	tree.CloseBranch()
	tree.OpenBranch("b")
	tree.CloseBranch()

	var b strings.Builder
	tree.Flush(&b)

	if b.String() != "a\nb\n" {
		t.Errorf("unexpected output %q", b.String())
	}
}

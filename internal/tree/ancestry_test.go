package tree

import (
	"errors"
	"testing"
)

func focusTree(t *testing.T) *Tree {
	return mustBuild(t,
		rec("init", 1, 1, 0),
		rec("sshd", 2, 2, 1),
		rec("cron", 3, 3, 1),
		rec("bash", 4, 4, 2),
		rec("vim", 5, 5, 4),
		rec("make", 6, 6, 4),
	)
}

func TestAncestry(t *testing.T) {
	chain, err := focusTree(t).Ancestry(5)
	if err != nil {
		t.Fatalf("Ancestry() error = %v", err)
	}
	var names []string
	for _, n := range chain {
		names = append(names, n.Name)
	}
	want := []string{"init", "sshd", "bash", "vim"}
	if len(names) != len(want) {
		t.Fatalf("Ancestry() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Ancestry() = %v, want %v", names, want)
		}
	}
}

func TestAncestryNotFound(t *testing.T) {
	if _, err := focusTree(t).Ancestry(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Ancestry() error = %v, want %v", err, ErrNotFound)
	}
}

func TestFocus(t *testing.T) {
	full := focusTree(t)
	before := Render(full, RenderOptions{})

	sub, err := full.Focus(4, false)
	if err != nil {
		t.Fatalf("Focus() error = %v", err)
	}
	if got, want := Render(sub, RenderOptions{}), "bash--+--vim\n       --make\n"; got != want {
		t.Fatalf("Focus(4, false) =\n%s\nwant\n%s", got, want)
	}
	if sub.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", sub.Len())
	}

	withParents, err := full.Focus(4, true)
	if err != nil {
		t.Fatalf("Focus() error = %v", err)
	}
	want := "init-----sshd-----bash--+--vim\n" +
		"                         --make\n"
	if got := Render(withParents, RenderOptions{}); got != want {
		t.Fatalf("Focus(4, true) =\n%s\nwant\n%s", got, want)
	}

	if after := Render(full, RenderOptions{}); after != before {
		t.Fatalf("Focus modified the source tree:\n%s", after)
	}
}

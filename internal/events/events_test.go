package events

import "testing"

func TestRelevantFiltersGitInternals(t *testing.T) {
	w := &Watcher{root: "/repo"}

	cases := []struct {
		path string
		want bool
	}{
		{"/repo/.git/HEAD", true},
		{"/repo/.git/refs/heads/main", true},
		{"/repo/.git/objects/ab/cdef", false},
		{"/repo/.git/index", false},
		{"/repo/src/main.go", true},
	}

	for _, c := range cases {
		if got := w.relevant(c.path); got != c.want {
			t.Errorf("relevant(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

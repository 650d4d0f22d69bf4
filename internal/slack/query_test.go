package slack

import "testing"

// TestBuildQuery verifies the exact query string shape, including the
// trailing space left by an empty ignore-user list.
func TestBuildQuery(t *testing.T) {
	t.Parallel()

	t.Run("empty ignore users contributes no -from clause", func(t *testing.T) {
		t.Parallel()
		got := BuildQuery("?", []string{"a", "b"}, "2023-01-01", nil, ":done:")
		want := "? in:a in:b after:2023-01-01 -has::done: "
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("ignore users appended once, order preserved", func(t *testing.T) {
		t.Parallel()
		got := BuildQuery("?", []string{"a"}, "2023-01-01", []string{"bob", "sue"}, ":done:")
		want := "? in:a after:2023-01-01 -has::done: -from:bob -from:sue"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("channel order preserved", func(t *testing.T) {
		t.Parallel()
		got := BuildQuery("deploy", []string{"z", "a", "m"}, "2024-06-01", nil, ":white_check_mark:")
		want := "deploy in:z in:a in:m after:2024-06-01 -has::white_check_mark: "
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("names passed through verbatim", func(t *testing.T) {
		t.Parallel()
		got := BuildQuery("?", []string{"weird channel!"}, "2023-01-01", []string{"no such user"}, ":done:")
		want := "? in:weird channel! after:2023-01-01 -has::done: -from:no such user"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/g960059/promptedit/internal/model"
)

func TestReconcileDecisionTable(t *testing.T) {
	cases := []struct {
		name    string
		new     string
		current string
		cursor  int
		want    model.Primitive
	}{
		{
			name: "both empty",
			want: model.NoOp(),
		},
		{
			name:    "clear non-empty line",
			current: "old content",
			cursor:  5,
			want:    model.KillRange(0, len("old content")),
		},
		{
			name:   "insert into empty line",
			new:    "fresh text",
			cursor: 0,
			want:   model.InsertAt(0, "fresh text"),
		},
		{
			name:    "replace whole line",
			new:     "goodbye world",
			current: "hello world",
			cursor:  0,
			want:    model.ReplaceRange(0, len("hello world"), "goodbye world"),
		},
		{
			name:    "replacement may contain newlines",
			new:     "line 1\nline 2",
			current: "single",
			cursor:  3,
			want:    model.ReplaceRange(0, len("single"), "line 1\nline 2"),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reconcile(tc.new, tc.current, tc.cursor)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected primitive (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReconcileIgnoresCursorOffset(t *testing.T) {
	current := "hello world"
	offsets := []int{0, len(current) / 2, len(current), -7, len(current) + 100}

	want := Reconcile("goodbye world", current, 0)
	for _, off := range offsets {
		got := Reconcile("goodbye world", current, off)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("offset %d changed the primitive (-want +got):\n%s", off, diff)
		}
	}

	// Same for the clearing path.
	wantClear := Reconcile("", current, 0)
	for _, off := range offsets {
		got := Reconcile("", current, off)
		if diff := cmp.Diff(wantClear, got); diff != "" {
			t.Fatalf("offset %d changed the clear primitive (-want +got):\n%s", off, diff)
		}
	}
}

func TestReconcileIsDeterministic(t *testing.T) {
	first := Reconcile("b", "a", 1)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, Reconcile("b", "a", 1)); diff != "" {
			t.Fatalf("reconcile is not deterministic (-want +got):\n%s", diff)
		}
	}
}

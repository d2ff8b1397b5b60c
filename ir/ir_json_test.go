package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONLossless(t *testing.T) {
	y := sample()
	y.Add("empty")
	y.AddValue("blank", "")
	y.Get("b").SetValue("both")

	d, err := json.Marshal(y)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(y) {
		t.Errorf("json changed tree:\n%s", d)
	}
}

func TestJSONShape(t *testing.T) {
	y := New()
	y.AddValue("a", "1")
	d, err := json.Marshal(y)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"children":[{"key":"a","node":{"value":"1"}}]}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

func TestToAny(t *testing.T) {
	y := sample()
	y.Add("empty")
	y.Get("b").SetValue("both")
	want := map[string]any{
		"a": []any{"1", "4"},
		"b": map[string]any{
			ValueKey: "both",
			"c":      []any{"2", "3"},
		},
		"empty": nil,
	}
	if diff := cmp.Diff(want, ToAny(y)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if Split("") != nil {
		t.Fatalf("split of empty text should be nil")
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "第一章", want: 6},
		{text: "e\u0301", want: 1},
		{text: "a中", want: 3},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text  string
		width int
		tail  string
		want  string
	}{
		{text: "hello", width: 10, tail: "…", want: "hello"},
		{text: "hello", width: 5, tail: "…", want: "hello"},
		{text: "hello world", width: 6, tail: "…", want: "hello…"},
		{text: "你好世界", width: 5, tail: "…", want: "你好…"},
		{text: "你好世界", width: 4, tail: "…", want: "你…"},
		{text: "ae\u0301bc", width: 3, tail: "…", want: "ae\u0301…"},
		{text: "abc", width: 0, tail: "…", want: ""},
		{text: "abc", width: 2, tail: "......", want: "ab"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.text, tc.width, tc.tail); got != tc.want {
			t.Fatalf("Truncate(%q, %d, %q): got %q, want %q", tc.text, tc.width, tc.tail, got, tc.want)
		}
	}
}

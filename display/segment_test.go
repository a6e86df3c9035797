package display

import "testing"

func TestSegmentCount(t *testing.T) {
	cases := []struct {
		s     string
		width int
		want  int
	}{
		{s: "hello", width: 10, want: 1},
		{s: "hello", width: 5, want: 1},
		{s: "hello world", width: 6, want: 2},
		{s: "你好世界", width: 4, want: 2},
		{s: "你好世界", width: 3, want: 3},
		{s: "", width: 10, want: 0},
		{s: "abc", width: 0, want: 0},
	}

	for _, tc := range cases {
		if got := SegmentCount(tc.s, tc.width); got != tc.want {
			t.Fatalf("SegmentCount(%q, %d): got %d, want %d", tc.s, tc.width, got, tc.want)
		}
	}
}

func TestLastSegmentStart(t *testing.T) {
	cases := []struct {
		s     string
		width int
		want  int
	}{
		{s: "hello", width: 10, want: 0},
		{s: "hello world", width: 6, want: 6},
		{s: "你好世界", width: 4, want: 2},
		{s: "abcdefg", width: 3, want: 6},
		{s: "", width: 3, want: 0},
		// Every slice of width 1 over wide chars makes no progress.
		{s: "中文", width: 1, want: 0},
	}

	for _, tc := range cases {
		if got := LastSegmentStart(tc.s, tc.width); got != tc.want {
			t.Fatalf("LastSegmentStart(%q, %d): got %d, want %d", tc.s, tc.width, got, tc.want)
		}
	}
}

func TestSegmentStartAtOrBefore(t *testing.T) {
	line := []rune("hello world")
	cases := []struct {
		offset int
		want   int
	}{
		{offset: 0, want: 0},
		{offset: 3, want: 0},
		{offset: 6, want: 6},
		{offset: 8, want: 6},
		{offset: 11, want: 6},
		{offset: 40, want: 6},
	}
	for _, tc := range cases {
		if got := Block.SegmentStartAtOrBefore(line, tc.offset, 6); got != tc.want {
			t.Fatalf("SegmentStartAtOrBefore(%d): got %d, want %d", tc.offset, got, tc.want)
		}
	}

	if got := Block.SegmentStartAtOrBefore([]rune("你好世界"), 3, 4); got != 2 {
		t.Fatalf("SegmentStartAtOrBefore cjk: got %d, want 2", got)
	}
}

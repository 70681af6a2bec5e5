package menu

import "testing"

func TestClassifyByte(t *testing.T) {
	cases := []struct {
		b    byte
		want Key
	}{
		{'\r', KeyConfirm},
		{'\n', KeyConfirm},
		{keyCtrlC, KeyCancel},
		{'q', KeyCancel},
		{'Q', KeyCancel},
		{'a', KeyOther},
		{' ', KeyOther},
		{keyBackspace, KeyOther},
	}
	for _, c := range cases {
		if got := classifyByte(c.b); got != c.want {
			t.Errorf("classifyByte(%q) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestClassifyEscape(t *testing.T) {
	cases := []struct {
		seq  []byte
		want Key
	}{
		{[]byte("[A"), KeyUp},
		{[]byte("[B"), KeyDown},
		{[]byte("[C"), KeyOther}, // right arrow, ignored
		{[]byte("[D"), KeyOther}, // left arrow, ignored
		{[]byte("O"), KeyOther},
		{[]byte("["), KeyOther},
		{nil, KeyOther}, // lone Escape
	}
	for _, c := range cases {
		if got := classifyEscape(c.seq); got != c.want {
			t.Errorf("classifyEscape(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}

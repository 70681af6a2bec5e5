package menu

import "testing"

func optionsOf(labels ...string) []Option {
	opts, err := Pair(labels, nil)
	if err != nil {
		panic(err)
	}
	return opts
}

func TestApplyUpFromZeroWrapsToLast(t *testing.T) {
	s := newSession(optionsOf("a", "b", "c"))
	s.apply(KeyUp)
	if s.focus != 2 {
		t.Fatalf("expected focus 2 after Up from 0, got %d", s.focus)
	}
}

func TestApplyDownFromLastWrapsToZero(t *testing.T) {
	s := newSession(optionsOf("a", "b", "c"))
	s.focus = 2
	s.apply(KeyDown)
	if s.focus != 0 {
		t.Fatalf("expected focus 0 after Down from last, got %d", s.focus)
	}
}

func TestApplyFocusStaysInRange(t *testing.T) {
	s := newSession(optionsOf("a", "b", "c", "d", "e"))
	seq := []Key{KeyUp, KeyUp, KeyDown, KeyUp, KeyDown, KeyDown, KeyDown, KeyUp, KeyDown, KeyDown, KeyDown}
	for i, k := range seq {
		s.apply(k)
		if s.focus < 0 || s.focus >= len(s.options) {
			t.Fatalf("focus %d out of range after key %d", s.focus, i)
		}
	}
}

func TestApplyConfirmSelectsCurrentFocus(t *testing.T) {
	s := newSession(optionsOf("a", "b"))
	s.apply(KeyDown)
	s.apply(KeyConfirm)
	if s.state != outcomeSelected {
		t.Fatalf("expected selected state, got %v", s.state)
	}
	if s.focus != 1 {
		t.Fatalf("expected focus 1, got %d", s.focus)
	}
}

func TestApplyCancelEndsSession(t *testing.T) {
	s := newSession(optionsOf("a", "b"))
	s.apply(KeyCancel)
	if s.state != outcomeCancelled {
		t.Fatalf("expected cancelled state, got %v", s.state)
	}
}

func TestApplyOtherIsNoOp(t *testing.T) {
	s := newSession(optionsOf("a", "b", "c"))
	s.apply(KeyDown)
	s.apply(KeyOther)
	if s.focus != 1 || s.state != outcomePending {
		t.Fatalf("KeyOther changed state: focus=%d state=%v", s.focus, s.state)
	}
}

func TestApplySingleOptionWraps(t *testing.T) {
	s := newSession(optionsOf("only"))
	s.apply(KeyUp)
	if s.focus != 0 {
		t.Fatalf("expected focus 0 on single option, got %d", s.focus)
	}
	s.apply(KeyDown)
	if s.focus != 0 {
		t.Fatalf("expected focus 0 on single option, got %d", s.focus)
	}
}

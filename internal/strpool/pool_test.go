package strpool

import "testing"

func TestPool(t *testing.T) {
	t.Parallel()

	b := Get()
	if b == nil {
		t.Fatalf("got nil builder")
	}

	b.WriteString("hangman")
	if got := b.String(); got != "hangman" {
		t.Errorf("got %q, want %q", got, "hangman")
	}

	b.Reset()
	Put(b)
	if got := Get().Len(); got != 0 {
		t.Errorf("pooled builder is not empty: %d", got)
	}
}

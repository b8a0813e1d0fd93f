package bytespool

import "testing"

func TestPool(t *testing.T) {
	t.Parallel()

	b := Get()
	if b == nil {
		t.Fatalf("got nil buffer")
	}

	b.WriteString("##  ##")
	if got := b.Len(); got != 6 {
		t.Errorf("got len %d, want 6", got)
	}

	b.Reset()
	Put(b)
	if got := Get().Len(); got != 0 {
		t.Errorf("pooled buffer is not empty: %d", got)
	}
}

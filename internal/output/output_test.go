package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("defaults to stdout", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Printf("%s %-10s ok\n", "✓", "pre-commit")
	p.Println("done")

	want := "✓ pre-commit ok\ndone\n"
	if got := buf.String(); got != want {
		t.Errorf("printer wrote %q, want %q", got, want)
	}
}

package testutil

import (
	"testing"

	"src.calq.sh/pkg/tt"
)

func TestDedent(t *testing.T) {
	tt.Test(t, Dedent,
		tt.Args("a").Rets("a"),
		tt.Args("\n a\n  b\n").Rets("a\n b\n"),
		tt.Args("\n\ta\n\t\tb\n").Rets("a\n\tb\n"),
		tt.Args("\n a\nb\n").Rets(" a\nb\n"),
	)
}

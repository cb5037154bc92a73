package lsp

import (
	"context"
	"encoding/json"
	"testing"

	lsp "github.com/sourcegraph/go-lsp"

	"src.calq.sh/pkg/must"
	"src.calq.sh/pkg/tt"
)

const unsupportedModulo = "unsupported operation: modulo " +
	"(valid operations: add, divide, multiply, power, subtract)"

func TestDiagnostics(t *testing.T) {
	s := newServer()
	tt.Test(t, tt.Fn(s.diagnostics).Named("diagnostics"),
		// Well-formed lines and special commands produce no diagnostics.
		tt.Args("add 1 2\nDIVIDE 4 2").Rets([]lsp.Diagnostic{}),
		tt.Args("help\nHISTORY\n\n exit ").Rets([]lsp.Diagnostic{}),

		tt.Args("garbage").Rets([]lsp.Diagnostic{
			diag(0, 0, 7, "parse",
				"command must have the form: <operation> <number1> <number2>"),
		}),
		tt.Args("add one 2").Rets([]lsp.Diagnostic{
			diag(0, 4, 7, "parse", "cannot parse number: one"),
		}),
		tt.Args("modulo 1 1").Rets([]lsp.Diagnostic{
			diag(0, 0, 6, "operation", unsupportedModulo),
		}),
		// The range counts UTF-16 units, not bytes: "адд" is 6 bytes but 3
		// units wide.
		tt.Args("add 1 2\nадд 5 3").Rets([]lsp.Diagnostic{
			diag(1, 0, 3, "operation", "unsupported operation: адд "+
				"(valid operations: add, divide, multiply, power, subtract)"),
		}),
	)
}

func diag(line, from, to int, source, msg string) lsp.Diagnostic {
	return lsp.Diagnostic{
		Range: lsp.Range{
			Start: lsp.Position{Line: line, Character: from},
			End:   lsp.Position{Line: line, Character: to},
		},
		Severity: lsp.Error,
		Source:   source,
		Message:  msg,
	}
}

var completionTests = []struct {
	content    string
	line, char int
	want       []string
	from, to   int
}{
	// Partial first token completes to operation names.
	{"ad", 0, 2, []string{"add"}, 0, 2},
	{"DIV", 0, 3, []string{"divide"}, 0, 3},
	// Special commands are offered alongside operations.
	{"h", 0, 1, []string{"help", "history"}, 0, 1},
	// The edit range excludes leading whitespace.
	{"  po", 0, 4, []string{"power"}, 2, 4},
	// Position is per line, not per document.
	{"add 1 2\ndiv", 1, 3, []string{"divide"}, 0, 3},
	// An empty seed offers everything.
	{"", 0, 0,
		[]string{"add", "divide", "multiply", "power", "subtract",
			"exit", "help", "history"}, 0, 0},
	// Only the first token names an operation; no candidates after it.
	{"add 1", 0, 5, nil, 0, 0},
}

func TestCompletion(t *testing.T) {
	s := newServer()
	for _, test := range completionTests {
		items := complete(t, s, test.content, test.line, test.char)
		if len(items) != len(test.want) {
			t.Errorf("completion of %q at %d:%d -> %d items, want %v",
				test.content, test.line, test.char, len(items), test.want)
			continue
		}
		for i, item := range items {
			if item.Label != test.want[i] || item.TextEdit.NewText != test.want[i] {
				t.Errorf("completion of %q item %d = %q (inserts %q), want %q",
					test.content, i, item.Label, item.TextEdit.NewText, test.want[i])
			}
			r := item.TextEdit.Range
			if r.Start.Character != test.from || r.End.Character != test.to {
				t.Errorf("completion of %q item %q replaces %d..%d, want %d..%d",
					test.content, item.Label,
					r.Start.Character, r.End.Character, test.from, test.to)
			}
		}
	}
}

func complete(t *testing.T, s *server, content string, line, char int) []lsp.CompletionItem {
	t.Helper()
	uri := lsp.DocumentURI("file:///session.calq")
	s.content[uri] = content
	params := lsp.CompletionParams{
		TextDocumentPositionParams: lsp.TextDocumentPositionParams{
			TextDocument: lsp.TextDocumentIdentifier{URI: uri},
			Position:     lsp.Position{Line: line, Character: char},
		},
	}
	rets, err := s.completion(context.Background(), nil,
		must.OK1(json.Marshal(params)))
	if err != nil {
		t.Fatal(err)
	}
	return rets.([]lsp.CompletionItem)
}

func TestUTF16Col(t *testing.T) {
	tt.Test(t, utf16Col,
		tt.Args("add", 3).Rets(3),
		tt.Args("добавь 1 2", 12).Rets(6),
		// An astral codepoint is one rune but two UTF-16 units.
		tt.Args("😀x", 4).Rets(2),
		// Offsets past the end clamp to the line.
		tt.Args("abc", 10).Rets(3),
	)
}

func TestByteOffset(t *testing.T) {
	tt.Test(t, byteOffset,
		tt.Args("add", 2).Rets(2),
		tt.Args("добавь", 3).Rets(6),
		tt.Args("😀x", 2).Rets(4),
		tt.Args("abc", 10).Rets(3),
	)
}

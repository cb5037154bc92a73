package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf16"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"src.calq.sh/pkg/calc"
	"src.calq.sh/pkg/parse"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// Commands the REPL recognizes before registry lookup; they are valid lines
// and offered in completions.
var specialCommands = []string{"exit", "help", "history"}

type server struct {
	registry *calc.Registry
	content  map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{calc.Builtin(), make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":              s.initialize,
		"textDocument/didOpen":    s.didOpen,
		"textDocument/didChange":  s.didChange,
		"textDocument/hover":      s.hover,
		"textDocument/completion": s.completion,

		"textDocument/didClose": noop,
		// Required by spec.
		"initialized": noop,
		// Called by clients even when server doesn't advertise support:
		// https://microsoft.github.io/language-server-protocol/specification#workspace_didChangeWatchedFiles
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		return fn(ctx, conn, *req.Params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			CompletionProvider: &lsp.CompletionOptions{},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	go s.publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	// ContentChanges includes full text since the server is only advertised
	// to support that; see the initialize method.
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.content[uri] = content
	go s.publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return lsp.Hover{}, nil
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.CompletionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	lines := splitLines(s.content[params.TextDocument.URI])
	if params.Position.Line < 0 || params.Position.Line >= len(lines) {
		return []lsp.CompletionItem{}, nil
	}
	line := lines[params.Position.Line]
	cursor := byteOffset(line, params.Position.Character)

	// Only the first token of a line names an operation; the rest are
	// numbers, which we can't complete.
	head := line[:cursor]
	if strings.TrimSpace(head) != strings.TrimLeft(head, " \t") ||
		strings.ContainsAny(strings.TrimSpace(head), " \t") {
		return []lsp.CompletionItem{}, nil
	}
	seed := strings.TrimSpace(head)
	from := cursor - len(seed)

	lspRange := lsp.Range{
		Start: lsp.Position{Line: params.Position.Line, Character: utf16Col(line, from)},
		End:   lsp.Position{Line: params.Position.Line, Character: utf16Col(line, cursor)},
	}
	var items []lsp.CompletionItem
	for _, name := range s.registry.Names() {
		if strings.HasPrefix(name, strings.ToLower(seed)) {
			items = append(items, completionItem(name, lsp.CIKFunction, lspRange))
		}
	}
	for _, name := range specialCommands {
		if strings.HasPrefix(name, strings.ToLower(seed)) {
			items = append(items, completionItem(name, lsp.CIKKeyword, lspRange))
		}
	}
	if items == nil {
		items = []lsp.CompletionItem{}
	}
	return items, nil
}

func completionItem(name string, kind lsp.CompletionItemKind, r lsp.Range) lsp.CompletionItem {
	return lsp.CompletionItem{
		Label: name,
		Kind:  kind,
		TextEdit: &lsp.TextEdit{
			Range:   r,
			NewText: name,
		},
	}
}

func (s *server) publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: s.diagnostics(content)})
}

func (s *server) diagnostics(content string) []lsp.Diagnostic {
	diags := []lsp.Diagnostic{}
	for i, line := range splitLines(content) {
		if d, ok := s.diagnoseLine(i, line); ok {
			diags = append(diags, d)
		}
	}
	return diags
}

func (s *server) diagnoseLine(lineNo int, line string) (lsp.Diagnostic, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lsp.Diagnostic{}, false
	}
	for _, special := range specialCommands {
		if strings.EqualFold(trimmed, special) {
			return lsp.Diagnostic{}, false
		}
	}

	cmd, err := parse.Parse(line)
	if err != nil {
		var parseErr *parse.Error
		errors.As(err, &parseErr)
		return diagnostic(lineNo, line, parseErr.From, parseErr.To, "parse", parseErr.Msg), true
	}
	if _, err := s.registry.Create(cmd.Name, cmd.A, cmd.B); err != nil {
		return diagnostic(lineNo, line, cmd.NameFrom, cmd.NameTo, "operation", err.Error()), true
	}
	return lsp.Diagnostic{}, false
}

func diagnostic(lineNo int, line string, from, to int, source, msg string) lsp.Diagnostic {
	return lsp.Diagnostic{
		Range: lsp.Range{
			Start: lsp.Position{Line: lineNo, Character: utf16Col(line, from)},
			End:   lsp.Position{Line: lineNo, Character: utf16Col(line, to)},
		},
		Severity: lsp.Error,
		Source:   source,
		Message:  msg,
	}
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// utf16Col converts a byte offset in line to a column in UTF-16 units, the
// unit the LSP protocol counts positions in.
func utf16Col(line string, byteOff int) int {
	if byteOff > len(line) {
		byteOff = len(line)
	}
	return len(utf16.Encode([]rune(line[:byteOff])))
}

// byteOffset converts a column in UTF-16 units to a byte offset in line.
func byteOffset(line string, col int) int {
	units := 0
	for i, r := range line {
		if units >= col {
			return i
		}
		units += len(utf16.Encode([]rune{r}))
	}
	return len(line)
}

package lint

import (
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// FileResult contains the outcome of linting a single source buffer.
type FileResult struct {
	// Tree is the parsed syntax tree.
	Tree *syntax.Tree

	// Reports holds parse-error reports followed by rule reports in
	// traversal order.
	Reports []*Report
}

// HasIssues returns true if any reports were produced.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Reports) > 0
}

// HasSyntaxErrors returns true if any report originated from a parse
// error.
func (fr *FileResult) HasSyntaxErrors() bool {
	for _, r := range fr.Reports {
		if r.Code == SyntaxErrorCode {
			return true
		}
	}
	return false
}

// FixableCount returns the number of reports carrying suggestions.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, r := range fr.Reports {
		if r.HasSuggestions() {
			count++
		}
	}
	return count
}

// Engine drives one lint run: a single pre-order traversal of a parsed
// tree, dispatching each element to the rules registered for its kind.
type Engine struct {
	// Rules resolves an element kind to its applicable rules.
	Rules Dispatcher
}

// NewEngine creates an engine dispatching through the given registry.
func NewEngine(rules Dispatcher) *Engine {
	return &Engine{Rules: rules}
}

// LintTree walks the whole tree exactly once, pre-order, visiting
// composite nodes and leaf tokens alike. For each element it invokes
// every applicable rule in registration order and collects the
// resulting reports. No early termination: one element may trigger
// several rules, and all their reports are retained.
func (e *Engine) LintTree(tree *syntax.Tree, sess *Session) []*Report {
	var reports []*Report
	_ = syntax.Walk(tree.Root, func(n *syntax.Node) error {
		for _, rule := range e.Rules.RulesFor(n.Kind) {
			if !sess.Supports(rule.MinVersion()) {
				continue
			}
			if report := rule.Validate(n, sess); report != nil {
				reports = append(reports, report)
			}
		}
		return nil
	})
	return reports
}

// LintSource parses content and lints the resulting tree. Parse errors
// become reports through the parse-error adapter, sharing one pipeline
// with rule violations; linting still runs over whatever tree the
// resilient parser produced.
func (e *Engine) LintSource(content []byte, sess *Session) *FileResult {
	tree := syntax.Parse(content)

	result := &FileResult{Tree: tree}
	for _, perr := range tree.Errors {
		result.Reports = append(result.Reports, ReportFromParseError(perr))
	}
	result.Reports = append(result.Reports, e.LintTree(tree, sess)...)
	return result
}

package yamllint

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type line struct {
	text   string // without the line break
	crlf   bool
	indent int
	// comment is the byte offset of a comment's '#', or -1.
	comment int
	// block marks block scalar content and lines inside a multi-line
	// quoted scalar; punctuation rules skip them.
	block bool
}

func (ln *line) blank() bool { return strings.TrimSpace(ln.text) == "" }

func (ln *line) commentOnly() bool { return !ln.block && ln.comment >= 0 && ln.comment == ln.indent }

func (ln *line) hasContent() bool { return !ln.blank() && !ln.commentOnly() }

func splitLines(content string) []line {
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")
	if strings.HasSuffix(content, "\n") {
		raw = raw[:len(raw)-1]
	}
	out := make([]line, len(raw))
	for i, s := range raw {
		ln := line{text: s, comment: -1}
		if strings.HasSuffix(s, "\r") {
			ln.text, ln.crlf = s[:len(s)-1], true
		}
		ln.indent = len(ln.text) - len(strings.TrimLeft(ln.text, " "))
		out[i] = ln
	}
	return out
}

func (l *linter) scan() {
	for i := range l.lines {
		ln := &l.lines[i]
		if l.blockLimit >= 0 {
			if ln.blank() || ln.indent > l.blockLimit {
				ln.block = true
				continue
			}
			l.blockLimit = -1
		}
		l.scanLine(i+1, ln)
	}
}

// tokenStart reports whether a token may begin at s[i]: at the start of the
// line, right after a flow indicator, or after whitespace following a
// mapping, sequence or key indicator.
func tokenStart(s string, i int) bool {
	j := i - 1
	for j >= 0 && (s[j] == ' ' || s[j] == '\t') {
		j--
	}
	if j < 0 {
		return true
	}
	switch s[j] {
	case '[', '{', ',':
		return true
	case ':', '-', '?':
		return j < i-1
	}
	return false
}

func spaceOrEnd(s string, i int) bool {
	return i >= len(s) || s[i] == ' ' || s[i] == '\t'
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

// skipQuoted returns the offset just past the closing quote, or len(s) with
// l.quote still set when the scalar continues on the next line.
func (l *linter) skipQuoted(s string, i int) int {
	for i < len(s) {
		c := s[i]
		switch {
		case l.quote == '"' && c == '\\':
			i += 2
			continue
		case c == l.quote && l.quote == '\'' && i+1 < len(s) && s[i+1] == '\'':
			i += 2
			continue
		case c == l.quote:
			l.quote = 0
			return i + 1
		}
		i++
	}
	return len(s)
}

func (l *linter) scanLine(n int, ln *line) {
	s := ln.text
	i := 0
	if l.quote != 0 {
		ln.block = true
		i = l.skipQuoted(s, 0)
	}
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
			continue
		case c == '#' && (i == 0 || s[i-1] == ' ' || s[i-1] == '\t'):
			ln.comment = i
			l.checkComment(n, s, i)
			return
		case (c == '\'' || c == '"') && tokenStart(s, i):
			l.quote = c
			i = l.skipQuoted(s, i+1)
			continue
		case c == ':' && (spaceOrEnd(s, i+1) || (l.flow > 0 && strings.IndexByte(",]}", s[i+1]) >= 0)):
			l.checkColon(n, s, i)
		case c == ',' && l.flow > 0:
			l.checkComma(n, s, i)
		case (c == '[' || c == '{') && (l.flow > 0 || tokenStart(s, i)):
			l.flow++
			l.checkOpen(n, s, i)
		case (c == ']' || c == '}') && l.flow > 0:
			l.flow--
			l.checkClose(n, s, i)
		case c == '-' && l.flow == 0 && spaceOrEnd(s, i+1) && tokenStart(s, i):
			l.checkHyphen(n, s, i)
		case (c == '|' || c == '>') && l.flow == 0 && tokenStart(s, i):
			j := i + 1
			for j < len(s) && strings.IndexByte("+-0123456789", s[j]) >= 0 {
				j++
			}
			j = skipSpaces(s, j)
			if j == len(s) || s[j] == '#' {
				if j < len(s) {
					ln.comment = j
					l.checkComment(n, s, j)
				}
				l.blockLimit = ln.indent
				return
			}
		}
		i++
	}
}

func (l *linter) checkColon(n int, s string, i int) {
	r, ok := l.cfg.rule("colons")
	if !ok {
		return
	}
	k := i - 1
	for k >= 0 && s[k] == ' ' {
		k--
	}
	if k >= 0 && i-1-k > r.int("max-spaces-before") {
		l.report("colons", n, column(s, i), "too many spaces before colon")
	}
	j := skipSpaces(s, i+1)
	if j < len(s) && s[j] != '#' && j-i-1 > r.int("max-spaces-after") {
		l.report("colons", n, column(s, j-1), "too many spaces after colon")
	}
}

func (l *linter) checkComma(n int, s string, i int) {
	r, ok := l.cfg.rule("commas")
	if !ok {
		return
	}
	k := i - 1
	for k >= 0 && s[k] == ' ' {
		k--
	}
	if k >= 0 && i-1-k > r.int("max-spaces-before") {
		l.report("commas", n, column(s, i), "too many spaces before comma")
	}
	j := skipSpaces(s, i+1)
	if j == len(s) || s[j] == '#' {
		return
	}
	switch spaces := j - i - 1; {
	case spaces < r.int("min-spaces-after"):
		l.report("commas", n, column(s, i+1), "too few spaces after comma")
	case spaces > r.int("max-spaces-after"):
		l.report("commas", n, column(s, j-1), "too many spaces after comma")
	}
}

func pairRule(c byte) (rule, noun string, closer byte) {
	if c == '{' || c == '}' {
		return "braces", "braces", '}'
	}
	return "brackets", "brackets", ']'
}

func (l *linter) checkOpen(n int, s string, i int) {
	rule, noun, closer := pairRule(s[i])
	r, ok := l.cfg.rule(rule)
	if !ok {
		return
	}
	j := skipSpaces(s, i+1)
	if j == len(s) || s[j] == '#' {
		return
	}
	spaces := j - i - 1
	lo, hi, what := r.int("min-spaces-inside"), r.int("max-spaces-inside"), noun
	if s[j] == closer {
		if v := r.int("min-spaces-inside-empty"); v != -1 {
			lo = v
		}
		if v := r.int("max-spaces-inside-empty"); v != -1 {
			hi = v
		}
		what = "empty " + noun
	}
	switch {
	case hi != -1 && spaces > hi:
		l.report(rule, n, column(s, j-1), "too many spaces inside "+what)
	case lo != -1 && spaces < lo:
		l.report(rule, n, column(s, i+1), "too few spaces inside "+what)
	}
}

func (l *linter) checkClose(n int, s string, i int) {
	rule, noun, _ := pairRule(s[i])
	r, ok := l.cfg.rule(rule)
	if !ok {
		return
	}
	k := i - 1
	for k >= 0 && s[k] == ' ' {
		k--
	}
	if k < 0 || s[k] == '[' || s[k] == '{' {
		return
	}
	switch spaces := i - 1 - k; {
	case r.int("max-spaces-inside") != -1 && spaces > r.int("max-spaces-inside"):
		l.report(rule, n, column(s, i-1), "too many spaces inside "+noun)
	case r.int("min-spaces-inside") != -1 && spaces < r.int("min-spaces-inside"):
		l.report(rule, n, column(s, i), "too few spaces inside "+noun)
	}
}

func (l *linter) checkHyphen(n int, s string, i int) {
	r, ok := l.cfg.rule("hyphens")
	if !ok {
		return
	}
	j := skipSpaces(s, i+1)
	if j < len(s) && s[j] != '#' && j-i-1 > r.int("max-spaces-after") {
		l.report("hyphens", n, column(s, j-1), "too many spaces after hyphen")
	}
}

func (l *linter) checkComment(n int, s string, i int) {
	r, ok := l.cfg.rule("comments")
	if !ok {
		return
	}
	if r.bool("ignore-shebangs") && n == 1 && i == 0 && strings.HasPrefix(s, "#!") {
		return
	}
	if r.bool("require-starting-space") {
		j := i
		for j < len(s) && s[j] == '#' {
			j++
		}
		if j < len(s) && s[j] != ' ' {
			l.report("comments", n, column(s, j), "missing starting space in comment")
		}
	}
	k := i - 1
	for k >= 0 && (s[k] == ' ' || s[k] == '\t') {
		k--
	}
	if k >= 0 {
		if want := r.int("min-spaces-from-content"); want != -1 && i-1-k < want {
			l.report("comments", n, column(s, i), "too few spaces before comment")
		}
	}
}

// checkLines runs the rules that only look at raw lines.
func (l *linter) checkLines(content string) {
	l.checkNewLines(content)
	l.checkEmptyLines(content)
	l.checkDocumentStart()
	l.checkCommentsIndentation()
	for i := range l.lines {
		n, s := i+1, l.lines[i].text
		if trimmed := strings.TrimRight(s, " \t"); len(trimmed) != len(s) {
			l.report("trailing-spaces", n, column(s, len(trimmed)), "trailing spaces")
		}
		l.checkLineLength(n, s)
	}
}

func (l *linter) checkNewLines(content string) {
	if len(l.lines) == 0 {
		return
	}
	first := l.lines[0]
	if r, ok := l.cfg.rule("new-lines"); ok {
		want := r.opts["type"]
		switch {
		case want == "unix" && first.crlf:
			l.report("new-lines", 1, column(first.text, len(first.text)), `wrong new line character: expected \n`)
		case want == "dos" && !first.crlf && len(l.lines) > 1:
			l.report("new-lines", 1, column(first.text, len(first.text)), `wrong new line character: expected \r\n`)
		}
	}
	last := l.lines[len(l.lines)-1]
	if !strings.HasSuffix(content, "\n") && last.text != "" {
		l.report("new-line-at-end-of-file", len(l.lines), column(last.text, len(last.text)), "no new line character at the end of file")
	}
}

func (l *linter) checkEmptyLines(content string) {
	r, ok := l.cfg.rule("empty-lines")
	if !ok || content == "\n" {
		return
	}
	endsWithNewline := strings.HasSuffix(content, "\n")
	for i := 0; i < len(l.lines); {
		if l.lines[i].text != "" {
			i++
			continue
		}
		start := i
		for i < len(l.lines) && l.lines[i].text == "" {
			i++
		}
		count, limit := i-start, r.int("max")
		if start == 0 {
			limit = r.int("max-start")
		}
		if i == len(l.lines) && endsWithNewline {
			limit = r.int("max-end")
		}
		if count > limit {
			l.report("empty-lines", i, 1, fmt.Sprintf("too many blank lines (%d > %d)", count, limit))
		}
	}
}

func (l *linter) checkDocumentStart() {
	r, ok := l.cfg.rule("document-start")
	if !ok || !r.bool("present") {
		return
	}
	expect := true
	for i, ln := range l.lines {
		if !ln.hasContent() || ln.block {
			continue
		}
		t := ln.text
		switch {
		case strings.HasPrefix(t, "%"):
			continue
		case t == "---" || strings.HasPrefix(t, "--- "):
			expect = false
		case t == "..." || strings.HasPrefix(t, "... "):
			expect = true
		case expect:
			l.report("document-start", i+1, 1, `missing document start "---"`)
			expect = false
		}
	}
}

func (l *linter) checkCommentsIndentation() {
	if _, ok := l.cfg.rule("comments-indentation"); !ok {
		return
	}
	neighbour := func(from, step int) int {
		for i := from; i >= 0 && i < len(l.lines); i += step {
			if ln := l.lines[i]; ln.hasContent() && !ln.block {
				return ln.indent
			}
		}
		return 0
	}
	for i, ln := range l.lines {
		if !ln.commentOnly() {
			continue
		}
		next := neighbour(i+1, 1)
		prev := neighbour(i-1, -1)
		if prev < next {
			prev = next
		}
		if ln.indent != next && ln.indent != prev {
			l.report("comments-indentation", i+1, ln.indent+1, "comment not indented like content")
		}
	}
}

func (l *linter) checkLineLength(n int, s string) {
	r, ok := l.cfg.rule("line-length")
	if !ok {
		return
	}
	limit := r.int("max")
	length := utf8.RuneCountInString(s)
	if length <= limit {
		return
	}
	if r.bool("allow-non-breakable-words") {
		start := skipSpaces(s, 0)
		if start < len(s) {
			switch s[start] {
			case '#':
				for start < len(s) && s[start] == '#' {
					start++
				}
				start++
			case '-':
				start += 2
			}
			if start >= len(s) || !strings.Contains(s[start:], " ") {
				return
			}
		}
	}
	l.report("line-length", n, limit+1, fmt.Sprintf("line too long (%d > %d characters)", length, limit))
}

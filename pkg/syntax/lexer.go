package syntax

// rawToken is a classified span of bytes produced by the lexer.
// Tokens are contiguous and cover the whole source.
type rawToken struct {
	kind  Kind
	start int
	end   int
}

var keywords = map[string]Kind{
	"let":     TokenLet,
	"in":      TokenIn,
	"rec":     TokenRec,
	"inherit": TokenInherit,
	"if":      TokenIf,
	"then":    TokenThen,
	"else":    TokenElse,
	"with":    TokenWith,
	"assert":  TokenAssert,
	"or":      TokenOrKeyword,
}

type lexer struct {
	src    []byte
	pos    int
	tokens []rawToken
	errs   []ParseError
}

// lex tokenizes the entire source. It never fails; malformed input is
// reported via the returned errors and TokenError spans.
func lex(src []byte) ([]rawToken, []ParseError) {
	l := &lexer{src: src}
	for l.pos < len(l.src) {
		l.scan()
	}
	return l.tokens, l.errs
}

func (l *lexer) emit(kind Kind, start int) {
	l.tokens = append(l.tokens, rawToken{kind: kind, start: start, end: l.pos})
}

func (l *lexer) at(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) scan() {
	start := l.pos
	c := l.src[l.pos]

	switch {
	case isSpace(c):
		for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
			l.pos++
		}
		l.emit(TokenWhitespace, start)
	case c == '#':
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.pos++
		}
		l.emit(TokenComment, start)
	case c == '/' && l.at(1) == '*':
		l.pos += 2
		for l.pos < len(l.src) && !(l.src[l.pos] == '*' && l.at(1) == '/') {
			l.pos++
		}
		if l.pos < len(l.src) {
			l.pos += 2
		}
		l.emit(TokenComment, start)
	case c == '"':
		l.scanString(start)
	case c == '\'' && l.at(1) == '\'':
		l.scanIndentedString(start)
	case l.tryPath(start):
	case c >= '0' && c <= '9':
		l.scanNumber(start)
	case isIdentStart(c):
		l.scanIdentOrURI(start)
	default:
		l.scanOperator(start)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '\'' || c == '-'
}

func isPathChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') ||
		c == '.' || c == '_' || c == '+' || c == '-'
}

func isURIChar(c byte) bool {
	switch c {
	case '%', '/', '?', ':', '@', '&', '=', '+', '$', ',', '-',
		'_', '.', '!', '~', '*', '\'':
		return true
	}
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// scanString scans a double-quoted string, honoring escapes and
// ${ ... } interpolation. Interpolated expressions are kept inside the
// single string token; braces are depth-counted.
func (l *lexer) scanString(start int) {
	l.pos++ // opening quote
	depth := 0
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\\':
			// A trailing backslash has nothing to escape; consuming two
			// bytes would run past the buffer.
			if l.pos+1 >= len(l.src) {
				l.pos = len(l.src)
			} else {
				l.pos += 2
			}
			continue
		case c == '$' && l.at(1) == '{':
			depth++
			l.pos += 2
			continue
		case c == '}' && depth > 0:
			depth--
		case c == '"' && depth == 0:
			l.pos++
			l.emit(TokenString, start)
			return
		}
		l.pos++
	}
	l.errs = append(l.errs, ParseError{
		Kind: ErrUnterminatedString,
		At:   NewRange(start, l.pos),
	})
	l.emit(TokenString, start)
}

// scanIndentedString scans a ''-delimited string. The sequences ''',
// ''$ and ''\ escape the delimiter.
func (l *lexer) scanIndentedString(start int) {
	l.pos += 2 // opening quotes
	for l.pos < len(l.src) {
		if l.src[l.pos] == '\'' && l.at(1) == '\'' {
			next := l.at(2)
			if next == '\'' || next == '$' || next == '\\' {
				l.pos += 3
				continue
			}
			l.pos += 2
			l.emit(TokenString, start)
			return
		}
		l.pos++
	}
	l.errs = append(l.errs, ParseError{
		Kind: ErrUnterminatedString,
		At:   NewRange(start, l.pos),
	})
	l.emit(TokenString, start)
}

func (l *lexer) scanNumber(start int) {
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}
	if l.at(0) == '.' && l.at(1) >= '0' && l.at(1) <= '9' {
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
		l.emit(TokenFloat, start)
		return
	}
	l.emit(TokenInt, start)
}

// tryPath attempts to lex a path literal ([chars]*(/[chars]+)+ or a
// <...> search path). Returns false, with position unchanged, if the
// input is not a path.
func (l *lexer) tryPath(start int) bool {
	if l.src[l.pos] == '<' {
		i := l.pos + 1
		for i < len(l.src) && (isPathChar(l.src[i]) || l.src[i] == '/') {
			i++
		}
		if i > l.pos+1 && i < len(l.src) && l.src[i] == '>' {
			l.pos = i + 1
			l.emit(TokenPath, start)
			return true
		}
		return false
	}

	i := l.pos
	if l.src[i] == '~' {
		i++
	}
	for i < len(l.src) && isPathChar(l.src[i]) {
		i++
	}
	if i >= len(l.src) || l.src[i] != '/' {
		return false
	}
	sawSlash := false
	for i < len(l.src) && l.src[i] == '/' && i+1 < len(l.src) && isPathChar(l.src[i+1]) {
		sawSlash = true
		i++
		for i < len(l.src) && isPathChar(l.src[i]) {
			i++
		}
	}
	if !sawSlash {
		return false
	}
	l.pos = i
	l.emit(TokenPath, start)
	return true
}

// scanIdentOrURI scans an identifier, keyword, or URI literal. A URI is
// an ident-like scheme immediately followed by a colon and URI chars.
func (l *lexer) scanIdentOrURI(start int) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '-' {
			// A dash belongs to the ident only when followed by
			// another ident character.
			if !isIdentCont(l.at(1)) {
				break
			}
			l.pos++
			continue
		}
		if !isIdentCont(c) {
			break
		}
		l.pos++
	}

	// URI: scheme ':' followed by at least one URI char.
	if l.at(0) == ':' && isURIChar(l.at(1)) {
		l.pos++
		for l.pos < len(l.src) && isURIChar(l.src[l.pos]) {
			l.pos++
		}
		l.emit(TokenURI, start)
		return
	}

	word := string(l.src[start:l.pos])
	if kw, ok := keywords[word]; ok {
		l.emit(kw, start)
		return
	}
	l.emit(TokenIdent, start)
}

func (l *lexer) scanOperator(start int) {
	two := [2]byte{l.at(0), l.at(1)}

	if l.at(0) == '.' && l.at(1) == '.' && l.at(2) == '.' {
		l.pos += 3
		l.emit(TokenEllipsis, start)
		return
	}

	var twoKind Kind
	switch {
	case two == [2]byte{'-', '>'}:
		twoKind = TokenImplication
	case two == [2]byte{'/', '/'}:
		twoKind = TokenUpdate
	case two == [2]byte{'+', '+'}:
		twoKind = TokenConcat
	case two == [2]byte{'=', '='}:
		twoKind = TokenEqual
	case two == [2]byte{'!', '='}:
		twoKind = TokenNotEqual
	case two == [2]byte{'<', '='}:
		twoKind = TokenLessOrEq
	case two == [2]byte{'>', '='}:
		twoKind = TokenMoreOrEq
	case two == [2]byte{'&', '&'}:
		twoKind = TokenAnd
	case two == [2]byte{'|', '|'}:
		twoKind = TokenOr
	case two == [2]byte{'$', '{'}:
		twoKind = TokenDollarCurly
	}
	if twoKind != TokenError {
		l.pos += 2
		l.emit(twoKind, start)
		return
	}

	var kind Kind
	switch l.src[l.pos] {
	case '=':
		kind = TokenAssign
	case ';':
		kind = TokenSemicolon
	case ':':
		kind = TokenColon
	case ',':
		kind = TokenComma
	case '.':
		kind = TokenDot
	case '?':
		kind = TokenQuestion
	case '@':
		kind = TokenAt
	case '{':
		kind = TokenCurlyOpen
	case '}':
		kind = TokenCurlyClose
	case '[':
		kind = TokenSquareOpen
	case ']':
		kind = TokenSquareClose
	case '(':
		kind = TokenParenOpen
	case ')':
		kind = TokenParenClose
	case '<':
		kind = TokenLess
	case '>':
		kind = TokenMore
	case '!':
		kind = TokenNot
	case '+':
		kind = TokenAdd
	case '-':
		kind = TokenSub
	case '*':
		kind = TokenMul
	case '/':
		kind = TokenDiv
	default:
		kind = TokenError
	}
	l.pos++
	l.emit(kind, start)
}

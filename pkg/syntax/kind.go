// Package syntax provides the lexer, parser, and lossless syntax tree
// for the Nix expression language. Every byte of the source is covered
// by a leaf token; composite nodes carry the covering range of their
// children. The tree is read-only once parsed.
package syntax

// Kind classifies the syntactic role of a tree element. Kinds below
// NodeRoot are leaf tokens; NodeRoot and above are composite nodes.
type Kind uint16

// Token kinds.
const (
	TokenError Kind = iota
	TokenWhitespace
	TokenComment

	TokenIdent
	TokenInt
	TokenFloat
	TokenPath
	TokenURI
	TokenString

	TokenAssign
	TokenSemicolon
	TokenColon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenQuestion
	TokenAt
	TokenCurlyOpen
	TokenCurlyClose
	TokenSquareOpen
	TokenSquareClose
	TokenParenOpen
	TokenParenClose
	TokenDollarCurly

	TokenEqual
	TokenNotEqual
	TokenLess
	TokenLessOrEq
	TokenMore
	TokenMoreOrEq
	TokenAnd
	TokenOr
	TokenImplication
	TokenNot
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenUpdate
	TokenConcat

	TokenLet
	TokenIn
	TokenRec
	TokenInherit
	TokenIf
	TokenThen
	TokenElse
	TokenWith
	TokenAssert
	TokenOrKeyword
)

// Node kinds.
const (
	NodeRoot Kind = iota + 64
	NodeIdent
	NodeLiteral
	NodeString
	NodeList
	NodeAttrSet
	NodeKeyValue
	NodeKey
	NodeDynamic
	NodeInherit
	NodeInheritFrom
	NodeSelect
	NodeOrDefault
	NodeParen
	NodeLambda
	NodePattern
	NodePatEntry
	NodePatBind
	NodeApply
	NodeBinOp
	NodeUnaryOp
	NodeLetIn
	NodeLegacyLet
	NodeIfElse
	NodeWith
	NodeAssert
	NodeError

	nodeKindEnd
)

const tokenKindEnd Kind = TokenOrKeyword + 1

// IsToken returns true if k is a leaf token kind.
func (k Kind) IsToken() bool {
	return k < tokenKindEnd
}

// IsNode returns true if k is a composite node kind.
func (k Kind) IsNode() bool {
	return k >= NodeRoot && k < nodeKindEnd
}

// IsTrivia returns true for whitespace and comments.
func (k Kind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenComment
}

// AllKinds returns every defined kind, tokens first, in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, int(tokenKindEnd)+int(nodeKindEnd-NodeRoot))
	for k := TokenError; k < tokenKindEnd; k++ {
		kinds = append(kinds, k)
	}
	for k := NodeRoot; k < nodeKindEnd; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

var kindNames = map[Kind]string{
	TokenError:       "TOKEN_ERROR",
	TokenWhitespace:  "TOKEN_WHITESPACE",
	TokenComment:     "TOKEN_COMMENT",
	TokenIdent:       "TOKEN_IDENT",
	TokenInt:         "TOKEN_INT",
	TokenFloat:       "TOKEN_FLOAT",
	TokenPath:        "TOKEN_PATH",
	TokenURI:         "TOKEN_URI",
	TokenString:      "TOKEN_STRING",
	TokenAssign:      "TOKEN_ASSIGN",
	TokenSemicolon:   "TOKEN_SEMICOLON",
	TokenColon:       "TOKEN_COLON",
	TokenComma:       "TOKEN_COMMA",
	TokenDot:         "TOKEN_DOT",
	TokenEllipsis:    "TOKEN_ELLIPSIS",
	TokenQuestion:    "TOKEN_QUESTION",
	TokenAt:          "TOKEN_AT",
	TokenCurlyOpen:   "TOKEN_CURLY_OPEN",
	TokenCurlyClose:  "TOKEN_CURLY_CLOSE",
	TokenSquareOpen:  "TOKEN_SQUARE_OPEN",
	TokenSquareClose: "TOKEN_SQUARE_CLOSE",
	TokenParenOpen:   "TOKEN_PAREN_OPEN",
	TokenParenClose:  "TOKEN_PAREN_CLOSE",
	TokenDollarCurly: "TOKEN_DOLLAR_CURLY",
	TokenEqual:       "TOKEN_EQUAL",
	TokenNotEqual:    "TOKEN_NOT_EQUAL",
	TokenLess:        "TOKEN_LESS",
	TokenLessOrEq:    "TOKEN_LESS_OR_EQ",
	TokenMore:        "TOKEN_MORE",
	TokenMoreOrEq:    "TOKEN_MORE_OR_EQ",
	TokenAnd:         "TOKEN_AND",
	TokenOr:          "TOKEN_OR",
	TokenImplication: "TOKEN_IMPLICATION",
	TokenNot:         "TOKEN_NOT",
	TokenAdd:         "TOKEN_ADD",
	TokenSub:         "TOKEN_SUB",
	TokenMul:         "TOKEN_MUL",
	TokenDiv:         "TOKEN_DIV",
	TokenUpdate:      "TOKEN_UPDATE",
	TokenConcat:      "TOKEN_CONCAT",
	TokenLet:         "TOKEN_LET",
	TokenIn:          "TOKEN_IN",
	TokenRec:         "TOKEN_REC",
	TokenInherit:     "TOKEN_INHERIT",
	TokenIf:          "TOKEN_IF",
	TokenThen:        "TOKEN_THEN",
	TokenElse:        "TOKEN_ELSE",
	TokenWith:        "TOKEN_WITH",
	TokenAssert:      "TOKEN_ASSERT",
	TokenOrKeyword:   "TOKEN_OR_KEYWORD",

	NodeRoot:        "NODE_ROOT",
	NodeIdent:       "NODE_IDENT",
	NodeLiteral:     "NODE_LITERAL",
	NodeString:      "NODE_STRING",
	NodeList:        "NODE_LIST",
	NodeAttrSet:     "NODE_ATTR_SET",
	NodeKeyValue:    "NODE_KEY_VALUE",
	NodeKey:         "NODE_KEY",
	NodeDynamic:     "NODE_DYNAMIC",
	NodeInherit:     "NODE_INHERIT",
	NodeInheritFrom: "NODE_INHERIT_FROM",
	NodeSelect:      "NODE_SELECT",
	NodeOrDefault:   "NODE_OR_DEFAULT",
	NodeParen:       "NODE_PAREN",
	NodeLambda:      "NODE_LAMBDA",
	NodePattern:     "NODE_PATTERN",
	NodePatEntry:    "NODE_PAT_ENTRY",
	NodePatBind:     "NODE_PAT_BIND",
	NodeApply:       "NODE_APPLY",
	NodeBinOp:       "NODE_BIN_OP",
	NodeUnaryOp:     "NODE_UNARY_OP",
	NodeLetIn:       "NODE_LET_IN",
	NodeLegacyLet:   "NODE_LEGACY_LET",
	NodeIfElse:      "NODE_IF_ELSE",
	NodeWith:        "NODE_WITH",
	NodeAssert:      "NODE_ASSERT",
	NodeError:       "NODE_ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "KIND_UNKNOWN"
}

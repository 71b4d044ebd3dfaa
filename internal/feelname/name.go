// Package feelname implements Name and QualifiedName (C4): a non-empty
// sequence of tokens whose canonical string form is the identifier used as
// a context key or variable reference.
package feelname

import "strings"

// punctuation tokens render without a preceding space when they follow
// another token, matching FEEL's name-printing rules for compound names
// like "decimal separator" vs. "start position" (plain words, space
// joined) and names containing operators.
var noSpaceBefore = map[string]bool{
	".": true, ",": true, ":": true, "'": true, "+": true, "-": true,
}

// Name is an ordered, non-empty sequence of tokens. Two Names are equal iff
// their token sequences are equal.
type Name struct {
	tokens []string
}

// New builds a Name from its constituent tokens, e.g.
// New("decimal", "separator") for the compound BIF parameter name "decimal
// separator".
func New(tokens ...string) Name {
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return Name{tokens: cp}
}

// Of builds a single-token Name, the common case for simple identifiers.
func Of(token string) Name { return Name{tokens: []string{token}} }

// FromString splits a canonical rendered name back into tokens on single
// spaces. This is the inverse of String for names without punctuation.
func FromString(s string) Name {
	return Name{tokens: strings.Split(s, " ")}
}

func (n Name) Tokens() []string {
	cp := make([]string, len(n.tokens))
	copy(cp, n.tokens)
	return cp
}

// String renders the canonical form: tokens joined by single spaces, except
// punctuation tokens which attach to the previous token without a space.
func (n Name) String() string {
	var b strings.Builder
	for i, tok := range n.tokens {
		if i > 0 && !noSpaceBefore[tok] {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// Equal reports token-sequence equality.
func (n Name) Equal(other Name) bool {
	if len(n.tokens) != len(other.tokens) {
		return false
	}
	for i := range n.tokens {
		if n.tokens[i] != other.tokens[i] {
			return false
		}
	}
	return true
}

func (n Name) IsZero() bool { return len(n.tokens) == 0 }

// QualifiedName is a dotted sequence of Names, e.g. `a.b.c`, used for path
// expressions that traverse nested contexts.
type QualifiedName struct {
	Segments []Name
}

func (q QualifiedName) String() string {
	parts := make([]string, len(q.Segments))
	for i, s := range q.Segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

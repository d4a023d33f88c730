package token

// Scanner is anything that produces tokens one at a time, in order, ending
// with an unbounded run of EOF tokens. *lexer.Lexer implements this.
type Scanner interface {
	Scan() Token
}

// Buffer sits between a Scanner and the parser. It keeps a small ordered
// queue of tokens so the parser can look ahead by up to two tokens (needed
// only to distinguish an assignment expression "IDENT =" from any other
// expression starting with an identifier) and can push one token back.
type Buffer struct {
	s Scanner
	q []Token
}

// NewBuffer wraps s in a Buffer with an empty queue.
func NewBuffer(s Scanner) *Buffer {
	return &Buffer{s: s}
}

// fill ensures the queue holds at least n+1 tokens.
func (b *Buffer) fill(n int) {
	for len(b.q) <= n {
		b.q = append(b.q, b.s.Scan())
	}
}

// Advance dequeues and returns the next token, refilling from the scanner to
// keep at least one token of look-ahead available.
func (b *Buffer) Advance() Token {
	b.fill(0)
	t := b.q[0]
	b.q = b.q[1:]
	return t
}

// Peek returns the token n positions ahead of the next Advance without
// consuming it. Peek(0) is what Advance would return next.
func (b *Buffer) Peek(n int) Token {
	b.fill(n)
	return b.q[n]
}

// Unread pushes t back onto the front of the queue, so the next Advance
// returns it again.
func (b *Buffer) Unread(t Token) {
	b.q = append([]Token{t}, b.q...)
}

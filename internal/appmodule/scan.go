package appmodule

// matchClose returns the index of the byte closing the group opened at
// s[open], counting nested open/close pairs. String literals and comments
// are skipped. ok is false when the group never closes.
func matchClose(s string, open int, openCh, closeCh byte) (idx int, ok bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'', '"', '`':
			i = skipString(s, i)
		case '/':
			i = skipComment(s, i)
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return len(s), false
}

// skipString returns the index of the quote closing the literal starting at
// s[start], or the last index of s.
func skipString(s string, start int) int {
	quote := s[start]
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i
		case '\n':
			if quote != '`' {
				return i
			}
		}
	}
	return len(s) - 1
}

// skipComment returns the last index of the comment starting at s[start].
// When s[start] does not begin a comment, start is returned unchanged.
func skipComment(s string, start int) int {
	if start+1 >= len(s) {
		return start
	}
	switch s[start+1] {
	case '/':
		for i := start + 2; i < len(s); i++ {
			if s[i] == '\n' {
				return i
			}
		}
		return len(s) - 1
	case '*':
		for i := start + 2; i+1 < len(s); i++ {
			if s[i] == '*' && s[i+1] == '/' {
				return i + 1
			}
		}
		return len(s) - 1
	}
	return start
}

// identifiers returns the identifier tokens of s outside string literals and
// comments, in order.
func identifiers(s string) []string {
	var ids []string
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\'' || c == '"' || c == '`':
			i = skipString(s, i)
		case c == '/':
			i = skipComment(s, i)
		case isIdentByte(c):
			j := i + 1
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			ids = append(ids, s[i:j])
			i = j - 1
		}
	}
	return ids
}

// lastCode returns the index of the last byte of s that is neither
// whitespace nor part of a comment, or -1.
func lastCode(s string) int {
	last := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '\t', '\r', '\n':
		case '\'', '"', '`':
			i = skipString(s, i)
			last = i
		case '/':
			if end := skipComment(s, i); end != i {
				i = end
				continue
			}
			last = i
		default:
			last = i
		}
	}
	return last
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

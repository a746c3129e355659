package display

// IsGeometry reports whether token matches the geometry shape WxH+X+Y:
// two non-empty digit runs joined by 'x', followed by two signed offsets
// where each sign is exactly '+' or '-' and is followed by at least one
// digit. The whole token must be consumed. This is a grammar check, not a
// range check; arbitrarily long digit runs are accepted.
func IsGeometry(token string) bool {
	i, ok := consumeDigits(token, 0)
	if !ok {
		return false
	}
	if i >= len(token) || token[i] != 'x' {
		return false
	}
	i, ok = consumeDigits(token, i+1)
	if !ok {
		return false
	}
	i, ok = consumeSigned(token, i)
	if !ok {
		return false
	}
	i, ok = consumeSigned(token, i)
	if !ok {
		return false
	}
	return i == len(token)
}

// consumeDigits advances past a non-empty run of ASCII digits.
func consumeDigits(s string, i int) (int, bool) {
	if i >= len(s) || !isDigit(s[i]) {
		return i, false
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i, true
}

// consumeSigned advances past a '+' or '-' followed by a non-empty digit run.
func consumeSigned(s string, i int) (int, bool) {
	if i >= len(s) || (s[i] != '+' && s[i] != '-') {
		return i, false
	}
	return consumeDigits(s, i+1)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

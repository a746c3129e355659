package util

import "fmt"

// DecodeHex converts a whitespace-tolerant hex string to bytes. All ASCII
// whitespace is stripped first; the remaining characters must form
// complete pairs of hex digits. Fails atomically: no partial output is
// ever returned alongside an error.
func DecodeHex(s string) ([]byte, error) {
	compact := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !isASCIISpace(s[i]) {
			compact = append(compact, s[i])
		}
	}

	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("hex length is not even")
	}

	bytes := make([]byte, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		hi, hiOK := hexDigit(compact[i])
		lo, loOK := hexDigit(compact[i+1])
		if !hiOK || !loOK {
			return nil, fmt.Errorf("invalid hex pair: %c%c", compact[i], compact[i+1])
		}
		bytes = append(bytes, hi<<4|lo)
	}

	return bytes, nil
}

// hexDigit returns the value of a hex digit, case-insensitive.
func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

package transform

import "strings"

func ROT13(input string) (string, error) {
	return caesarShift(input, 13), nil
}

// ROT47 rotates every printable ASCII character (33..126) by 47 positions.
func ROT47(input string) (string, error) {
	var b strings.Builder
	b.Grow(len(input))
	for _, c := range []byte(input) {
		if c >= 33 && c <= 126 {
			c = 33 + (c-33+47)%94
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// CaesarCipher shifts letters by the classic offset of 3.
func CaesarCipher(input string) (string, error) {
	return caesarShift(input, 3), nil
}

func caesarShift(input string, shift int) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, c := range []byte(input) {
		switch {
		case c >= 'a' && c <= 'z':
			c = 'a' + (c-'a'+byte(shift))%26
		case c >= 'A' && c <= 'Z':
			c = 'A' + (c-'A'+byte(shift))%26
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ReverseText reverses the input rune by rune.
func ReverseText(input string) (string, error) {
	runes := []rune(input)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

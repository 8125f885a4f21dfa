package pure_utils

import (
	"bufio"
	"io"
)

const (
	bom0 = 0xef
	bom1 = 0xbb
	bom2 = 0xbf
)

// StringWithoutBom drops a leading UTF-8 byte order mark, if any.
func StringWithoutBom(s string) string {
	if len(s) >= 3 && s[0] == bom0 && s[1] == bom1 && s[2] == bom2 {
		return s[3:]
	}
	return s
}

func NewReaderWithoutBom(r io.Reader) io.Reader {
	buf := bufio.NewReader(r)
	b, err := buf.Peek(3)
	if err != nil {
		// not enough bytes
		return buf
	}
	if b[0] == bom0 && b[1] == bom1 && b[2] == bom2 {
		_, _ = buf.Discard(3)
	}
	return buf
}

// Package encoding normalizes the text encodings found in asset files.
package encoding

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToUTF8 returns data as UTF-8 text. A leading byte order mark is dropped.
// Data that is not valid UTF-8 is taken to be Windows-1252, the usual
// encoding of older exporters.
func ToUTF8(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data
	}
	result, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return data
	}
	return result
}

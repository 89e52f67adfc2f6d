package driver

import (
	"os"

	"golang.org/x/text/encoding/unicode"
)

// readSource reads path and hands the lexer clean UTF-8. LORS keywords
// are ASCII but identifiers and string contents may be any UTF-8, and
// editors on some platforms prepend a byte-order mark; decoding through
// unicode.UTF8BOM strips a leading BOM so it can never reach the lexer,
// which would otherwise read it as the start of an identifier.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

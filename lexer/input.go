package lexer

import (
	"fmt"
	"io/ioutil"
)

// ReadFile reads the whole file into the raw byte buffer a Scanner is
// constructed from. This is the only fallible operation in the system:
// on failure no Scanner should be constructed and the error is surfaced
// to the caller as-is.
func ReadFile(path string) ([]byte, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

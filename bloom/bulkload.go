package bloom

import (
	"os"
	"strings"
)

// Add adds item to the filter.
//
// If item names a readable file, the call is reinterpreted as a bulk load
// of that file's comma-separated tokens. Otherwise item is added as a
// literal string. The probe is soft: any failure to read the file degrades
// to the literal interpretation rather than erroring.
//
// A literal that happens to name an existing file is silently bulk-loaded;
// callers that cannot tolerate the ambiguity should use AddString or
// AddFromFile directly.
func (f *Filter) Add(item string) {
	if _, err := f.AddFromFile(item); err == nil {
		return
	}
	f.AddString(item)
}

// AddFromFile bulk-loads path: the file is read as comma-separated tokens,
// each trimmed of surrounding whitespace and added as a literal string.
// Empty tokens are skipped. Returns the number of tokens added.
func (f *Filter) AddFromFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, tok := range strings.Split(string(data), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		f.AddString(tok)
		n++
	}
	return n, nil
}

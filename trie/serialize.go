package trie

import (
	"bufio"
	"io"
)

// WriteTo writes the word set to w, one word per line in ascending byte
// order. Words must not contain newline characters. Implements
// io.WriterTo.
func (t *Trie) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, word := range t.Words() {
		n, err := io.WriteString(w, word+"\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadFrom reads newline-separated words from r, inserting each into t.
// Blank lines are skipped. The receiver accumulates: reading into a
// non-empty trie adds to its existing word set. Implements io.ReaderFrom.
func (t *Trie) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	sc := bufio.NewScanner(cr)
	for sc.Scan() {
		if word := sc.Text(); word != "" {
			t.Insert(word)
		}
	}
	return cr.n, sc.Err()
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

package pubsub

import (
	"fmt"
	"io"
)

// Reader is a subscriber that acknowledges each notification on its sink.
type Reader struct {
	name string
	out  io.Writer
}

// NewReader creates a reader writing acknowledgments to out.
func NewReader(name string, out io.Writer) *Reader {
	return &Reader{name: name, out: out}
}

// Name returns the reader's name.
func (r *Reader) Name() string {
	return r.name
}

// Notify acknowledges receipt of the article.
func (r *Reader) Notify(article string) {
	fmt.Fprintf(r.out, "%s received notification: %s\n", r.name, article)
}

package emx

import "fmt"

// cursor walks forward through an EMX payload, the same discipline as
// kma's cursor: every sub-view aliases body, nothing is copied.
type cursor struct {
	body []byte
	off  int
}

func newCursor(body []byte) *cursor { return &cursor{body: body} }

func (c *cursor) take(n int, what string) ([]byte, error) {
	if n < 0 || c.off+n > len(c.body) {
		return nil, fmt.Errorf("%s: declared size %d overruns datagram body (have %d bytes left at offset %d)",
			what, n, len(c.body)-c.off, c.off)
	}
	b := c.body[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) rest() []byte { return c.body[c.off:] }

func (c *cursor) remaining() int { return len(c.body) - c.off }

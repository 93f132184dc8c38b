package list

import (
	"fmt"
	"io"
)

// Dump writes one "index: value" line per element to w, in list order.
// It never mutates the list and writes nothing for an empty list. The
// traversal visits exactly Len() nodes.
func (l *List[T]) Dump(w io.Writer) error {
	i := 0
	for n := l.head; n != nil && i < l.length; n = n.next {
		if _, err := fmt.Fprintf(w, "%d: %v\n", i, n.value); err != nil {
			return err
		}
		i++
	}
	return nil
}

package dgramtestutil

import (
	"bytes"
	"sync"

	"github.com/grailbio/testutil/h"

	"github.com/sounder/dgram/kma"
)

var once sync.Once

// RegisterKMADatagramComparator adds a github.com/grailbio/testutil/h
// comparator for kma.Datagram. Threadsafe and idempotent.
func RegisterKMADatagramComparator() {
	once.Do(func() {
		h.RegisterComparator(func(a, b kma.Datagram) (int, error) {
			if a.Kind == b.Kind && bytes.Equal(a.Raw, b.Raw) {
				return 0, nil
			}
			return 1, nil
		})
	})
}

package jyutping

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bastiangx/jyutserve/pkg/store"
	"github.com/google/go-cmp/cmp"
)

var testQueries = []string{
	"f", "fa", "faa", "faa1",
	"g", "gw", "gwaa", "gwok3",
	"ng", "ngaa", "m", "aa", "ang", "",
}

func TestConcurrentLookups(t *testing.T) {
	s := store.Skeleton(DefaultOnsets(), DefaultRimes())
	s.Set("faa", []string{"花"})
	s.Set("gwaa", []string{"瓜"})
	s.Set("ngaa", []string{"牙"})
	engine := NewFromStore(s)

	want := make(map[string]Result, len(testQueries))
	for _, q := range testQueries {
		want[q] = engine.Lookup(q)
	}

	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 200},
		{workers: 4, iterationsPerWorker: 50},
		{workers: 8, iterationsPerWorker: 25},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan string, config.workers)
			for w := 0; w < config.workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < config.iterationsPerWorker; i++ {
						q := testQueries[i%len(testQueries)]
						if diff := cmp.Diff(want[q], engine.Lookup(q)); diff != "" {
							errs <- fmt.Sprintf("Lookup(%q) changed:\n%s", q, diff)
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errs)
			for msg := range errs {
				t.Error(msg)
			}
		})
	}
}

func BenchmarkLookup(b *testing.B) {
	s := store.Skeleton(DefaultOnsets(), DefaultRimes())
	engine := NewFromStore(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Lookup(testQueries[i%len(testQueries)])
	}
}

// Command ecsprofile runs a handful of throwaway workloads against the
// archecs store under github.com/pkg/profile, for ad-hoc CPU/heap
// profiling outside the test suite's benchmarks.
package main

import (
	"flag"
	"fmt"

	"github.com/edwinsyarief/archecs"
	"github.com/pkg/profile"
)

type position struct{ X, Y float64 }
type velocity struct{ X, Y float64 }

func main() {
	mode := flag.String("mode", "cpu", "profile mode: cpu or mem")
	workload := flag.String("workload", "spawn", "workload: spawn, churn, or query")
	entities := flag.Int("n", 200000, "entity count")
	flag.Parse()

	switch *mode {
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	default:
		defer profile.Start(profile.CPUProfile).Stop()
	}

	switch *workload {
	case "churn":
		runChurn(*entities)
	case "query":
		runQuery(*entities)
	default:
		runSpawn(*entities)
	}
}

func runSpawn(n int) {
	w := archecs.NewWorld()
	for i := 0; i < n; i++ {
		b := w.Spawn()
		archecs.With(b, position{X: float64(i)})
		archecs.With(b, velocity{X: 1})
		b.Build()
	}
	fmt.Printf("spawned %d entities\n", n)
}

func runChurn(n int) {
	w := archecs.NewWorld()
	es := make([]archecs.Entity, n)
	for i := range es {
		b := w.Spawn()
		archecs.With(b, position{})
		es[i] = b.Build()
	}
	for _, e := range es {
		archecs.Add(w, e, velocity{X: 1})
		archecs.Remove[velocity](w, e)
	}
	fmt.Printf("churned add/remove over %d entities\n", n)
}

func runQuery(n int) {
	w := archecs.NewWorld()
	for i := 0; i < n; i++ {
		b := w.Spawn()
		archecs.With(b, position{X: float64(i)})
		archecs.With(b, velocity{X: 1})
		b.Build()
	}
	q := archecs.NewQuery2[position, velocity](w)
	defer q.Close()
	sum := 0.0
	for q.Next() {
		p, v := q.Get1(), q.Get2()
		p.X += v.X
		sum += p.X
	}
	fmt.Printf("swept %d rows, sum=%g\n", n, sum)
}

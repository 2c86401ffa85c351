package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ajwerner/splay"
	"github.com/ajwerner/splay/strmap"
)

func newBenchCmd(log zerolog.Logger) *cobra.Command {
	var scenarioFile string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time scripted operation sequences against the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := defaultScenarios()
			if scenarioFile != "" {
				var err error
				if scenarios, err = loadScenarios(scenarioFile); err != nil {
					return err
				}
			}
			for i := range scenarios {
				runScenario(log, &scenarios[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioFile, "scenarios", "s", "",
		"YAML file with benchmark scenarios (default: built-in suite)")
	return cmd
}

func runScenario(log zerolog.Logger, sc *Scenario) {
	rng := rand.New(rand.NewSource(sc.Seed))
	keys := make([]string, sc.Inserts)
	values := make([]string, sc.Inserts)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%d", i)
		values[i] = uuid.NewString()
	}
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	log.Debug().Str("scenario", sc.Name).Int("keys", len(keys)).
		Msg("generated workload")

	m := strmap.New()

	var inserts opStats
	for i, k := range keys {
		start := time.Now()
		m.Insert(k, values[i])
		inserts.add(time.Since(start))
	}
	report(log, sc.Name, "insert", &inserts)

	if sc.Gets > 0 {
		var gets opStats
		for i := 0; i < sc.Gets; i++ {
			k := keys[rng.Intn(len(keys))]
			start := time.Now()
			_, ok := m.Get(k)
			gets.add(time.Since(start))
			if !ok {
				log.Error().Str("key", k).Msg("loaded key missing")
			}
		}
		report(log, sc.Name, "get", &gets)
	}

	if sc.HotGets > 0 {
		hot := keys[rng.Intn(len(keys))]
		m.Get(hot) // splay the key to the root before timing
		var gets opStats
		for i := 0; i < sc.HotGets; i++ {
			start := time.Now()
			m.Get(hot)
			gets.add(time.Since(start))
		}
		report(log, sc.Name, "hot-get", &gets)
	}

	if sc.Deletes > 0 {
		var deletes opStats
		for _, k := range keys[:sc.Deletes] {
			start := time.Now()
			ok := m.Delete(k)
			deletes.add(time.Since(start))
			if !ok {
				log.Error().Str("key", k).Msg("loaded key already absent")
			}
		}
		report(log, sc.Name, "delete", &deletes)
	}
}

func report(log zerolog.Logger, scenario, op string, s *opStats) {
	log.Info().
		Str("scenario", scenario).
		Str("op", op).
		Int64("count", s.count).
		Dur("avg", s.average).
		Dur("median", s.median()).
		Msg("timed")
}

// bucketTick is the latency histogram granularity.
const bucketTick = 100 * time.Nanosecond

// opStats accumulates per-operation latencies: an incrementally maintained
// average plus a histogram for the median. The histogram is itself a splay
// map keyed by bucket, which suits the workload: consecutive latencies tend
// to land in the bucket already at the root.
type opStats struct {
	buckets   splay.Map[int64, int64]
	maxBucket int64
	count     int64
	average   time.Duration
}

func (s *opStats) add(d time.Duration) {
	if s.count == 0 {
		s.buckets = splay.MakeMap[int64, int64](func(a, b int64) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		})
	}
	bucket := int64(d / bucketTick)
	n, _ := s.buckets.Get(bucket)
	s.buckets.Upsert(bucket, n+1)
	if bucket > s.maxBucket {
		s.maxBucket = bucket
	}
	s.count++
	s.average += (d - s.average) / time.Duration(s.count)
}

func (s *opStats) median() time.Duration {
	if s.count == 0 {
		return 0
	}
	middle := (s.count + 1) / 2
	var seen int64
	for b := int64(0); b <= s.maxBucket; b++ {
		n, ok := s.buckets.Get(b)
		if !ok {
			continue
		}
		seen += n
		if seen >= middle {
			return time.Duration(b) * bucketTick
		}
	}
	return time.Duration(s.maxBucket) * bucketTick
}

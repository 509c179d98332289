package contagiongo

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"
)

// SweepConfig parameterizes the grid sweep over (p_traced, p_app).
// Intervention supplies every knob except PTraced/PApp, which the
// sweep overrides per cell.
type SweepConfig struct {
	Disease      DiseaseParams
	Intervention InterventionParams
	Iterations   int
	BaseSeed     int64
	Threads      int
	// GridSteps is the number of samples per axis in [0,1]; 11 gives a
	// step of 0.1.
	GridSteps int
	// Metrics, if non-nil, is updated as replicates complete.
	Metrics *SweepMetrics
}

// cellSeed derives a goroutine-private seed for one (cell, replicate)
// pair so runs are reproducible independent of scheduling order:
// baseSeed + cellIndex*1e6 + replicateIndex.
func cellSeed(base int64, cellIndex, replicateIndex int) int64 {
	return base + int64(cellIndex)*1_000_000 + int64(replicateIndex)
}

type sweepJob struct {
	cellIndex, repIndex int
	pTraced, pApp       float64
}

// RunSweep runs cfg.Iterations independent replicates at every point of
// a GridSteps x GridSteps grid over (p_traced, p_app), fanning the
// (cell, replicate) work out across a bounded worker pool (embarrassingly
// parallel across cell and replicate, single-threaded within a run),
// then writes the parameter preamble and one TSV data line per
// replicate to out, in grid order.
func RunSweep(log *ContactLog, cfg SweepConfig, out io.Writer) error {
	steps := cfg.GridSteps
	if steps <= 0 {
		steps = 11
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	start := time.Now()

	total := steps * steps
	results := make([][]RunResult, total)
	for c := range results {
		results[c] = make([]RunResult, cfg.Iterations)
	}

	jobs := make(chan sweepJob)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				interv := cfg.Intervention
				interv.PTraced = job.pTraced
				interv.PApp = job.pApp
				interv.resolveDurations()
				rng := NewRNG(cellSeed(cfg.BaseSeed, job.cellIndex, job.repIndex))
				res, err := RunSimulation(log, cfg.Disease, interv, rng)
				if err != nil {
					continue
				}
				results[job.cellIndex][job.repIndex] = res
				cfg.Metrics.ObserveReplicate(res)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for ci := 0; ci < steps; ci++ {
			pTraced := float64(ci) / float64(steps-1)
			for cj := 0; cj < steps; cj++ {
				pApp := float64(cj) / float64(steps-1)
				cellIndex := ci*steps + cj
				for rep := 0; rep < cfg.Iterations; rep++ {
					jobs <- sweepJob{cellIndex: cellIndex, repIndex: rep, pTraced: pTraced, pApp: pApp}
				}
			}
		}
	}()

	wg.Wait()

	if err := writePreamble(out, cfg); err != nil {
		return err
	}
	for ci := 0; ci < steps; ci++ {
		pTraced := float64(ci) / float64(steps-1)
		for cj := 0; cj < steps; cj++ {
			pApp := float64(cj) / float64(steps-1)
			cellIndex := ci*steps + cj
			for rep := 0; rep < cfg.Iterations; rep++ {
				r := results[cellIndex][rep]
				if _, err := fmt.Fprintf(out, "%g\t%g\t%d\t%d\t%d\n", pTraced, pApp, r.TotalInfected, r.Quarantines, r.FalseQuarantines); err != nil {
					return err
				}
			}
		}
	}

	elapsed := time.Since(start)
	_, err := fmt.Fprintf(out, "Time: %.2f min\n", elapsed.Minutes())
	return err
}

// writePreamble emits the run's fixed parameters as `Parameter\tname\tvalue`
// lines ahead of the data rows.
func writePreamble(out io.Writer, cfg SweepConfig) error {
	lines := []struct {
		name string
		val  float64
	}{
		{"p_tested", cfg.Intervention.PTested},
		{"p_mask", cfg.Intervention.PMask},
		{"test_delay_days", cfg.Intervention.TestDelayDays},
		{"trace_delay_manual_days", cfg.Intervention.TraceDelayManualDays},
		{"trace_delay_app_days", cfg.Intervention.TraceDelayAppDays},
		{"tracelength_days", cfg.Intervention.TracelengthDays},
		{"quarantine_length_days", cfg.Intervention.QuarantineLengthDays},
		{"iterations", float64(cfg.Iterations)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(out, "Parameter\t%s\t%g\n", l.name, l.val); err != nil {
			return err
		}
	}
	return nil
}

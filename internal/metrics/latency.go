// Package metrics aggregates latency over repeated request cycles.
package metrics

import (
	"sort"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	// Latencies are recorded in microseconds, from 1µs to one hour, with 3
	// significant figures.
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// Recorder collects the outcome of sequential request cycles. It is not
// safe for concurrent use.
type Recorder struct {
	hist     *hdrhistogram.Histogram
	statuses map[int]int
	failures int
	bytes    int64
	start    time.Time
}

// NewRecorder creates an empty recorder; its clock starts now.
func NewRecorder() *Recorder {
	return &Recorder{
		hist:     hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
		statuses: make(map[int]int),
		start:    time.Now(),
	}
}

// Record adds one cycle. A failed cycle (one that returned an error) still
// counts its latency; status 0 means no response was produced.
func (r *Recorder) Record(latency time.Duration, status int, bytes int, failed bool) {
	micros := latency.Microseconds()
	if micros < histogramMin {
		micros = histogramMin
	}
	if micros > histogramMax {
		micros = histogramMax
	}
	r.hist.RecordValue(micros)

	if status != 0 {
		r.statuses[status]++
	}
	if failed {
		r.failures++
	}
	r.bytes += int64(bytes)
}

// StatusCount is the number of responses seen with one status code.
type StatusCount struct {
	Status int `json:"status" yaml:"status"`
	Count  int `json:"count" yaml:"count"`
}

// Summary is a snapshot of everything recorded so far.
type Summary struct {
	Requests int64         `json:"requests" yaml:"requests"`
	Failures int           `json:"failures" yaml:"failures"`
	Bytes    int64         `json:"bytes" yaml:"bytes"`
	Statuses []StatusCount `json:"statuses" yaml:"statuses"`
	Elapsed  time.Duration `json:"elapsed" yaml:"elapsed"`
	Min      time.Duration `json:"min" yaml:"min"`
	Mean     time.Duration `json:"mean" yaml:"mean"`
	P50      time.Duration `json:"p50" yaml:"p50"`
	P90      time.Duration `json:"p90" yaml:"p90"`
	P99      time.Duration `json:"p99" yaml:"p99"`
	Max      time.Duration `json:"max" yaml:"max"`
}

// Summary computes percentiles and status counts, statuses sorted by code.
func (r *Recorder) Summary() Summary {
	statuses := make([]StatusCount, 0, len(r.statuses))
	for status, count := range r.statuses {
		statuses = append(statuses, StatusCount{Status: status, Count: count})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Status < statuses[j].Status })

	s := Summary{
		Requests: r.hist.TotalCount(),
		Failures: r.failures,
		Bytes:    r.bytes,
		Statuses: statuses,
		Elapsed:  time.Since(r.start),
	}
	if s.Requests == 0 {
		return s
	}

	s.Min = micros(r.hist.Min())
	s.Mean = micros(int64(r.hist.Mean()))
	s.P50 = micros(r.hist.ValueAtQuantile(50))
	s.P90 = micros(r.hist.ValueAtQuantile(90))
	s.P99 = micros(r.hist.ValueAtQuantile(99))
	s.Max = micros(r.hist.Max())
	return s
}

func micros(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}

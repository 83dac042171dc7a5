// Package profiling builds pprof profiles of the in-circuit verifier's
// per-stage cost (transcript absorption, β-stroke, polynomial
// evaluation, Lagrange coefficients, instance folding), so it can be
// inspected with any standard pprof viewer.
package profiling

import (
	"io"
	"time"

	"github.com/google/pprof/profile"
)

// GateCost is one accounted cost site inside the in-circuit verifier,
// recorded in units of R1CS/PLONK constraints.
type GateCost struct {
	Site        string
	Constraints int64
}

// Collector accumulates GateCost samples during circuit construction
// and renders them as a pprof profile keyed by call site.
type Collector struct {
	samples []GateCost
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add records constraints spent at site. Called from the circuit
// package as each verifier sub-step is assembled; a nil collector
// discards the sample, so profiling stays strictly opt-in.
func (c *Collector) Add(site string, constraints int64) {
	if c == nil {
		return
	}
	c.samples = append(c.samples, GateCost{Site: site, Constraints: constraints})
}

// WriteProfile renders the accumulated samples as a gzip-encoded pprof
// profile with a single "constraints" value type.
func (c *Collector) WriteProfile(w io.Writer) error {
	locByName := map[string]*profile.Location{}
	funcByName := map[string]*profile.Function{}
	var functions []*profile.Function
	var locations []*profile.Location
	var samples []*profile.Sample

	nextID := uint64(1)
	for _, s := range c.samples {
		fn, ok := funcByName[s.Site]
		if !ok {
			fn = &profile.Function{ID: nextID, Name: s.Site}
			nextID++
			funcByName[s.Site] = fn
			functions = append(functions, fn)
		}
		loc, ok := locByName[s.Site]
		if !ok {
			loc = &profile.Location{
				ID:   nextID,
				Line: []profile.Line{{Function: fn}},
			}
			nextID++
			locByName[s.Site] = loc
			locations = append(locations, loc)
		}
		samples = append(samples, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{s.Constraints},
		})
	}

	p := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "constraints", Unit: "count"}},
		Sample:     samples,
		Location:   locations,
		Function:   functions,
		TimeNanos:  time.Now().UnixNano(),
	}
	return p.Write(w)
}

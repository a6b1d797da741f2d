package telemetry

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Stats holds one render's timing breakdown, supplementing spec.md with
// the bounding_timer/render_timer split from
// dmnsn_render_scene_thread (original_source/libdimension/render.c):
// time spent building the spatial index versus time spent tracing rays.
type Stats struct {
	BVHBuildTime time.Duration
	TraceTime    time.Duration
	RowsTraced   int
	PixelsTraced int
}

// Profiler times a render's phases and reports them through a
// *zap.Logger, generalizing the teacher's Profiler (profiling.go) which
// accumulates the same kind of Begin/End timing pairs but formats them
// with fmt.Sprintf instead of structured fields.
type Profiler struct {
	logger *zap.Logger
	stats  Stats

	bvhStart   time.Time
	traceStart time.Time
}

func NewProfiler(logger *zap.Logger) *Profiler {
	return &Profiler{logger: logger}
}

func (p *Profiler) BeginBVHBuild() { p.bvhStart = time.Now() }
func (p *Profiler) EndBVHBuild()   { p.stats.BVHBuildTime += time.Since(p.bvhStart) }

func (p *Profiler) BeginTrace() { p.traceStart = time.Now() }
func (p *Profiler) EndTrace()   { p.stats.TraceTime += time.Since(p.traceStart) }

// RecordRow accounts for one completed image row of the given width.
func (p *Profiler) RecordRow(width int) {
	p.stats.RowsTraced++
	p.stats.PixelsTraced += width
}

func (p *Profiler) Stats() Stats { return p.stats }

// Report logs the final render statistics at info level.
func (p *Profiler) Report() {
	p.logger.Info("render complete",
		zap.Duration("bvh_build_time", p.stats.BVHBuildTime),
		zap.Duration("trace_time", p.stats.TraceTime),
		zap.Int("rows_traced", p.stats.RowsTraced),
		zap.Int("pixels_traced", p.stats.PixelsTraced),
	)
}

// String matches the teacher's Profiler.String() convention: a compact,
// human-readable one-liner for terminal output alongside the structured
// log line Report emits.
func (s Stats) String() string {
	return fmt.Sprintf("bvh build: %s, trace: %s, rows: %d, pixels: %d",
		s.BVHBuildTime, s.TraceTime, s.RowsTraced, s.PixelsTraced)
}

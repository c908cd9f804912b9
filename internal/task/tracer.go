package task

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global syntax tracer, in the style established by
// fol.tracer()/lr.T().
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

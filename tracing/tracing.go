// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tracing records plan executions as OpenTelemetry spans.
//
// Install adds handlers to an adagx.HandlerGroup. Each execution gets
// one client span, started before the first attempt and ended with the
// execution. Every attempt carries the span's W3C trace context in its
// request headers, and attempt timeouts and retry waits are recorded as
// span events.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogama/adagx"
	"github.com/gogama/adagx/request"
	"github.com/gogama/adagx/transient"
)

// ScopeName is the instrumentation scope of the tracer.
const ScopeName = "github.com/gogama/adagx/tracing"

// Options configure Install.
type Options struct {
	// TracerProvider creates the tracer. If nil, the global provider
	// is used.
	TracerProvider trace.TracerProvider
	// Propagator injects the trace context into request headers. If
	// nil, the global propagator is used.
	Propagator propagation.TextMapPropagator
}

type spanKey struct{}

type state struct {
	ctx  context.Context
	span trace.Span
}

// Install adds the tracing handlers to g. Install it before other
// handlers that need the trace context in BeforeAttempt, or use
// PushFront for those.
func Install(g *adagx.HandlerGroup, o Options) {
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	prop := o.Propagator
	if prop == nil {
		prop = otel.GetTextMapPropagator()
	}
	t := &tracer{tracer: tp.Tracer(ScopeName), prop: prop}

	g.PushBack(adagx.BeforeExecutionStart, adagx.HandlerFunc(t.start))
	g.PushBack(adagx.BeforeAttempt, adagx.HandlerFunc(t.inject))
	g.PushBack(adagx.AfterAttemptTimeout, adagx.HandlerFunc(t.event))
	g.PushBack(adagx.BeforeRetryWait, adagx.HandlerFunc(t.event))
	g.PushBack(adagx.AfterPlanTimeout, adagx.HandlerFunc(t.event))
	g.PushBack(adagx.AfterExecutionEnd, adagx.HandlerFunc(t.end))
}

type tracer struct {
	tracer trace.Tracer
	prop   propagation.TextMapPropagator
}

func (t *tracer) start(_ adagx.Event, e *request.Execution) {
	p := e.Plan
	ctx, span := t.tracer.Start(p.Context(), "adagx "+p.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", p.Method),
			attribute.String("url.full", p.URL.String()),
			attribute.String("server.address", p.URL.Hostname()),
		),
	)
	e.SetValue(spanKey{}, &state{ctx: ctx, span: span})
}

func (t *tracer) inject(_ adagx.Event, e *request.Execution) {
	s := stateOf(e)
	if s == nil {
		return
	}
	e.Request.Header = e.Request.Header.Clone()
	t.prop.Inject(s.ctx, propagation.HeaderCarrier(e.Request.Header))
}

func (t *tracer) event(evt adagx.Event, e *request.Execution) {
	s := stateOf(e)
	if s == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.Int("adagx.attempt", e.Attempt+1)}
	if status := e.StatusCode(); status != 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", status))
	}
	if evt == adagx.BeforeRetryWait {
		attrs = append(attrs, attribute.Int64("adagx.retry.wait_ms", e.Wait.Milliseconds()))
	}
	s.span.AddEvent(evt.Name(), trace.WithAttributes(attrs...))
}

func (t *tracer) end(_ adagx.Event, e *request.Execution) {
	s := stateOf(e)
	if s == nil {
		return
	}
	s.span.SetAttributes(
		attribute.Int("adagx.attempts", e.Attempt+1),
		attribute.Int("adagx.attempt_timeouts", e.AttemptTimeouts),
		attribute.String("adagx.outcome", e.Outcome().String()),
	)
	if status := e.StatusCode(); status != 0 {
		s.span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if e.Err != nil {
		errType := e.Outcome().String()
		if c := transient.Categorize(e.Err); c != transient.Not {
			errType = c.String()
		}
		s.span.SetAttributes(attribute.String("error.type", errType))
		s.span.RecordError(e.Err)
		s.span.SetStatus(codes.Error, e.Err.Error())
	}
	s.span.End()
}

func stateOf(e *request.Execution) *state {
	s, _ := e.Value(spanKey{}).(*state)
	return s
}

// SpanContext returns the span context of the execution's span, or an
// invalid span context if the execution is not traced.
func SpanContext(e *request.Execution) trace.SpanContext {
	if s := stateOf(e); s != nil {
		return s.span.SpanContext()
	}
	return trace.SpanContext{}
}

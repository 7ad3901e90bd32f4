// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package tdata holds the telemetry data model consumed by the stdout text
// exporter: dynamically typed attribute values, resources, instrumentation
// scopes, and the finalized log, span and metric batch types.
//
// All values are produced upstream by an instrumentation or collection
// layer and handed over as immutable, already-ordered snapshots; nothing in
// this package aggregates, deduplicates or reorders.
package tdata // import "go.opentelemetry.io/stdouttext/tdata"

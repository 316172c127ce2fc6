// Package vcs implements a local, file-backed version-control engine for the
// live VPS configuration. It snapshots the domain registry, settings, and
// generated NGINX configs into immutable content-identified commits, organizes
// them under named branch pointers, and supports tagging, checkout, diffing,
// and portable archives.
//
// Branches are lightweight named checkpoints over one shared, strictly linear
// commit log, not independent histories: creating a branch records the current
// log tail, and every commit appends to the same log regardless of which
// branch is active.
//
// The engine assumes a single local operator. There is no locking or
// optimistic-concurrency control; two processes mutating the same store
// concurrently can lose updates.
package vcs

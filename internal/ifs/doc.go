// Package ifs samples the attractor of an iterated function system with the
// chaos game.
//
// An [IFS] holds affine contractions and their selection weights. [IFS.Sample]
// starts at a point, repeatedly applies a randomly chosen map and records the
// visited points once a warm-up has been discarded. The visitation order is
// kept in the output; it is not a spatial order.
//
// Sampling is reproducible: every call builds its own generator from the
// seed in [SampleOptions], so two calls with the same seed return identical
// sequences.
package ifs

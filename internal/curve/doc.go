// Package curve turns a generation method into a point sequence.
//
// A [Method] is one of [Grammar] (deterministic L-system plus turtle),
// [Stochastic] (L-system with weighted alternatives) or [Chaos] (IFS
// chaos game). [Generate] dispatches on the concrete type. [Registry] maps
// the method names used in configuration files to builders, and [Sweep]
// generates several methods concurrently.
package curve

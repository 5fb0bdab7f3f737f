// Package dynamo provides the core primitives shared by the sampler.
//
// The package defines the types every other package speaks:
//
//   - [Vec]: two-component vector used for both position and momentum
//   - [Potential]: energy landscape with a gradient (see package target)
//   - [Result]: the positions of one chain plus its acceptance rate
//   - [Config]: parameters of one chain run
//
// # Hamiltonian
//
// The total energy of a phase-space point is H = U(q) + K(p), with
// unit mass kinetic energy K(p) = |p|²/2:
//
//	h := dynamo.Hamiltonian(pot, q, p)
//
// # Thread Safety
//
// All values are plain data. A [Result] is created by one run and never
// touched by it afterwards.
package dynamo

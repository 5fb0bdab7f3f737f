// Package target provides the densities the sampler draws from.
//
// Each [Variant] is an energy landscape U(q) = -log density (up to a
// constant) and implements [dynamo.Potential]:
//
//   - [Bimodal]: equal-weight Gaussian bumps at (2.5, 2.5) and (-2.5, -2.5)
//   - [Banana]: Rosenbrock valley with its minimum at (1, 1)
//
// Gradients are central finite differences of the potential, so adding a
// variant only needs its energy formula.
package target

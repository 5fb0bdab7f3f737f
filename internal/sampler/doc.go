// Package sampler runs a Hamiltonian Monte Carlo chain.
//
// Each iteration draws a fresh momentum, integrates the Hamiltonian
// dynamics with a leapfrog trajectory and keeps or rejects the endpoint
// with a Metropolis test:
//
//	res, err := sampler.RunChain(1000, 0.1, 10, 0, 0, "banana", sampler.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(res.Samples), res.AcceptanceRate)
//
// # Randomness
//
// Every [Sampler] owns its own source. Pass [WithSeed] or [WithSource] for
// reproducible chains; without either a freshly seeded source is used.
// Draws are consumed in a fixed order per iteration: momentum x, momentum y,
// then the acceptance uniform.
//
// # Thread Safety
//
// A Sampler is NOT safe for concurrent use. Independent samplers share no
// state and may run in parallel.
package sampler

package integrators

import (
	"testing"

	"github.com/san-kum/hmcsim/internal/dynamo"
	"github.com/san-kum/hmcsim/internal/target"
)

func BenchmarkLeapfrog_Harmonic(b *testing.B) {
	integ := NewLeapfrog()
	q, p := dynamo.Vec{X: 1}, dynamo.Vec{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, p = integ.Integrate(harmonic{}, q, p, 0.01, 10)
	}
}

func BenchmarkLeapfrog_Bimodal(b *testing.B) {
	integ := NewLeapfrog()
	q, p := dynamo.Vec{X: 2.5, Y: 2.5}, dynamo.Vec{X: 0.1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, p = integ.Integrate(target.Bimodal, q, p, 0.01, 10)
	}
}

func BenchmarkLeapfrog_Banana(b *testing.B) {
	integ := NewLeapfrog()
	q, p := dynamo.Vec{X: 1, Y: 1}, dynamo.Vec{X: 0.1, Y: -0.1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, p = integ.Integrate(target.Banana, q, p, 0.01, 10)
	}
}

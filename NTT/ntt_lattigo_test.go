// Cross-validation of the negacyclic transform against lattigo, which
// implements the same ring R_q = Z_q[x]/(x^n + 1) independently. lattigo
// needs n >= 16, so the TEST_TINY ring is covered by the schoolbook
// comparison only.
package NTT

import (
	"math/rand"
	"testing"

	modarith "RLWE-Blind-Signature/Mod_Arith"

	"github.com/tuneinsight/lattigo/v4/ring"
)

func TestProductMatchesLattigo(t *testing.T) {
	pairs := []struct {
		n int
		q uint64
	}{
		{32, 7681},
		{256, 7681},
		{512, 12289},
		{1024, 18433},
	}
	rng := rand.New(rand.NewSource(123))

	for _, p := range pairs {
		ringQ, err := ring.NewRing(p.n, []uint64{p.q})
		if err != nil {
			t.Fatalf("ring.NewRing(%d, %d): %v", p.n, p.q, err)
		}
		tr, err := New(p.n, p.q)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", p.n, p.q, err)
		}

		for trial := 0; trial < 5; trial++ {
			a := make([]uint64, p.n)
			b := make([]uint64, p.n)
			for i := range a {
				a[i] = rng.Uint64() % p.q
				b[i] = rng.Uint64() % p.q
			}

			// lattigo reference product
			pa, pb, pc := ringQ.NewPoly(), ringQ.NewPoly(), ringQ.NewPoly()
			copy(pa.Coeffs[0], a)
			copy(pb.Coeffs[0], b)
			ringQ.NTT(pa, pa)
			ringQ.NTT(pb, pb)
			ringQ.MulCoeffs(pa, pb, pc)
			ringQ.InvNTT(pc, pc)

			// in-repo product
			fa := append([]uint64(nil), a...)
			fb := append([]uint64(nil), b...)
			if err := tr.Forward(fa); err != nil {
				t.Fatalf("Forward: %v", err)
			}
			if err := tr.Forward(fb); err != nil {
				t.Fatalf("Forward: %v", err)
			}
			for i := range fa {
				fa[i] = modarith.Mul(fa[i], fb[i], p.q)
			}
			if err := tr.Inverse(fa); err != nil {
				t.Fatalf("Inverse: %v", err)
			}

			for i := range fa {
				if fa[i] != pc.Coeffs[0][i] {
					t.Fatalf("n=%d q=%d trial %d: product differs from lattigo at %d: got %d, want %d",
						p.n, p.q, trial, i, fa[i], pc.Coeffs[0][i])
				}
			}
		}
	}
}

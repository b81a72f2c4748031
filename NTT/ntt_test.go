// ntt_test.go
package NTT

import (
	"errors"
	"math/rand"
	"testing"

	modarith "RLWE-Blind-Signature/Mod_Arith"
)

// catalogPairs are the (n, q) rings with baked psi tables.
var catalogPairs = []struct {
	n int
	q uint64
}{
	{8, 7681},
	{32, 7681},
	{256, 7681},
	{512, 12289},
	{1024, 18433},
}

func TestNewRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name string
		n    int
		q    uint64
	}{
		{"n not a power of two", 12, 7681},
		{"n zero", 0, 7681},
		{"q below 2", 8, 1},
		{"q not 1 mod 2n", 8, 7680},
		{"no table", 16, 7681}, // 7681 ≡ 1 mod 32, but no baked psi
	}
	for _, c := range cases {
		if _, err := New(c.n, c.q); !errors.Is(err, ErrInvalidParameters) {
			t.Fatalf("%s: New(%d, %d) error = %v, want ErrInvalidParameters", c.name, c.n, c.q, err)
		}
	}
}

func TestPsiTableProperties(t *testing.T) {
	for _, p := range catalogPairs {
		tbl, ok := LookupPsiTable(p.n, p.q)
		if !ok {
			t.Fatalf("no psi table for n=%d q=%d", p.n, p.q)
		}
		// psi has exact order 2n and psi^n = -1
		if got := modarith.Pow(tbl.Psi, uint64(p.n), p.q); got != p.q-1 {
			t.Fatalf("n=%d q=%d: psi^n = %d, want q-1=%d", p.n, p.q, got, p.q-1)
		}
		if got := modarith.Pow(tbl.Psi, uint64(2*p.n), p.q); got != 1 {
			t.Fatalf("n=%d q=%d: psi^2n = %d, want 1", p.n, p.q, got)
		}
		if got := modarith.Mul(tbl.Psi, tbl.PsiInv, p.q); got != 1 {
			t.Fatalf("n=%d q=%d: psi * psi^-1 = %d, want 1", p.n, p.q, got)
		}
		for i := 0; i < p.n; i++ {
			if want := modarith.Pow(tbl.Psi, uint64(i), p.q); tbl.Twist[i] != want {
				t.Fatalf("n=%d q=%d: twist[%d] = %d, want psi^%d = %d", p.n, p.q, i, tbl.Twist[i], i, want)
			}
			if got := modarith.Mul(tbl.Twist[i], tbl.TwistInv[i], p.q); got != 1 {
				t.Fatalf("n=%d q=%d: twist[%d] * twistInv[%d] = %d, want 1", p.n, p.q, i, i, got)
			}
		}
	}
}

func TestLookupMiss(t *testing.T) {
	if _, ok := LookupPsiTable(64, 7681); ok {
		t.Fatal("LookupPsiTable(64, 7681) unexpectedly found a table")
	}
}

func TestForwardInverseRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, p := range catalogPairs {
		tr, err := New(p.n, p.q)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", p.n, p.q, err)
		}

		var inputs [][]uint64
		// zero polynomial
		inputs = append(inputs, make([]uint64, p.n))
		// delta basis vectors
		for i := 0; i < p.n; i++ {
			delta := make([]uint64, p.n)
			delta[i] = 1
			inputs = append(inputs, delta)
		}
		// ascending sequence
		asc := make([]uint64, p.n)
		for i := range asc {
			asc[i] = uint64(i) % p.q
		}
		inputs = append(inputs, asc)
		// random polynomials
		for trial := 0; trial < 10; trial++ {
			r := make([]uint64, p.n)
			for i := range r {
				r[i] = rng.Uint64() % p.q
			}
			inputs = append(inputs, r)
		}

		for k, in := range inputs {
			a := append([]uint64(nil), in...)
			if err := tr.Forward(a); err != nil {
				t.Fatalf("n=%d q=%d input %d: Forward: %v", p.n, p.q, k, err)
			}
			if err := tr.Inverse(a); err != nil {
				t.Fatalf("n=%d q=%d input %d: Inverse: %v", p.n, p.q, k, err)
			}
			for i := range a {
				if a[i] != in[i] {
					t.Fatalf("n=%d q=%d input %d: roundtrip mismatch at %d: got %d, want %d",
						p.n, p.q, k, i, a[i], in[i])
				}
			}
		}
	}
}

// schoolbookNegacyclic is the reference product: full 2n-1 term convolution
// folded back with x^n = -1.
func schoolbookNegacyclic(a, b []uint64, q uint64) []uint64 {
	n := len(a)
	tmp := make([]uint64, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := modarith.Mul(a[i], b[j], q)
			tmp[i+j] = modarith.Add(tmp[i+j], prod, q)
		}
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = modarith.Sub(tmp[i], tmp[i+n], q)
	}
	return out
}

func TestPointwiseProductMatchesSchoolbook(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, p := range catalogPairs {
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
			want := schoolbookNegacyclic(a, b, p.q)

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
				if fa[i] != want[i] {
					t.Fatalf("n=%d q=%d trial %d: NTT product differs from schoolbook at %d: got %d, want %d",
						p.n, p.q, trial, i, fa[i], want[i])
				}
			}
		}
	}
}

func TestTransformLengthMismatch(t *testing.T) {
	tr, err := New(8, 7681)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	short := make([]uint64, 4)
	if err := tr.Forward(short); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("Forward(short) error = %v, want ErrInvalidParameters", err)
	}
	if err := tr.Inverse(short); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("Inverse(short) error = %v, want ErrInvalidParameters", err)
	}
}

package fastmath

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/rotemdan/entropy-coding"
)

func TestNewFastDiv31RejectsOutOfRange(t *testing.T) {
	_, err := NewFastDiv31(1 << 31)
	if !errors.Is(err, entropy.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFastDiv31ZeroDivisorShim(t *testing.T) {
	d, err := NewFastDiv31(0)
	if err != nil {
		t.Fatalf("NewFastDiv31(0) failed: %v", err)
	}
	for _, n := range []uint32{0, 1, 12345, (1 << 31) - 1} {
		if got := d.Divide(n); got != 0 {
			t.Errorf("Divide(%d) with d=0: got %d, want 0", n, got)
		}
	}
}

func TestFastDiv31SpecVectors(t *testing.T) {
	d7, err := NewFastDiv31(7)
	if err != nil {
		t.Fatalf("NewFastDiv31(7) failed: %v", err)
	}
	if q, r := d7.DivideAndRemainder(2_147_483_646); q != 306_783_378 || r != 0 {
		t.Errorf("DivideAndRemainder(2147483646) with d=7: got (%d, %d), want (306783378, 0)", q, r)
	}

	d3, err := NewFastDiv31(3)
	if err != nil {
		t.Fatalf("NewFastDiv31(3) failed: %v", err)
	}
	if q, r := d3.DivideAndRemainder(10); q != 3 || r != 1 {
		t.Errorf("DivideAndRemainder(10) with d=3: got (%d, %d), want (3, 1)", q, r)
	}
}

func TestFastDiv31Exactness(t *testing.T) {
	divisors := []uint32{1, 2, 3, 7, 255, 1024, 65535, (1 << 31) - 1}
	rng := rand.New(rand.NewSource(1))

	for _, d := range divisors {
		fd, err := NewFastDiv31(d)
		if err != nil {
			t.Fatalf("NewFastDiv31(%d) failed: %v", d, err)
		}

		ns := []uint32{0, 1, d, d - 1, (1 << 31) - 1}
		if uint64(d)+1 < 1<<31 {
			ns = append(ns, d+1)
		}
		for i := 0; i < 2000; i++ {
			ns = append(ns, rng.Uint32()&((1<<31)-1))
		}

		for _, n := range ns {
			wantQ, wantR := n/d, n%d
			gotQ, gotR := fd.DivideAndRemainder(n)
			if gotQ != wantQ || gotR != wantR {
				t.Errorf("d=%d n=%d: got (%d, %d), want (%d, %d)", d, n, gotQ, gotR, wantQ, wantR)
			}
		}
	}
}

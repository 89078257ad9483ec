//go:build purego || !(amd64 || arm64)

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestDispatchPureGo(t *testing.T) {
	all := cpu.Features{HasSSE2: true, HasAVX: true, HasAVX2: true, HasNEON: true}

	for _, op := range ConstOps() {
		_, impl, err := SelectConst[float64](op, all)
		if err != nil {
			t.Fatal(err)
		}
		if impl.Name != "generic" {
			t.Fatalf("%s impl = %q, want generic", op, impl.Name)
		}
	}

	if n := len(Registered()); n != 1 {
		t.Fatalf("registered variants = %d, want 1", n)
	}
}

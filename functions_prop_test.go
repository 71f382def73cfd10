package pdu

import (
	"testing"

	"pgregory.net/rapid"
)

func TestClassifyPartition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.Byte().Draw(t, "code")
		fc := FunctionCode(b)

		n := 0
		for _, in := range []bool{fc.IsPublic(), fc.IsCustom(), fc.IsOther()} {
			if in {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("code %d is in %d classes", b, n)
		}
		switch Classify(b) {
		case ClassPublic:
			if !fc.IsPublic() {
				t.Fatalf("code %d classified public", b)
			}
		case ClassCustom:
			if !fc.IsCustom() {
				t.Fatalf("code %d classified custom", b)
			}
		case ClassOther:
			if !fc.IsOther() {
				t.Fatalf("code %d classified other", b)
			}
		default:
			t.Fatalf("code %d has no class", b)
		}
	})
}

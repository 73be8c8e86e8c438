package emitter_test

import (
	"testing"

	"github.com/agenthands/cosmosc/pkg/compiler/emitter"
)

func TestEmitterRegionOrder(t *testing.T) {
	e := emitter.New()

	// Body lines land before the declaration is known, as during parsing.
	e.Line("int main(void){")
	e.Emit("x = ")
	e.Line("1;")
	e.Preamble("#include <stdio.h>")
	e.Preamble("float x;")
	e.Line("}")

	want := "#include <stdio.h>\nfloat x;\nint main(void){\nx = 1;\n}\n"
	if got := e.String(); got != want {
		t.Errorf("materialized output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitterEmitDoesNotAddNewline(t *testing.T) {
	e := emitter.New()
	e.Emit("a")
	e.Emit("b")
	if got := e.String(); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
}

func TestEmitterEmptyIsEmpty(t *testing.T) {
	e := emitter.New()
	if got := e.String(); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

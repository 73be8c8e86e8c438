package cosmos_test

import (
	"strings"
	"testing"

	"github.com/agenthands/cosmosc/pkg/compiler/cosmos"
)

func FuzzCompile(f *testing.F) {
	// Seed with valid programs and near-misses.
	f.Add(`PRINT "HELLO"`)
	f.Add("LET x = 1\nPRINT x")
	f.Add("INPUT n\nWHILE n > 0 REPEAT\nLET n = n - 1\nENDWHILE")
	f.Add("GOTO skip\nLABEL skip")
	f.Add("IF 1 THEN\nENDIF")
	f.Add("LET x = 12.")
	f.Add("!")
	f.Add("# just a comment")

	f.Fuzz(func(t *testing.T, src string) {
		out, err := cosmos.Compile(src)
		if err != nil {
			if out != "" {
				t.Errorf("non-empty output alongside error %v", err)
			}
			return
		}
		// Any accepted program must produce the fixed three-part shape.
		if !strings.HasPrefix(out, "#include <stdio.h>\n") {
			t.Errorf("output missing preamble:\n%s", out)
		}
		if !strings.Contains(out, "int main(void){") {
			t.Errorf("output missing entry point:\n%s", out)
		}
		if !strings.HasSuffix(out, "return 0;\n}\n") {
			t.Errorf("output missing closing statements:\n%s", out)
		}
	})
}

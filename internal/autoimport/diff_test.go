package autoimport

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDiff_Identical(t *testing.T) {
	assert.Empty(t, Diff("vite.config.ts", "a\n", "a\n"))
}

func TestDiff_Insertion(t *testing.T) {
	got := Diff("vite.config.ts", "a\nb\n", "a\nx\nb\n")
	want := `--- a/vite.config.ts
+++ b/vite.config.ts
@@ -1,2 +1,3 @@
 a
+x
 b
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", d)
	}
}

func TestDiff_SeparateHunks(t *testing.T) {
	var before []string
	for i := 1; i <= 10; i++ {
		before = append(before, fmt.Sprintf("l%d", i))
	}
	after := append([]string{"l1", "X"}, before[1:9]...)
	after = append(after, "Y")

	got := Diff("f", strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")
	want := `--- a/f
+++ b/f
@@ -1,4 +1,5 @@
 l1
+X
 l2
 l3
 l4
@@ -7,4 +8,4 @@
 l7
 l8
 l9
-l10
+Y
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", d)
	}
}

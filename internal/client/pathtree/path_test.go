package pathtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "/"},
		{"root", "/", "/"},
		{"only slashes", "///", "/"},
		{"missing leading slash", "a/b", "/a/b"},
		{"extra leading slashes", "//a/b", "/a/b"},
		{"trailing slash", "/a/b/", "/a/b"},
		{"many trailing slashes", "/a/b///", "/a/b"},
		{"internal slashes preserved", "/a//b", "/a//b"},
		{"single segment", "c.pdf", "/c.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "/", "///", "a/b/", "//x//y//", "/a//b", "weird\\path", " /a "}
	for _, p := range inputs {
		once := Normalize(p)
		assert.Equal(t, once, Normalize(once), "input %q", p)
	}
}

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments("/"))
	assert.Nil(t, Segments(""))
	assert.Equal(t, []string{"a", "b"}, Segments("/a/b"))
	assert.Equal(t, []string{"a", "", "b"}, Segments("/a//b"))
	assert.Equal(t, []string{"c.pdf"}, Segments("c.pdf"))
}

func TestImmediateChildren_Root(t *testing.T) {
	paths := []string{"/A/x.pdf", "/A/B/y.pdf", "/C.pdf", "/B/z.pdf"}
	got := ImmediateChildren(paths, "/")
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestImmediateChildren_NonRoot(t *testing.T) {
	paths := []string{"/A/x.pdf", "/A/B/y.pdf", "/A/B/C/z.pdf", "/D/w.pdf"}
	got := ImmediateChildren(paths, "/A")
	assert.Equal(t, []string{"B"}, got)
}

func TestImmediateChildren_SkipsCurrentPathItself(t *testing.T) {
	paths := []string{"/A", "/A/B/x.pdf"}
	got := ImmediateChildren(paths, "/A")
	assert.Equal(t, []string{"B"}, got)
}

func TestImmediateChildren_OrderIndependent(t *testing.T) {
	paths := []string{"/b/1", "/a/2", "/c/3/4", "/a/5/6", "/d", "/b/7/8"}
	want := ImmediateChildren(paths, "/")
	require.Equal(t, []string{"a", "b", "c"}, want)

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]string, len(paths))
		copy(shuffled, paths)
		rnd.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, ImmediateChildren(shuffled, "/"))
	}
}

func TestJoinAndParent(t *testing.T) {
	assert.Equal(t, "/A", Join("/", "A"))
	assert.Equal(t, "/A/B", Join("/A", "B"))
	assert.Equal(t, "/A", Parent("/A/B"))
	assert.Equal(t, "/", Parent("/A"))
	assert.Equal(t, "/", Parent("/"))
}

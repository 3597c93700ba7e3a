package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://x", "-z", "junk", "-t", "10"}
	got := FilterArgs(args, []string{"-a", "-t"})
	assert.Equal(t, []string{"-a", "http://x", "-t", "10"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.yaml", "-a=http://x", "--other=1"}
	got := FilterArgs(args, []string{"--config", "-a"})
	assert.Equal(t, []string{"--config=conf.yaml", "-a=http://x"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-d", "-a", "http://x"}
	got := FilterArgs(args, []string{"-d"})
	assert.Equal(t, []string{"-d"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.Equal(t, []string{}, got)
}

package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Prompt", &out)
	require.Error(t, err)
}

func TestGetFields(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(
		"title = Quarterly report\nperimeter=PROD\nnot-a-pair\n\n"))

	fields, err := GetFields(r, &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"title":     "Quarterly report",
		"perimeter": "PROD",
	}, fields)
	assert.Contains(t, out.String(), "not-a-pair")
}

func TestGetFields_Empty(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	fields, err := GetFields(r, &out)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

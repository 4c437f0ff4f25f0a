package blocks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/go-docrst/internal/rst"
)

func TestDecodeSequence(t *testing.T) {
	src := `
- command: FUNCTION
  text: "*abs* --- integer absolute value"
- command: SYNOPSIS
  text: |-
    #include <stdlib.h>
    int abs(int <[i]>);
`
	got, err := Decode(strings.NewReader(src), "abs.yaml")
	require.NoError(t, err)
	assert.Equal(t, []rst.Block{
		{Command: "FUNCTION", Text: "*abs* --- integer absolute value"},
		{Command: "SYNOPSIS", Text: "#include <stdlib.h>\nint abs(int <[i]>);"},
	}, got)
}

func TestDecodeMappingAndJSON(t *testing.T) {
	src := `{"blocks": [{"command": "COMMENT", "text": "it's raw"}]}`

	got, err := Decode(strings.NewReader(src), "in.json")
	require.NoError(t, err)
	assert.Equal(t, []rst.Block{{Command: "COMMENT", Text: "it's raw"}}, got)
}

func TestDecodeMultipleDocuments(t *testing.T) {
	src := "- command: START\n---\nblocks:\n  - command: END\n"

	got, err := Decode(strings.NewReader(src), "multi.yaml")
	require.NoError(t, err)
	assert.Equal(t, []rst.Block{{Command: "START"}, {Command: "END"}}, got)
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(strings.NewReader(""), "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeNullDocuments(t *testing.T) {
	cases := []struct {
		src  string
		want []rst.Block
	}{
		{src: "- command: START\n---\n", want: []rst.Block{{Command: "START"}}},
		{src: "null\n"},
		{src: "~\n"},
		{src: "---\n~\n---\n- command: END\n", want: []rst.Block{{Command: "END"}}},
	}
	for _, tc := range cases {
		got, err := Decode(strings.NewReader(tc.src), "x.yaml")
		require.NoError(t, err, "%q", tc.src)
		assert.Equal(t, tc.want, got, "%q", tc.src)
	}
}

func TestDecodeErrorsNameTheSource(t *testing.T) {
	_, err := Decode(strings.NewReader("just a string\n"), "bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml: document 1")

	_, err = Decode(strings.NewReader("- command: [unterminated\n"), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

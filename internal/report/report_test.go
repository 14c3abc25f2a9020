package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spanforest/network"
)

var forest = network.Forest{
	Edges: []network.LabeledEdge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	},
	Total:      3,
	Components: 1,
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, forest))
	assert.Equal(t, "A, B 1\nB, C 2\n\nSum of all distances:3\n", buf.String())
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, network.Forest{}))
	assert.Equal(t, "\nSum of all distances:0\n", buf.String())
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, forest))
	out := buf.String()
	assert.Contains(t, out, "FROM")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "| B")
	assert.Contains(t, out, " 3 ")
}

func TestWrite_Json(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJson, forest))

	var got network.Forest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, forest, got)
	assert.Contains(t, buf.String(), `"weight": 2`)
}

func TestWrite_Yaml(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYaml, forest))

	var got network.Forest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, forest, got)
	assert.Contains(t, buf.String(), "total: 3")
}

func TestWrite_Unknown(t *testing.T) {
	assert.ErrorIs(t, Write(&bytes.Buffer{}, "xml", forest), ErrUnknownFormat)
}

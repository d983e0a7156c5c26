package schemafile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowplan/schemafile"
)

func TestLoadFileYAML(t *testing.T) {
	f, err := schemafile.LoadFile(filepath.Join("testdata", "person.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Contains(t, f.Types, "Person")
	require.Contains(t, f.Types, "Address")
	require.Contains(t, f.Types, "Scores")

	person := f.Types["Person"]
	require.NotNil(t, person.Record)
	require.Len(t, person.Record.Fields, 6)
	assert.Equal(t, "name", person.Record.Fields[0].Name)
	assert.Equal(t, "optional<string>", person.Record.Fields[2].Type)

	scores := f.Types["Scores"]
	assert.Nil(t, scores.Record)
	assert.Equal(t, "map<string, float64>", scores.Type)
}

func TestLoadFileJSON(t *testing.T) {
	f, err := schemafile.LoadFile(filepath.Join("testdata", "person.json"))
	require.NoError(t, err)

	require.Contains(t, f.Types, "Person")
	assert.Equal(t, "seq<int64>", f.Types["Ids"].Type)
}

func TestParseDefaultsVersion(t *testing.T) {
	f, err := schemafile.Parse([]byte("types:\n  Ids:\n    type: array<int64>\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := schemafile.LoadFile(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := schemafile.LoadFile(filepath.Join("testdata", "person.yaml"))
	require.NoError(t, err)

	data, err := schemafile.Marshal(f)
	require.NoError(t, err)

	back, err := schemafile.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/typefactory/factory"
	"github.com/go-leo/typefactory/furniture"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCreate(t *testing.T) {
	out, _, err := run(t, "create", "--anchor", "JapaneseSteelChair", "--product", "Table")
	require.NoError(t, err)
	assert.Equal(t, "SteelTable (steel): dinner served on a steel table\n", out)

	out, _, err = run(t, "create", "-a", "JapaneseSteelChair", "-p", "Sofa", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("JapaneseSteelSofa (steel, made in Japan): lying on a steel sofa\n", 2), out)
}

func TestCreate_JSON(t *testing.T) {
	out, _, err := run(t, "create", "--anchor", "SpanishWoodenSofa", "--product", "Table", "--count", "2", "--json", "--metrics")
	require.NoError(t, err)

	ja := jsonassert.New(t)
	ja.Assertf(out, `{
		"anchor": "SpanishWoodenSofa",
		"product": "Table",
		"concrete": "SpanishWoodenTable",
		"items": [
			"SpanishWoodenTable (wood, made in Spain): dinner served on a wooden table",
			"SpanishWoodenTable (wood, made in Spain): dinner served on a wooden table"
		],
		"metrics": [{
			"product": "github.com/go-leo/typefactory/furniture.Table",
			"concrete": "github.com/go-leo/typefactory/furniture.SpanishWoodenTable",
			"count": 2
		}]
	}`)
}

func TestCreate_Metrics(t *testing.T) {
	out, _, err := run(t, "create", "--anchor", "WoodenChair", "--product", "Chair", "--metrics")
	require.NoError(t, err)
	assert.Equal(t, "WoodenChair (wood): sitting on a wooden chair\n"+
		"github.com/go-leo/typefactory/furniture.Chair -> github.com/go-leo/typefactory/furniture.WoodenChair: 1\n", out)
}

func TestCreate_Errors(t *testing.T) {
	_, _, err := run(t, "create", "--anchor", "GlassChair", "--product", "Table")
	assert.ErrorIs(t, err, furniture.ErrUnknownName)

	_, _, err = run(t, "create", "--anchor", "Chair", "--product", "Table")
	assert.ErrorIs(t, err, factory.ErrAbstractAnchor)

	_, _, err = run(t, "create", "--anchor", "SteelChair", "--product", "SteelTable")
	assert.ErrorIs(t, err, factory.ErrUnknownProduct)

	_, _, err = run(t, "create", "--anchor", "SteelChair", "--product", "Table", "--count", "0")
	assert.ErrorIs(t, err, ErrCount)

	_, _, err = run(t, "create", "-a", "SteelChair", "-p", "Chair", "-n", "9000000000000000000")
	assert.ErrorIs(t, err, ErrCount)

	out, _, err := run(t, "create", "-a", "SteelChair", "-p", "Chair", "-n", "10000")
	require.NoError(t, err)
	assert.Equal(t, 10000, strings.Count(out, "\n"))

	_, _, err = run(t, "create", "--anchor", "SteelChair")
	assert.Error(t, err)

	_, _, err = run(t, "create", "--anchor", "SteelChair", "--product", "Table", "--log-level", "loud")
	assert.Error(t, err)
}

func TestCreate_LogLevel(t *testing.T) {
	_, stderr, err := run(t, "create", "--anchor", "SteelChair", "--product", "Table", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"product created"`)
	assert.Contains(t, stderr, `"message":"factory generated"`)

	_, stderr, err = run(t, "create", "--anchor", "SteelChair", "--product", "Table", "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestResolve(t *testing.T) {
	out, _, err := run(t, "resolve")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 20)
	assert.Contains(t, lines, "JapaneseSteelChair: Chair=JapaneseSteelChair Table=SteelTable Sofa=JapaneseSteelSofa")
	assert.Contains(t, lines, "SpanishWoodenSofa: Chair=WoodenChair Table=SpanishWoodenTable Sofa=SpanishWoodenSofa")
}

func TestResolve_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.yaml")
	data := `universe:
  sequences:
    - [Chair, Table, Sofa]
    - [SteelChair, SteelTable, SteelSofa]
    - [JapaneseSteelChair]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := run(t, "resolve", "--json", "-c", path)
	require.NoError(t, err)

	steel := map[string]string{"Chair": "SteelChair", "Table": "SteelTable", "Sofa": "SteelSofa"}
	expected := string(errorx.Ignore(jsoniter.Marshal([]resolution{
		{Anchor: "SteelChair", Products: steel},
		{Anchor: "SteelTable", Products: steel},
		{Anchor: "SteelSofa", Products: steel},
		{Anchor: "JapaneseSteelChair", Products: map[string]string{"Chair": "JapaneseSteelChair", "Table": "SteelTable", "Sofa": "SteelSofa"}},
	})))
	jsonassert.New(t).Assertf(out, expected)
}

func TestResolve_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"universe": {"sequences": [["Chair", "Table", "Sofa"], ["SteelChair"]]}}`), 0o644))

	_, _, err := run(t, "resolve", "--config", path)
	assert.ErrorIs(t, err, factory.ErrIncomplete)
}

func TestCatalog(t *testing.T) {
	out, _, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(furniture.Names(), "\n")+"\n", out)

	out, _, err = run(t, "catalog", "--json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &names))
	assert.Len(t, names, 27)
}

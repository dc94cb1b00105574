package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camber-bio/manifold"
)

const sampleYAML = `
attributes:
  - id: tissue
    attribute: Tissue
    label: Tissue
    description: Source tissue of the specimen
    required: true
    dataType: string
    requiredDependencies: [preservation_method]
    validValues: [tissue_tumor, tissue_normal]
  - id: preservation_method
    attribute: Preservation Method
    dataType: string
    conditionalDependencies: [fixation_duration]
  - id: fixation_duration
    attribute: Fixation Duration
    dataType: integer
  - id: tissue_tumor
    attribute: Tumor
  - id: tissue_normal
    attribute: Normal
manifests:
  - name: Biospecimen
    attributes: [tissue]
`

func TestParse_YAML(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	schema := doc.SchemaMap()
	require.Len(t, schema, 5)

	tissue := schema["tissue"]
	assert.Equal(t, "Tissue", tissue.Name)
	assert.True(t, tissue.Required)
	assert.Equal(t, "string", tissue.DataType)
	assert.Equal(t, []manifold.AttributeID{"preservation_method"}, tissue.RequiredDependencies)
	assert.Equal(t, []manifold.AttributeID{"tissue_tumor", "tissue_normal"}, tissue.ValidValues)
	assert.Nil(t, tissue.ConditionalDependencies)

	manifests := doc.Manifests()
	require.Len(t, manifests, 1)
	assert.Equal(t, manifold.ManifestName("Biospecimen"), manifests[0].Name)
	assert.Equal(t, []manifold.AttributeID{"tissue"}, manifests[0].Roots)
}

func TestParse_JSON(t *testing.T) {
	content := `{
		"attributes": [
			{"id": "a", "attribute": "A", "requiredDependencies": ["b"]},
			{"id": "b", "attribute": "B"}
		],
		"manifests": [{"name": "M", "attributes": ["a"]}]
	}`

	doc, err := Parse([]byte(content))
	require.NoError(t, err)
	assert.Len(t, doc.SchemaMap(), 2)
	assert.Len(t, doc.Manifests(), 1)
}

func TestParse_DanglingDependenciesAreNotErrors(t *testing.T) {
	content := `
attributes:
  - id: a
    attribute: A
    requiredDependencies: [not_yet_ingested]
`
	doc, err := Parse([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []manifold.AttributeID{"not_yet_ingested"}, doc.SchemaMap()["a"].RequiredDependencies)
}

func TestParse_MissingID(t *testing.T) {
	content := `
attributes:
  - attribute: Tissue
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.True(t, manifold.IsInvalidSchemaErr(err))
	assert.Contains(t, err.Error(), "Tissue")
}

func TestParse_MissingDisplayName(t *testing.T) {
	content := `
attributes:
  - id: tissue
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.True(t, manifold.IsInvalidSchemaErr(err))
}

func TestParse_DuplicateAttributeID(t *testing.T) {
	content := `
attributes:
  - id: tissue
    attribute: Tissue
  - id: tissue
    attribute: Tissue Again
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.True(t, manifold.IsDuplicateAttributeErr(err))
}

func TestParse_DuplicateManifest(t *testing.T) {
	content := `
manifests:
  - name: M
  - name: M
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.True(t, manifold.IsInvalidSchemaErr(err))
}

func TestParse_UnknownField(t *testing.T) {
	content := `
attributes:
  - id: a
    attribute: A
    requriedDependencies: [b]
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.True(t, manifold.IsInvalidSchemaErr(err))
}

func TestDocument_Manifest(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	m, err := doc.Manifest("Biospecimen")
	require.NoError(t, err)
	assert.Equal(t, manifold.ManifestName("Biospecimen"), m.Name)

	_, err = doc.Manifest("Imaging Level 2")
	require.Error(t, err)
	assert.True(t, manifold.IsUnknownManifestErr(err))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.SchemaMap(), 5)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/schema.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading schema file")
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	content := "Bulk WES Level 1: Bulk DNA Level 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "Bulk DNA Level 1", overrides.Apply("Bulk WES Level 1"))
}

func TestLoadOverrides_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.NotNil(t, overrides)
	assert.Empty(t, overrides)
}

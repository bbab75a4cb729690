package apispec

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDocument(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, op := range doc.Operations() {
		ids = append(ids, op.Method+" "+op.Path)
	}
	assert.Equal(t, []string{
		"GET /api/deploy-url",
		"POST /api/deploy-url",
		"GET /api/snippets/{format}",
		"GET /health",
	}, ids)
}

func TestValidateBody(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	valid := `{"repository":"https://github.com/foo/bar","env":["API_KEY"],"projectName":"x"}`
	assert.NoError(t, doc.ValidateBody("POST", "/api/deploy-url", []byte(valid)))

	cases := map[string]string{
		"unknown property": `{"repo":"x"}`,
		"wrong type":       `{"env":"API_KEY"}`,
		"not an object":    `[]`,
		"malformed":        `{`,
	}
	for name, body := range cases {
		assert.Error(t, doc.ValidateBody("POST", "/api/deploy-url", []byte(body)), name)
	}
}

func TestRequestSchemaMissing(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	_, err = doc.RequestSchema("GET", "/health")
	assert.ErrorIs(t, err, ErrNoRequestSchema)

	_, err = doc.RequestSchema("GET", "/missing")
	assert.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "3.0.3", decoded["openapi"])
}

func TestLoadFromDataRejectsEmpty(t *testing.T) {
	_, err := LoadFromData(context.Background(), nil)
	assert.Error(t, err)

	_, err = LoadFromData(context.Background(), []byte("openapi: 3.0.3\ninfo: {title: x, version: '1'}\npaths: {}\n"))
	assert.Error(t, err)
}

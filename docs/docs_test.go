package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func readDoc(t *testing.T) map[string]any {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func collectRefs(node any, refs *[]string) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if key == "$ref" {
				if s, ok := child.(string); ok {
					*refs = append(*refs, s)
				}
				continue
			}
			collectRefs(child, refs)
		}
	case []any:
		for _, child := range v {
			collectRefs(child, refs)
		}
	}
}

func TestSwaggerDoc_RefsResolve(t *testing.T) {
	doc := readDoc(t)
	definitions, ok := doc["definitions"].(map[string]any)
	require.True(t, ok)

	var refs []string
	collectRefs(doc, &refs)
	require.NotEmpty(t, refs)

	for _, ref := range refs {
		name := strings.TrimPrefix(ref, "#/definitions/")
		assert.Contains(t, definitions, name, "unresolved %s", ref)
	}
	assert.NotContains(t, definitions, "models.CartResponse")
}

func TestSwaggerDoc_CartResponsesWrapCartView(t *testing.T) {
	doc := readDoc(t)
	paths := doc["paths"].(map[string]any)

	for path, method := range map[string]string{
		"/cart":                      "get",
		"/cart/items":                "post",
		"/cart/items/{id}":           "delete",
		"/cart/interactions":         "post",
		"/products/{id}/add-to-cart": "post",
	} {
		op := paths[path].(map[string]any)[method].(map[string]any)
		ok := op["responses"].(map[string]any)["200"].(map[string]any)
		allOf := ok["schema"].(map[string]any)["allOf"].([]any)
		require.Len(t, allOf, 2, path)

		assert.Equal(t, "#/definitions/models.Response", allOf[0].(map[string]any)["$ref"], path)
		data := allOf[1].(map[string]any)["properties"].(map[string]any)["data"].(map[string]any)
		assert.Equal(t, "#/definitions/models.CartView", data["$ref"], path)
	}
}

func TestSwaggerDoc_Info(t *testing.T) {
	doc := readDoc(t)
	info := doc["info"].(map[string]any)

	assert.Equal(t, "Cart Widget API", info["title"])
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Equal(t, "localhost:8082", doc["host"])
}

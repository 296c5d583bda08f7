package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocumentIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(doc)), doc)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "GoGoMedia API", parsed.Info.Title)

	for _, path := range []string{"/", "/register", "/login", "/logout", "/user/{username}/media"} {
		assert.Contains(t, parsed.Paths, path)
	}
	assert.Len(t, parsed.Paths["/user/{username}/media"], 3)
}

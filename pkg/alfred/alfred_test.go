package alfred_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify/pkg/alfred"
)

func TestNew(t *testing.T) {
	t.Parallel()

	r := alfred.New("hello-world")

	require.Len(t, r.Items, 1)
	item := r.Items[0]
	assert.Equal(t, "default", item.Type)
	assert.Equal(t, "Slugify", item.Title)
	assert.Equal(t, "hello-world", item.Subtitle)
	assert.Equal(t, "hello-world", item.Arg)
	assert.Equal(t, "hello-world", item.Text.Copy)
	assert.Equal(t, "hello-world", item.Text.LargeType)
	assert.Equal(t, "hello-world", r.Variables.Slug)
}

func TestResponseWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, alfred.New("caf%c3%a9").Write(&buf))

	expected := `{"items":[{"type":"default","title":"Slugify","subtitle":"caf%c3%a9","arg":"caf%c3%a9",` +
		`"text":{"copy":"caf%c3%a9","large_type":"caf%c3%a9"}}],"variables":{"slug":"caf%c3%a9"}}` + "\n"
	assert.Equal(t, expected, buf.String())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "items")
	assert.Contains(t, decoded, "variables")
}

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafJSON(path string) string {
	return fmt.Sprintf(`{
		"path": %q, "name": %q,
		"isTextFile": true, "isConfigFile": false, "isDirectory": false,
		"isLog": false, "isReadable": true, "isWritable": true,
		"size": 128, "children": null
	}`, path, path[strings.LastIndex(path, "/")+1:])
}

func TestDecodePathInfo_LeafWithNullChildren(t *testing.T) {
	info, err := DecodePathInfo(json.RawMessage(leafJSON("/server.properties")))
	require.NoError(t, err)

	assert.Equal(t, "/server.properties", info.Path)
	assert.Equal(t, "server.properties", info.Name)
	assert.True(t, info.IsTextFile)
	assert.False(t, info.IsDirectory)
	assert.Equal(t, int64(128), info.Size)
	assert.Nil(t, info.Children)
}

func TestDecodePathInfo_AbsentChildrenEqualsNull(t *testing.T) {
	info, err := DecodePathInfo(json.RawMessage(`{
		"path": "/a", "name": "a",
		"isTextFile": false, "isConfigFile": false, "isDirectory": false,
		"isLog": false, "isReadable": true, "isWritable": false,
		"size": 0
	}`))
	require.NoError(t, err)
	assert.Nil(t, info.Children)
}

func TestDecodePathInfo_DirectoryWithNestedChild(t *testing.T) {
	info, err := DecodePathInfo(json.RawMessage(`{
		"path": "/world", "name": "world",
		"isTextFile": false, "isConfigFile": false, "isDirectory": true,
		"isLog": false, "isReadable": true, "isWritable": true,
		"size": 0,
		"children": [` + leafJSON("/world/level.dat") + `]
	}`))
	require.NoError(t, err)

	require.Len(t, info.Children, 1)
	child := info.Children[0]
	assert.Equal(t, "/world/level.dat", child.Path)
	assert.Nil(t, child.Children)
}

func TestDecodePathInfo_DepthIsPreserved(t *testing.T) {
	// Build a chain of nested directories, leaf at the bottom.
	payload := leafJSON("/d/e/f")
	for _, dir := range []string{"/d/e", "/d", "/"} {
		payload = fmt.Sprintf(`{
			"path": %q, "name": %q,
			"isTextFile": false, "isConfigFile": false, "isDirectory": true,
			"isLog": false, "isReadable": true, "isWritable": true,
			"size": 0, "children": [%s]
		}`, dir, dir, payload)
	}

	info, err := DecodePathInfo(json.RawMessage(payload))
	require.NoError(t, err)

	depth := 0
	for node := info; len(node.Children) > 0; node = &node.Children[0] {
		depth++
	}
	assert.Equal(t, 3, depth)
}

func TestDecodePathInfo_EmptyChildrenListIsNotNil(t *testing.T) {
	info, err := DecodePathInfo(json.RawMessage(`{
		"path": "/empty", "name": "empty",
		"isTextFile": false, "isConfigFile": false, "isDirectory": true,
		"isLog": false, "isReadable": true, "isWritable": true,
		"size": 0, "children": []
	}`))
	require.NoError(t, err)
	require.NotNil(t, info.Children)
	assert.Empty(t, info.Children)
}

func TestDecodePathInfo_InvalidChildPrefixed(t *testing.T) {
	_, err := DecodePathInfo(json.RawMessage(`{
		"path": "/world", "name": "world",
		"isTextFile": false, "isConfigFile": false, "isDirectory": true,
		"isLog": false, "isReadable": true, "isWritable": true,
		"size": 0,
		"children": [{
			"path": 42, "name": "level.dat",
			"isTextFile": false, "isConfigFile": false, "isDirectory": false,
			"isLog": false, "isReadable": true, "isWritable": true,
			"size": 1
		}]
	}`))
	assert.Equal(t, []string{"children[0].path"}, fieldNames(t, err))
}

func TestDecodePathInfo_WireAliases(t *testing.T) {
	// snake_case keys must not satisfy the camelCase wire names.
	_, err := DecodePathInfo(json.RawMessage(`{
		"path": "/a", "name": "a",
		"is_text_file": true, "isConfigFile": false, "isDirectory": false,
		"isLog": false, "isReadable": true, "isWritable": true,
		"size": 0
	}`))
	assert.Equal(t, []string{"isTextFile"}, fieldNames(t, err))
}

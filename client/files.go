package client

import (
	"bytes"
	"context"
	"net/http"

	"exaroton-go/api"
	"exaroton-go/models"
)

// PathInfo returns information about a file or directory on the server.
func (c *Client) PathInfo(ctx context.Context, serverID, path string) (*models.PathInfo, error) {
	data, err := c.call(ctx, http.MethodGet, "servers/"+serverID+"/files/info/"+path, nil, api.ShapeObject)
	if err != nil {
		return nil, err
	}
	return models.DecodePathInfo(data)
}

// ReadFile returns a file's raw content. This is the one capability that
// bypasses the envelope entirely: the response body is the file data.
func (c *Client) ReadFile(ctx context.Context, serverID, path string) ([]byte, error) {
	return c.request(ctx, http.MethodGet, "servers/"+serverID+"/files/data/"+path, nil, "")
}

// WriteFile writes a file's content, creating the file if it does not
// exist. The acknowledgement is the usual opaque optional string.
func (c *Client) WriteFile(ctx context.Context, serverID, path string, data []byte) (*string, error) {
	raw, err := c.request(ctx, http.MethodPut, "servers/"+serverID+"/files/data/"+path,
		bytes.NewReader(data), "application/octet-stream")
	if err != nil {
		return nil, err
	}
	return c.unwrapOpaque(raw)
}

// CreateDirectory creates a directory; the API distinguishes it from a
// file write by the inode/directory content type.
func (c *Client) CreateDirectory(ctx context.Context, serverID, path string) (*string, error) {
	raw, err := c.request(ctx, http.MethodPut, "servers/"+serverID+"/files/data/"+path,
		nil, "inode/directory")
	if err != nil {
		return nil, err
	}
	return c.unwrapOpaque(raw)
}

// DeleteFile deletes a file or directory.
func (c *Client) DeleteFile(ctx context.Context, serverID, path string) (*string, error) {
	return c.opaque(ctx, http.MethodDelete, "servers/"+serverID+"/files/data/"+path, nil)
}

// ConfigOptions returns the options set in a config file; these are files
// whose PathInfo reports IsConfigFile.
func (c *Client) ConfigOptions(ctx context.Context, serverID, path string) ([]*models.ConfigOption, error) {
	data, err := c.call(ctx, http.MethodGet, "servers/"+serverID+"/files/config/"+path, nil, api.ShapeList)
	if err != nil {
		return nil, err
	}
	return models.DecodeConfigOptions(data)
}

// SetConfigOptions updates config options by key and returns the file's
// new options. Values keep their scalar kind on the wire: an integer
// option is sent as a JSON integer, never a float.
func (c *Client) SetConfigOptions(ctx context.Context, serverID, path string, values map[string]models.Value) ([]*models.ConfigOption, error) {
	data, err := c.call(ctx, http.MethodPost, "servers/"+serverID+"/files/config/"+path, values, api.ShapeList)
	if err != nil {
		return nil, err
	}
	return models.DecodeConfigOptions(data)
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"exaroton-go/api"
	"exaroton-go/models"
)

// Servers returns the servers the account has access to.
func (c *Client) Servers(ctx context.Context) ([]*models.Server, error) {
	data, err := c.call(ctx, http.MethodGet, "servers", nil, api.ShapeList)
	if err != nil {
		return nil, err
	}
	return models.DecodeServers(data)
}

// Server returns information about one server.
func (c *Client) Server(ctx context.Context, serverID string) (*models.Server, error) {
	data, err := c.call(ctx, http.MethodGet, "servers/"+serverID, nil, api.ShapeObject)
	if err != nil {
		return nil, err
	}
	return models.DecodeServer(data)
}

// Log returns the server's current log content, nil when the server has
// no log.
func (c *Client) Log(ctx context.Context, serverID string) (*string, error) {
	data, err := c.call(ctx, http.MethodGet, "servers/"+serverID+"/logs", nil, api.ShapeObject)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode log payload: %w", err)
	}
	return payload.Content, nil
}

// ShareLog uploads the server's log to the mclo.gs sharing service.
func (c *Client) ShareLog(ctx context.Context, serverID string) (*models.LogUpload, error) {
	data, err := c.call(ctx, http.MethodGet, "servers/"+serverID+"/logs/share", nil, api.ShapeObject)
	if err != nil {
		return nil, err
	}
	return models.DecodeLogUpload(data)
}

// RAM returns the server's RAM allocation in GB.
func (c *Client) RAM(ctx context.Context, serverID string) (int, error) {
	return c.ramCall(ctx, http.MethodGet, serverID, nil)
}

// SetRAM changes the server's RAM allocation and returns the new value.
func (c *Client) SetRAM(ctx context.Context, serverID string, gb int) (int, error) {
	return c.ramCall(ctx, http.MethodPost, serverID, map[string]int{"ram": gb})
}

func (c *Client) ramCall(ctx context.Context, method, serverID string, payload interface{}) (int, error) {
	data, err := c.call(ctx, method, "servers/"+serverID+"/options/ram", payload, api.ShapeObject)
	if err != nil {
		return 0, err
	}
	var out struct {
		RAM int `json:"ram"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("decode ram payload: %w", err)
	}
	return out.RAM, nil
}

// MOTD returns the server's message of the day.
func (c *Client) MOTD(ctx context.Context, serverID string) (string, error) {
	return c.motdCall(ctx, http.MethodGet, serverID, nil)
}

// SetMOTD changes the server's message of the day and returns the new one.
func (c *Client) SetMOTD(ctx context.Context, serverID, motd string) (string, error) {
	return c.motdCall(ctx, http.MethodPost, serverID, map[string]string{"motd": motd})
}

func (c *Client) motdCall(ctx context.Context, method, serverID string, payload interface{}) (string, error) {
	data, err := c.call(ctx, method, "servers/"+serverID+"/options/motd", payload, api.ShapeObject)
	if err != nil {
		return "", err
	}
	var out struct {
		MOTD string `json:"motd"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode motd payload: %w", err)
	}
	return out.MOTD, nil
}

// Start starts the server. When useOwnCredits is set, a shared server is
// started on the caller's credit balance. The returned string is an opaque
// acknowledgement, nil when the service sent none.
func (c *Client) Start(ctx context.Context, serverID string, useOwnCredits bool) (*string, error) {
	if useOwnCredits {
		return c.opaque(ctx, http.MethodPost, "servers/"+serverID+"/start",
			map[string]bool{"useOwnCredits": true})
	}
	return c.opaque(ctx, http.MethodGet, "servers/"+serverID+"/start", nil)
}

// Stop stops the server.
func (c *Client) Stop(ctx context.Context, serverID string) (*string, error) {
	return c.opaque(ctx, http.MethodGet, "servers/"+serverID+"/stop", nil)
}

// Restart restarts the server.
func (c *Client) Restart(ctx context.Context, serverID string) (*string, error) {
	return c.opaque(ctx, http.MethodGet, "servers/"+serverID+"/restart", nil)
}

// ExecuteCommand runs a console command on the server.
func (c *Client) ExecuteCommand(ctx context.Context, serverID, command string) (*string, error) {
	return c.opaque(ctx, http.MethodPost, "servers/"+serverID+"/command",
		map[string]string{"command": command})
}

// PlayerLists returns the names of the server's enabled playerlists,
// usually whitelist, ops, banned-players and banned-ips.
func (c *Client) PlayerLists(ctx context.Context, serverID string) ([]string, error) {
	data, err := c.call(ctx, http.MethodGet, "servers/"+serverID+"/playerlists", nil, api.ShapeList)
	if err != nil {
		return nil, err
	}
	return models.DecodeStrings("playerlists", data)
}

// PlayerList returns the content of one playerlist.
func (c *Client) PlayerList(ctx context.Context, serverID, listName string) ([]string, error) {
	data, err := c.call(ctx, http.MethodGet, "servers/"+serverID+"/playerlists/"+listName, nil, api.ShapeList)
	if err != nil {
		return nil, err
	}
	return models.DecodeStrings("playerlist", data)
}

// AddPlayerListEntries adds entries (player names, uuids or ips) to a
// playerlist and returns the list's new content.
func (c *Client) AddPlayerListEntries(ctx context.Context, serverID, listName string, entries []string) ([]string, error) {
	data, err := c.call(ctx, http.MethodPut, "servers/"+serverID+"/playerlists/"+listName,
		map[string][]string{"entries": entries}, api.ShapeList)
	if err != nil {
		return nil, err
	}
	return models.DecodeStrings("playerlist", data)
}

// RemovePlayerListEntries removes entries from a playerlist and returns
// the list's new content.
func (c *Client) RemovePlayerListEntries(ctx context.Context, serverID, listName string, entries []string) ([]string, error) {
	data, err := c.call(ctx, http.MethodDelete, "servers/"+serverID+"/playerlists/"+listName,
		map[string][]string{"entries": entries}, api.ShapeList)
	if err != nil {
		return nil, err
	}
	return models.DecodeStrings("playerlist", data)
}

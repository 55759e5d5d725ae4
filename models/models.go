// Package models defines the validated record types constructed from
// decoded API payloads. Every record is an immutable value object built
// fresh per response; decoding is all-or-nothing, failing with a
// ValidationError that enumerates every violating field.
package models

import (
	"encoding/json"
	"fmt"
)

// Account is the authenticated account's profile.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	// The API docs call credits an integer, but the wire value is
	// fractional; truncating it would lose paid balance.
	Credits float64 `json:"credits"`
}

// DecodeAccount validates an account payload.
func DecodeAccount(raw json.RawMessage) (*Account, error) {
	fs, err := newFieldSet("account", raw)
	if err != nil {
		return nil, err
	}
	a := &Account{
		Name:     fs.str("name"),
		Email:    fs.str("email"),
		Verified: fs.boolean("verified"),
		Credits:  fs.number("credits"),
	}
	if err := fs.err(); err != nil {
		return nil, err
	}
	return a, nil
}

// ServerPlayers is the player population of a server.
type ServerPlayers struct {
	Max   int      `json:"max"`
	Count int      `json:"count"`
	List  []string `json:"list"`
}

// ServerSoftware identifies the software a server runs. It is absent for
// server types that have no selectable software.
type ServerSoftware struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Server is one hosted server instance.
type Server struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Address string       `json:"address"`
	MOTD    string       `json:"motd"`
	Status  ServerStatus `json:"status"`
	// Host and Port are present only while the instance is addressable.
	Host     *string         `json:"host"`
	Port     *int            `json:"port"`
	Players  ServerPlayers   `json:"players"`
	Software *ServerSoftware `json:"software"`
	Shared   bool            `json:"shared"`
}

// DecodeServer validates a server payload.
func DecodeServer(raw json.RawMessage) (*Server, error) {
	fs, err := newFieldSet("server", raw)
	if err != nil {
		return nil, err
	}
	srv := &Server{
		ID:      fs.str("id"),
		Name:    fs.str("name"),
		Address: fs.str("address"),
		MOTD:    fs.str("motd"),
		Host:    fs.optStr("host"),
		Port:    fs.optInt("port"),
		Shared:  fs.boolean("shared"),
	}

	status := ServerStatus(fs.integer("status"))
	if !status.Valid() {
		fs.fail("status", fmt.Sprintf("code %d is not a declared server status", int(status)))
	}
	srv.Status = status

	if pv, ok := fs.raw("players"); ok {
		players, perr := decodeServerPlayers(pv)
		if perr != nil {
			fs.mergeNested("players", perr)
		} else {
			srv.Players = *players
		}
	} else {
		fs.fail("players", "required object is missing or null")
	}

	if sv, ok := fs.raw("software"); ok {
		software, serr := decodeServerSoftware(sv)
		if serr != nil {
			fs.mergeNested("software", serr)
		} else {
			srv.Software = software
		}
	}

	if err := fs.err(); err != nil {
		return nil, err
	}
	return srv, nil
}

// DecodeServers validates a list payload of servers.
func DecodeServers(raw json.RawMessage) ([]*Server, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &ValidationError{
			Record: "servers",
			Fields: []FieldError{{Field: ".", Reason: "payload is not a list"}},
		}
	}
	out := make([]*Server, 0, len(items))
	var errs []FieldError
	for i, item := range items {
		srv, err := DecodeServer(item)
		if err != nil {
			var ve *ValidationError
			if asValidation(err, &ve) {
				for _, f := range ve.Fields {
					errs = append(errs, FieldError{
						Field:  fmt.Sprintf("[%d].%s", i, f.Field),
						Reason: f.Reason,
					})
				}
				continue
			}
			return nil, err
		}
		out = append(out, srv)
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Record: "servers", Fields: errs}
	}
	return out, nil
}

func decodeServerPlayers(raw json.RawMessage) (*ServerPlayers, error) {
	fs, err := newFieldSet("players", raw)
	if err != nil {
		return nil, err
	}
	p := &ServerPlayers{
		Max:   int(fs.integer("max")),
		Count: int(fs.integer("count")),
		List:  fs.strSlice("list"),
	}
	if err := fs.err(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeServerSoftware(raw json.RawMessage) (*ServerSoftware, error) {
	fs, err := newFieldSet("software", raw)
	if err != nil {
		return nil, err
	}
	s := &ServerSoftware{
		ID:      fs.str("id"),
		Name:    fs.str("name"),
		Version: fs.str("version"),
	}
	if err := fs.err(); err != nil {
		return nil, err
	}
	return s, nil
}

// LogUpload describes a server log uploaded to the mclo.gs sharing service.
type LogUpload struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Raw string `json:"raw"`
}

// DecodeLogUpload validates a log upload payload.
func DecodeLogUpload(raw json.RawMessage) (*LogUpload, error) {
	fs, err := newFieldSet("log upload", raw)
	if err != nil {
		return nil, err
	}
	u := &LogUpload{
		ID:  fs.str("id"),
		URL: fs.str("url"),
		Raw: fs.str("raw"),
	}
	if err := fs.err(); err != nil {
		return nil, err
	}
	return u, nil
}

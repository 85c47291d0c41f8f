/*
Package server implements msgpack IPC for Jyutping lookups.

Clients write msgpack maps to stdin and read msgpack maps from stdout, one
response per request. On start the server writes a status message:

	{"status": "ready"}

A lookup request carries a query:

	{"id": "req_001", "q": "faa1"}

and is answered with the three match lists, the number of distinct
characters across them and the time taken in microseconds:

	{"id": "req_001", "e": ["花"], "i": ["花"], "f": [], "c": 1, "t": 12}

Actions manage the running engine:

	{"id": "info_001", "action": "info"}
	{"id": "reload_001", "action": "reload"}

"reload" rebuilds the engine from the configured data file and swaps it in
whole, so a lookup never sees a half-loaded store.
*/
package server

// Request is any client message. Action is empty for lookups.
type Request struct {
	ID     string `msgpack:"id"`
	Query  string `msgpack:"q,omitempty"`
	Action string `msgpack:"action,omitempty"`
}

// LookupResponse answers a lookup request.
type LookupResponse struct {
	ID        string   `msgpack:"id"`
	Exact     []string `msgpack:"e"`
	Initial   []string `msgpack:"i"`
	Final     []string `msgpack:"f"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// InfoResponse answers "info" and "reload" actions.
type InfoResponse struct {
	ID        string         `msgpack:"id"`
	Status    string         `msgpack:"status"`
	Onsets    []string       `msgpack:"onsets,omitempty"`
	Rimes     []string       `msgpack:"rimes,omitempty"`
	Syllables int            `msgpack:"syllables"`
	Stats     map[string]int `msgpack:"stats,omitempty"`
}

// StatusResponse is the ready signal.
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"error"`
	Code  int    `msgpack:"code"`
}

const (
	ActionInfo   = "info"
	ActionReload = "reload"
)

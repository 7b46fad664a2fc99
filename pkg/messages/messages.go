package messages

import "encoding/json"

const (
	// MaxMessageSize bounds a single frame read from a connection.
	MaxMessageSize = 1 << 20
)

// Reserved command names handled by the transport itself.
const (
	CommandLogin = "login"
	CommandPing  = "ping"
)

// Request asks the server to invoke Command with Args. ID is chosen by
// the client and echoed on the matching Reply.
type Request struct {
	ID      string          `json:"id"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Reply carries either the command's response envelope or a transport
// error such as an unknown command or undecodable arguments.
type Reply struct {
	ID       string          `json:"id"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// LoginArgs are the arguments of CommandLogin.
type LoginArgs struct {
	Token string `json:"token"`
}

// LoginResult is the response of a successful CommandLogin.
type LoginResult struct {
	PlayerName string `json:"playerName"`
}

package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	authproviders "github.com/cbodonnell/jigsaw/pkg/auth/providers"
	"github.com/cbodonnell/jigsaw/pkg/commands"
	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/messages"
	"github.com/gorilla/mux"
	"nhooyr.io/websocket"
)

// Invoker runs a named command, see commands.Dispatcher.
type Invoker interface {
	Invoke(ctx context.Context, name string, args json.RawMessage) (interface{}, error)
}

// WSServer serves command invocations over WebSocket connections.
type WSServer struct {
	server        *http.Server
	tls           *TLSConfig
	invoker       Invoker
	authProvider  authproviders.AuthProvider
	acceptOptions *websocket.AcceptOptions

	// ctx is canceled on Stop so hijacked connections are closed too.
	ctx    context.Context
	cancel context.CancelFunc

	stopOnce sync.Once
	stopErr  error
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewWSServerOptions struct {
	Port        int
	TLS         *TLSConfig
	AllowOrigin string
	// AuthProvider is optional. When set, a connection must send a login
	// request with a valid token before invoking commands.
	AuthProvider authproviders.AuthProvider
	Invoker      Invoker
}

// NewWSServer creates a new WebSocket server.
func NewWSServer(opts NewWSServerOptions) *WSServer {
	ctx, cancel := context.WithCancel(context.Background())
	s := &WSServer{
		tls:           opts.TLS,
		invoker:       opts.Invoker,
		authProvider:  opts.AuthProvider,
		acceptOptions: newAcceptOptions(opts.AllowOrigin),
		ctx:           ctx,
		cancel:        cancel,
	}

	router := mux.NewRouter()
	router.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}
	return s
}

// newAcceptOptions converts a comma-separated origin list into the host
// patterns websocket.Accept checks.
func newAcceptOptions(allowOrigin string) *websocket.AcceptOptions {
	opts := &websocket.AcceptOptions{}
	for _, origin := range strings.Split(allowOrigin, ",") {
		origin = strings.TrimSpace(origin)
		switch {
		case origin == "":
			continue
		case origin == "*":
			opts.InsecureSkipVerify = true
		default:
			if u, err := url.Parse(origin); err == nil && u.Host != "" {
				origin = u.Host
			}
			opts.OriginPatterns = append(opts.OriginPatterns, origin)
		}
	}
	return opts
}

// Handler returns the http.Handler serving the /ws endpoint.
func (s *WSServer) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the WebSocket server and blocks until it is stopped
// or ctx is done.
func (s *WSServer) Start(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
			if err := s.Stop(context.Background()); err != nil {
				log.Error("Failed to stop WebSocket server: %v", err)
			}
		case <-s.ctx.Done():
		}
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("WebSocket server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("WebSocket server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("WebSocket server closed")
			return
		}
		log.Error("WebSocket server error: %v", err)
	}
}

// Stop closes open connections and shuts the server down.
func (s *WSServer) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.cancel()
		s.stopErr = s.server.Shutdown(ctx)
	})
	return s.stopErr
}

func (s *WSServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, s.acceptOptions)
	if err != nil {
		log.Error("Failed to accept WebSocket connection: %v", err)
		return
	}
	conn.SetReadLimit(messages.MaxMessageSize)
	log.Debug("New WebSocket connection from %s", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	stop := context.AfterFunc(s.ctx, cancel)
	defer func() {
		stop()
		cancel()
	}()

	s.handleWSConnection(ctx, conn, r.RemoteAddr)
}

// MaxInFlightRequests bounds the requests a single connection may have
// running at once. The read loop blocks while the limit is reached.
const MaxInFlightRequests = 16

// session is the per-connection state.
type session struct {
	remoteAddr string
	logger     *log.Logger

	mu         sync.RWMutex
	playerName string
	loggedIn   bool
}

func (c *session) login(playerName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playerName = playerName
	c.loggedIn = true
}

func (c *session) player() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playerName, c.loggedIn
}

// handleWSConnection reads requests until the connection closes. Login
// and malformed requests are answered from the read loop so a login takes
// effect before the next frame is read. Other requests run on their own
// goroutine, at most MaxInFlightRequests at a time. Every reply uses the
// frame type its request arrived in.
func (s *WSServer) handleWSConnection(ctx context.Context, conn *websocket.Conn, remoteAddr string) {
	sess := &session{
		remoteAddr: remoteAddr,
		logger:     log.Default().With(log.Fields{"remote": remoteAddr}),
	}
	inFlight := make(chan struct{}, MaxInFlightRequests)
	var wg sync.WaitGroup
	defer func() {
		wg.Wait()
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				if ctx.Err() == nil {
					sess.logger.Error("Error reading WebSocket message: %v", err)
				}
			}
			sess.logger.Trace("Connection closed")
			return
		}

		request, errReply := decodeRequest(typ, data)
		if errReply != nil || request.Command == messages.CommandLogin {
			reply := errReply
			if reply == nil {
				reply = s.handleRequest(ctx, sess, request)
			}
			if err := writeReply(ctx, conn, typ, reply); err != nil {
				sess.logger.Error("Failed to write reply: %v", err)
			}
			continue
		}

		select {
		case inFlight <- struct{}{}:
		case <-ctx.Done():
			return
		}
		wg.Add(1)
		go func() {
			defer func() {
				<-inFlight
				wg.Done()
			}()
			reply := s.handleRequest(ctx, sess, request)
			if err := writeReply(ctx, conn, typ, reply); err != nil {
				sess.logger.Error("Failed to write reply: %v", err)
			}
		}()
	}
}

// decodeRequest returns the request carried by a frame, or the error
// reply to send when the frame cannot be decoded.
func decodeRequest(typ websocket.MessageType, data []byte) (*messages.Request, *messages.Reply) {
	if typ == websocket.MessageBinary {
		b, err := messages.Decompress(data)
		if err != nil {
			return nil, &messages.Reply{Error: fmt.Sprintf("failed to decompress request: %v", err)}
		}
		data = b
	}

	request, err := messages.DeserializeRequest(data)
	if err != nil {
		return nil, &messages.Reply{Error: err.Error()}
	}
	return request, nil
}

func (s *WSServer) handleRequest(ctx context.Context, sess *session, request *messages.Request) *messages.Reply {
	reply := &messages.Reply{ID: request.ID}
	response, err := s.invoke(ctx, sess, request)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}

	b, err := json.Marshal(response)
	if err != nil {
		sess.logger.Error("Failed to marshal response to %s: %v", request.Command, err)
		reply.Error = "failed to encode response"
		return reply
	}
	reply.Response = b
	return reply
}

func (s *WSServer) invoke(ctx context.Context, sess *session, request *messages.Request) (interface{}, error) {
	switch request.Command {
	case messages.CommandPing:
		return map[string]int64{"timestamp": time.Now().UnixMilli()}, nil
	case messages.CommandLogin:
		return s.handleLogin(ctx, sess, request.Args)
	}

	playerName, loggedIn := sess.player()
	if s.authProvider != nil && !loggedIn {
		return nil, fmt.Errorf("login required")
	}
	if loggedIn {
		ctx = commands.WithPlayerName(ctx, playerName)
	}

	return s.invoker.Invoke(ctx, request.Command, request.Args)
}

func (s *WSServer) handleLogin(ctx context.Context, sess *session, args json.RawMessage) (interface{}, error) {
	if s.authProvider == nil {
		return nil, fmt.Errorf("authentication is not enabled")
	}

	loginArgs := &messages.LoginArgs{}
	if err := json.Unmarshal(args, loginArgs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal login: %v", err)
	}

	token, err := s.authProvider.VerifyToken(ctx, loginArgs.Token)
	if err != nil {
		sess.logger.Warn("Failed login: %v", err)
		return nil, fmt.Errorf("failed to verify token: %v", err)
	}

	sess.login(token.DisplayName())
	sess.logger.Info("Player %s logged in", token.DisplayName())
	return &messages.LoginResult{PlayerName: token.DisplayName()}, nil
}

// writeReply writes a Reply to a WebSocket connection, compressing it
// when typ is binary.
func writeReply(ctx context.Context, conn *websocket.Conn, typ websocket.MessageType, reply *messages.Reply) error {
	b, err := messages.SerializeReply(reply)
	if err != nil {
		return fmt.Errorf("failed to serialize reply: %v", err)
	}

	if typ == websocket.MessageBinary {
		b, err = messages.Compress(b)
		if err != nil {
			return fmt.Errorf("failed to compress reply: %v", err)
		}
	}

	if err := conn.Write(ctx, typ, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

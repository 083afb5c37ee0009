// Package bridgetest runs an in-process wallet bridge for tests.
package bridgetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/hedera-wallet-cli/internal/adapters/transport/wsbridge"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/websocket"
)

// Handler answers one request. A non-nil error is sent as the wallet error.
type Handler func(params json.RawMessage) (any, *wsbridge.RPCError)

type Server struct {
	srv      *httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	handlers map[string]Handler
	calls    []wsbridge.Message
	paired   []string
	token    string
}

// NewServer starts a bridge that has paired the given accounts. Every method
// has a default handler that approves the request.
func NewServer(t testing.TB, paired ...string) *Server {
	t.Helper()

	s := &Server{handlers: map[string]Handler{}, paired: paired}
	s.installDefaults()
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) URL() string {
	return "ws" + strings.TrimPrefix(s.srv.URL, "http")
}

// RequireToken makes wallet_init fail with 4100 unless token is presented.
func (s *Server) RequireToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Server) Handle(method string, handler Handler) {
	s.mu.Lock()
	s.handlers[method] = handler
	s.mu.Unlock()
}

// Reject makes method fail with code.
func (s *Server) Reject(method string, code int, message string) {
	s.Handle(method, func(json.RawMessage) (any, *wsbridge.RPCError) {
		return nil, &wsbridge.RPCError{Code: code, Message: message}
	})
}

// Calls returns the methods received so far, in order.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	methods := make([]string, 0, len(s.calls))
	for _, call := range s.calls {
		methods = append(methods, call.Method)
	}
	return methods
}

// LastParams decodes the params of the latest call of method into v.
func (s *Server) LastParams(method string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].Method == method {
			return json.Unmarshal(s.calls[i].Params, v)
		}
	}
	return fmt.Errorf("no %s call recorded", method)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		var msg wsbridge.Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		s.mu.Lock()
		s.calls = append(s.calls, msg)
		handler, ok := s.handlers[msg.Method]
		s.mu.Unlock()

		wg.Add(1)
		go func(msg wsbridge.Message) {
			defer wg.Done()

			resp := wsbridge.Message{ID: msg.ID}
			if !ok {
				resp.Error = &wsbridge.RPCError{Code: wsbridge.CodeUnsupported, Message: "method not supported: " + msg.Method}
			} else if result, rpcErr := handler(msg.Params); rpcErr != nil {
				resp.Error = rpcErr
			} else if raw, err := json.Marshal(result); err != nil {
				resp.Error = &wsbridge.RPCError{Code: -32603, Message: err.Error()}
			} else {
				resp.Result = raw
			}

			writeMu.Lock()
			_ = conn.WriteJSON(resp)
			writeMu.Unlock()
		}(msg)
	}
}

func (s *Server) installDefaults() {
	s.handlers[wsbridge.MethodInit] = func(params json.RawMessage) (any, *wsbridge.RPCError) {
		var p wsbridge.InitParams
		_ = json.Unmarshal(params, &p)

		s.mu.Lock()
		token := s.token
		s.mu.Unlock()
		if token != "" && p.Token != token {
			return nil, &wsbridge.RPCError{Code: wsbridge.CodeUnauthorized, Message: "invalid pairing token"}
		}
		return struct{}{}, nil
	}
	s.handlers[wsbridge.MethodPairedAccounts] = func(json.RawMessage) (any, *wsbridge.RPCError) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return wsbridge.PairedAccountsResult{Accounts: append([]string{}, s.paired...)}, nil
	}
	s.handlers[wsbridge.MethodGetSigner] = func(params json.RawMessage) (any, *wsbridge.RPCError) {
		var p wsbridge.AccountParams
		_ = json.Unmarshal(params, &p)
		return wsbridge.SignerResult{SignerID: "signer-" + p.Account, Account: p.Account, CanExecute: true}, nil
	}
	s.handlers[wsbridge.MethodPairingMetadata] = func(json.RawMessage) (any, *wsbridge.RPCError) {
		return wsbridge.PairingMetadataResult{Topic: "topic-1", Network: "testnet"}, nil
	}
	s.handlers[wsbridge.MethodGetProvider] = func(params json.RawMessage) (any, *wsbridge.RPCError) {
		var p wsbridge.ProviderParams
		_ = json.Unmarshal(params, &p)
		return wsbridge.ProviderResult{ProviderID: "provider-" + p.Account}, nil
	}
	s.handlers[wsbridge.MethodProviderSigner] = func(params json.RawMessage) (any, *wsbridge.RPCError) {
		var p wsbridge.ProviderSignerParams
		_ = json.Unmarshal(params, &p)
		account := strings.TrimPrefix(p.ProviderID, "provider-")
		return wsbridge.SignerResult{SignerID: "signer-" + account, Account: account, CanExecute: true}, nil
	}
	submit := func(json.RawMessage) (any, *wsbridge.RPCError) {
		return wsbridge.HandleResult{TransactionID: "0.0.42@1700000000.000000001", ReceiptAvailable: true}, nil
	}
	s.handlers[wsbridge.MethodSendTransaction] = submit
	s.handlers[wsbridge.MethodExecuteTransaction] = submit
	s.handlers[wsbridge.MethodGetReceipt] = func(params json.RawMessage) (any, *wsbridge.RPCError) {
		var p wsbridge.ReceiptParams
		_ = json.Unmarshal(params, &p)
		return wsbridge.ReceiptResult{TransactionID: p.TransactionID, Status: "SUCCESS"}, nil
	}
	s.handlers[wsbridge.MethodSignTransaction] = func(json.RawMessage) (any, *wsbridge.RPCError) {
		return wsbridge.SignatureResult{Signature: hexutil.Bytes("signed-tx")}, nil
	}
	s.handlers[wsbridge.MethodSignMessages] = func(params json.RawMessage) (any, *wsbridge.RPCError) {
		var p wsbridge.SignMessagesParams
		_ = json.Unmarshal(params, &p)
		return wsbridge.SignatureResult{Signature: hexutil.Bytes("sig:" + p.Message)}, nil
	}
}

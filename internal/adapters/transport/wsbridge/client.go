package wsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const defaultHandshakeTimeout = 10 * time.Second

type Config struct {
	URL     string
	AppName string
	Network string
	// Token is the pairing token presented in wallet_init.
	Token  string
	Logger *zap.Logger
}

// Client talks to a wallet bridge over a websocket. A single read loop
// dispatches responses to waiting callers by message id.
type Client struct {
	cfg    Config
	logger *zap.Logger
	dialer websocket.Dialer

	connMu sync.Mutex
	conn   *websocket.Conn

	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[string]chan Message

	closed    chan struct{}
	closeOnce sync.Once
}

var (
	_ ports.WalletTransport = (*Client)(nil)
	_ ports.ProviderLookup  = (*Client)(nil)
)

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:     cfg,
		logger:  logger.With(zap.String("component", "wsbridge")),
		dialer:  websocket.Dialer{HandshakeTimeout: defaultHandshakeTimeout},
		pending: make(map[string]chan Message),
		closed:  make(chan struct{}),
	}
}

// Init connects to the bridge and announces the application.
func (c *Client) Init(ctx context.Context) error {
	if err := c.connect(ctx); err != nil {
		return err
	}

	params := InitParams{AppName: c.cfg.AppName, Network: c.cfg.Network, Token: c.cfg.Token}
	if err := c.call(ctx, MethodInit, params, nil); err != nil {
		return fmt.Errorf("initialize wallet bridge: %w", err)
	}
	return nil
}

func (c *Client) connect(ctx context.Context) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		return nil
	}
	select {
	case <-c.closed:
		return ports.ErrTransportClosed
	default:
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.cfg.URL, nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial wallet bridge %s: %w", c.cfg.URL, err)
	}

	c.conn = conn
	go c.readLoop(conn)
	return nil
}

func (c *Client) ListPairedAccounts(ctx context.Context) ([]domain.AccountID, error) {
	var result PairedAccountsResult
	if err := c.call(ctx, MethodPairedAccounts, struct{}{}, &result); err != nil {
		return nil, fmt.Errorf("list paired accounts: %w", err)
	}

	accounts := make([]domain.AccountID, 0, len(result.Accounts))
	for _, account := range result.Accounts {
		accounts = append(accounts, domain.AccountID(account))
	}
	return accounts, nil
}

func (c *Client) GetSigner(ctx context.Context, account domain.AccountID) (ports.Signer, error) {
	var result SignerResult
	if err := c.call(ctx, MethodGetSigner, AccountParams{Account: account.String()}, &result); err != nil {
		return nil, err
	}
	return c.newSigner(result, account), nil
}

func (c *Client) PairingMetadata(ctx context.Context) (ports.PairingMetadata, error) {
	var result PairingMetadataResult
	if err := c.call(ctx, MethodPairingMetadata, struct{}{}, &result); err != nil {
		return ports.PairingMetadata{}, err
	}
	return ports.PairingMetadata{Topic: result.Topic, Network: result.Network}, nil
}

func (c *Client) GetProvider(ctx context.Context, network, topic string, account domain.AccountID) (ports.Provider, error) {
	var result ProviderResult
	params := ProviderParams{Network: network, Topic: topic, Account: account.String()}
	if err := c.call(ctx, MethodGetProvider, params, &result); err != nil {
		return nil, err
	}
	return &Provider{client: c, id: result.ProviderID, account: account}, nil
}

func (c *Client) SendTransaction(ctx context.Context, account domain.AccountID, tx domain.TransactionRequest) (ports.SubmissionHandle, error) {
	var result HandleResult
	params := SendTransactionParams{Account: account.String(), Transaction: NewTransaction(tx)}
	if err := c.call(ctx, MethodSendTransaction, params, &result); err != nil {
		return nil, err
	}
	return c.newHandle(result), nil
}

func (c *Client) SignMessages(ctx context.Context, account domain.AccountID, message string) ([]byte, error) {
	var result SignatureResult
	if err := c.call(ctx, MethodSignMessages, SignMessagesParams{Account: account.String(), Message: message}, &result); err != nil {
		return nil, err
	}
	return result.Signature, nil
}

func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)

		c.connMu.Lock()
		conn := c.conn
		c.connMu.Unlock()
		if conn == nil {
			return
		}

		c.writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = conn.Close()
	})
	return err
}

// call sends one request and waits for its response. When ctx ends first the
// waiter is removed, so a late response is dropped by the read loop.
func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()
	if conn == nil {
		return fmt.Errorf("%w: wallet bridge not connected", domain.ErrNotInitialized)
	}
	select {
	case <-c.closed:
		return fmt.Errorf("%s: %w", method, ports.ErrTransportClosed)
	default:
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode %s params: %w", method, err)
	}

	id := uuid.NewString()
	waiter := make(chan Message, 1)
	c.pendingMu.Lock()
	c.pending[id] = waiter
	c.pendingMu.Unlock()
	defer c.forget(id)

	c.writeMu.Lock()
	err = conn.WriteJSON(Message{ID: id, Method: method, Params: raw})
	c.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("send %s: %w", method, errors.Join(ports.ErrTransportClosed, err))
	}

	select {
	case resp, ok := <-waiter:
		if !ok {
			return fmt.Errorf("%s: %w", method, ports.ErrTransportClosed)
		}
		if resp.Error != nil {
			return resp.Error
		}
		if result == nil || len(resp.Result) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closed:
		return fmt.Errorf("%s: %w", method, ports.ErrTransportClosed)
	}
}

func (c *Client) forget(id string) {
	c.pendingMu.Lock()
	delete(c.pending, id)
	c.pendingMu.Unlock()
}

// readLoop owns all reads. A lost connection closes the client.
func (c *Client) readLoop(conn *websocket.Conn) {
	defer func() {
		c.failPending()
		_ = c.Close()
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			select {
			case <-c.closed:
			default:
				c.logger.Warn("wallet bridge connection lost", zap.Error(err))
			}
			return
		}

		c.pendingMu.Lock()
		waiter, ok := c.pending[msg.ID]
		delete(c.pending, msg.ID)
		c.pendingMu.Unlock()

		if !ok {
			c.logger.Debug("dropping response without waiter", zap.String("id", msg.ID))
			continue
		}
		waiter <- msg
	}
}

func (c *Client) failPending() {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()

	for id, waiter := range c.pending {
		close(waiter)
		delete(c.pending, id)
	}
}

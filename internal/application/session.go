package application

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"go.uber.org/zap"
)

type InitState string

const (
	InitPending InitState = "pending"
	InitReady   InitState = "ready"
	InitFailed  InitState = "failed"
)

// SessionRegistry owns the single wallet session of the process. It is the
// only component that initializes the wallet transport.
type SessionRegistry struct {
	transport ports.WalletTransport
	logger    *zap.Logger

	mu      sync.Mutex
	current *Session
}

type SessionOption func(*SessionRegistry)

func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(r *SessionRegistry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewSessionRegistry(transport ports.WalletTransport, opts ...SessionOption) *SessionRegistry {
	r := &SessionRegistry{transport: transport, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Session returns the current session, creating it and starting the wallet
// handshake on first use. A session whose handshake failed is replaced on
// the next call; any other session is returned as is.
func (r *SessionRegistry) Session() (*Session, error) {
	if r == nil || r.transport == nil {
		return nil, fmt.Errorf("%w: no wallet transport configured", domain.ErrNotInitialized)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil && r.current.State() != InitFailed {
		return r.current, nil
	}

	session := newSession(r.transport, r.logger)
	r.current = session
	go session.handshake()

	return session, nil
}

// Close disposes the current session, if any.
func (r *SessionRegistry) Close() error {
	r.mu.Lock()
	session := r.current
	r.current = nil
	r.mu.Unlock()

	if session == nil {
		return nil
	}
	return session.Close()
}

type Session struct {
	transport ports.WalletTransport
	logger    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	ready  chan struct{}

	mu      sync.RWMutex
	state   InitState
	initErr error
	paired  []domain.AccountID
}

func newSession(transport ports.WalletTransport, logger *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		transport: transport,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		ready:     make(chan struct{}),
		state:     InitPending,
	}
}

// handshake initializes the transport and loads the paired-account set.
func (s *Session) handshake() {
	err := s.transport.Init(s.ctx)
	if err == nil {
		_, err = s.refresh(s.ctx)
	}

	s.mu.Lock()
	if err != nil {
		s.state = InitFailed
		s.initErr = err
	} else {
		s.state = InitReady
	}
	s.mu.Unlock()
	close(s.ready)

	if err != nil {
		s.logger.Warn("wallet handshake failed", zap.Error(err))
		return
	}
	s.logger.Debug("wallet handshake completed", zap.Int("paired_accounts", len(s.snapshot())))
}

func (s *Session) State() InitState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AwaitReady blocks until the handshake finished or ctx is done.
func (s *Session) AwaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == InitFailed {
		return fmt.Errorf("%w: %w", domain.ErrInitializationFailed, s.initErr)
	}
	return nil
}

// PairedAccounts returns the paired-account set loaded by the handshake or
// the last Refresh. It does not contact the wallet.
func (s *Session) PairedAccounts(ctx context.Context) ([]domain.AccountID, error) {
	if err := s.AwaitReady(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Refresh reloads the paired-account set from the wallet.
func (s *Session) Refresh(ctx context.Context) ([]domain.AccountID, error) {
	if err := s.AwaitReady(ctx); err != nil {
		return nil, err
	}
	return s.refresh(ctx)
}

func (s *Session) refresh(ctx context.Context) ([]domain.AccountID, error) {
	accounts, err := s.transport.ListPairedAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paired accounts: %w", err)
	}

	paired := make([]domain.AccountID, 0, len(accounts))
	for _, account := range accounts {
		normalized := account.Normalize()
		if normalized == "" || domain.ContainsAccount(paired, normalized) {
			continue
		}
		paired = append(paired, normalized)
	}

	s.mu.Lock()
	s.paired = paired
	s.mu.Unlock()

	return append([]domain.AccountID(nil), paired...), nil
}

func (s *Session) snapshot() []domain.AccountID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AccountID(nil), s.paired...)
}

func (s *Session) IsPaired(ctx context.Context, account domain.AccountID) (bool, error) {
	accounts, err := s.PairedAccounts(ctx)
	if err != nil {
		return false, err
	}
	return domain.ContainsAccount(accounts, account), nil
}

// RequirePaired fails with ErrAccountNotPaired when account is not in the set.
func (s *Session) RequirePaired(ctx context.Context, account domain.AccountID) error {
	paired, err := s.IsPaired(ctx, account)
	if err != nil {
		return err
	}
	if !paired {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotPaired, account)
	}
	return nil
}

func (s *Session) Transport() ports.WalletTransport {
	return s.transport
}

// Close stops a pending handshake and closes the transport when it supports it.
func (s *Session) Close() error {
	s.cancel()
	if closer, ok := s.transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

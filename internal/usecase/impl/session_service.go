package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"walletportal/config"
	deliverycontext "walletportal/internal/delivery/context"
	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/lifecycle"
	"walletportal/internal/domain/repository"
	"walletportal/internal/domain/service"
	"walletportal/internal/usecase"
	"walletportal/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clientSession is the state of one browser: its controllers, active view and signed-in identity.
type clientSession struct {
	auth      usecase.AuthFlowUsecase
	wallet    usecase.WalletViewerUsecase
	directory usecase.UserDirectoryUsecase

	view     entity.View
	identity *entity.AuthSession // never holds the token
	lastSeen time.Time
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	provider service.WalletProvider
	tokens   repository.TokenRepository
	qrcode   service.QRCodeService
	tokenKey string
	pageSize int
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*clientSession
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	provider service.WalletProvider,
	tokens repository.TokenRepository,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return newSessionService(cfg, provider, tokens, qrcode, logger)
}

func newSessionService(
	cfg *config.Config,
	provider service.WalletProvider,
	tokens repository.TokenRepository,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) *sessionService {
	tokenKey := cfg.TokenStore.Key
	if tokenKey == "" {
		tokenKey = config.DefaultTokenStorageKey
	}

	return &sessionService{
		provider: provider,
		tokens:   tokens,
		qrcode:   qrcode,
		tokenKey: tokenKey,
		pageSize: cfg.Directory.PageSize,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*clientSession),
	}
}

// SessionParams holds dependencies for the session registry, injected by Fx.
type SessionParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Provider service.WalletProvider
	Tokens   repository.TokenRepository
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// NewSessionUsecase builds the registry and ties it to the process lifecycle: every stored
// token is purged on start, and idle sessions are evicted until stop.
func NewSessionUsecase(params SessionParams) usecase.SessionUsecase {
	srv := newSessionService(params.Config, params.Provider, params.Tokens, params.QRCode, params.Logger)

	idleTimeout := params.Config.Session.IdleTimeout
	interval := params.Config.Session.JanitorInterval
	janitorCtx, stopJanitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := srv.PurgeTokens(ctx); err != nil {
				return err
			}

			if idleTimeout > 0 && interval > 0 {
				go srv.runJanitor(janitorCtx, idleTimeout, interval)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopJanitor()

			return nil
		},
	})

	return srv
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) key(sessionID string) string {
	return entity.TokenKey(sessionID, srv.tokenKey)
}

// session returns the client session for sessionID, creating it on first use.
func (srv *sessionService) session(sessionID string) *clientSession {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cs, ok := srv.sessions[sessionID]
	if !ok {
		cs = srv.newClientSession(sessionID)
		srv.sessions[sessionID] = cs
	}
	cs.lastSeen = srv.now()

	return cs
}

func (srv *sessionService) newClientSession(sessionID string) *clientSession {
	key := srv.key(sessionID)
	cs := &clientSession{view: entity.ViewAuth}

	cs.auth = NewAuthFlow(srv.provider, srv.tokens, key, func(ctx context.Context, s entity.AuthSession) {
		srv.onAuthenticated(ctx, sessionID, s)
	}, srv.logger)
	cs.wallet = NewWalletViewer(srv.provider, srv.tokens, key, srv.qrcode, srv.logger)
	cs.directory = NewUserDirectory(srv.provider, srv.pageSize, srv.logger)

	return cs
}

func (srv *sessionService) onAuthenticated(ctx context.Context, sessionID string, s entity.AuthSession) {
	cs := srv.session(sessionID)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	s.Token = ""
	cs.identity = &s
	cs.view = entity.ViewWallet
	srv.log(ctx).Debug("Session signed in", slog.String("sessionID", sessionID))
}

// reset abandons the session's controllers and forgets its identity. The token is deleted afterwards
// by the caller, so a sign-in racing the reset cannot leave one behind.
func (srv *sessionService) reset(cs *clientSession) {
	cs.auth.Reset()
	cs.wallet.Reset()
	cs.directory.Reset()

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cs.identity = nil
	cs.view = entity.ViewAuth
}

// Start treats the call as a fresh application load: a surviving token is never reused.
func (srv *sessionService) Start(ctx context.Context, sessionID string) (entity.SessionStatus, error) {
	cs := srv.session(sessionID)
	srv.reset(cs)

	if err := srv.tokens.Delete(ctx, srv.key(sessionID)); err != nil {
		return entity.SessionStatus{View: entity.ViewAuth}, errors.Wrap(err, "failed to clear stored token")
	}

	srv.log(ctx).Debug("Session started", slog.String("sessionID", sessionID))

	return entity.SessionStatus{View: entity.ViewAuth}, nil
}

func (srv *sessionService) Logout(ctx context.Context, sessionID string) (entity.SessionStatus, error) {
	cs := srv.session(sessionID)
	srv.reset(cs)

	if err := srv.tokens.Delete(ctx, srv.key(sessionID)); err != nil {
		return entity.SessionStatus{View: entity.ViewAuth}, errors.Wrap(err, "failed to delete token on logout")
	}

	srv.log(ctx).Info("Session signed out", slog.String("sessionID", sessionID))

	return entity.SessionStatus{View: entity.ViewAuth}, nil
}

// Status reports the session. Authenticated means a token is currently stored.
func (srv *sessionService) Status(ctx context.Context, sessionID string) (entity.SessionStatus, error) {
	cs := srv.session(sessionID)

	authenticated, err := srv.hasToken(ctx, sessionID)
	if err != nil {
		return entity.SessionStatus{}, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	status := entity.SessionStatus{
		Authenticated: authenticated,
		View:          cs.view,
	}
	if !authenticated {
		status.View = entity.ViewAuth

		return status, nil
	}
	if cs.identity != nil {
		status.WalletAddress = cs.identity.WalletAddress
		status.IsNewUser = cs.identity.IsNewUser
		status.Type = cs.identity.Type
	}

	return status, nil
}

// SwitchView moves a signed-in session between the wallet and the directory.
func (srv *sessionService) SwitchView(ctx context.Context, sessionID string, view entity.View) (entity.SessionStatus, error) {
	if view != entity.ViewWallet && view != entity.ViewUsers {
		return entity.SessionStatus{}, domainerrors.ErrInvalidView
	}

	if err := srv.RequireToken(ctx, sessionID); err != nil {
		return entity.SessionStatus{View: entity.ViewAuth}, domainerrors.ErrNotAuthenticated
	}

	cs := srv.session(sessionID)
	srv.mu.Lock()
	cs.view = view
	srv.mu.Unlock()

	return srv.Status(ctx, sessionID)
}

func (srv *sessionService) RequireToken(ctx context.Context, sessionID string) error {
	ok, err := srv.hasToken(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrNoAuthToken
	}

	return nil
}

func (srv *sessionService) hasToken(ctx context.Context, sessionID string) (bool, error) {
	_, err := srv.tokens.Find(ctx, srv.key(sessionID))
	if errors.Is(err, repository.ErrTokenNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read token")
	}

	return true, nil
}

func (srv *sessionService) AuthFlow(sessionID string) usecase.AuthFlowUsecase {
	return srv.session(sessionID).auth
}

func (srv *sessionService) WalletViewer(sessionID string) usecase.WalletViewerUsecase {
	return srv.session(sessionID).wallet
}

func (srv *sessionService) UserDirectory(sessionID string) usecase.UserDirectoryUsecase {
	return srv.session(sessionID).directory
}

func (srv *sessionService) PurgeTokens(ctx context.Context) (int, error) {
	n, err := srv.tokens.DeleteAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to purge stored tokens", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to purge stored tokens")
	}

	srv.log(ctx).Info("Purged stored tokens", slog.Int("count", n))

	return n, nil
}

func (srv *sessionService) EvictIdle(ctx context.Context, cutoff time.Time) int {
	srv.mu.Lock()
	idle := make(map[string]*clientSession)
	for id, cs := range srv.sessions {
		if cs.lastSeen.Before(cutoff) {
			idle[id] = cs
			delete(srv.sessions, id)
		}
	}
	srv.mu.Unlock()

	for id, cs := range idle {
		cs.auth.Reset()
		cs.wallet.Reset()
		cs.directory.Reset()

		if err := srv.tokens.Delete(ctx, srv.key(id)); err != nil {
			srv.log(ctx).Warn("Failed to delete idle session token", slog.String("sessionID", id), slog.Any("error", err))
		}
	}

	return len(idle)
}

func (srv *sessionService) runJanitor(ctx context.Context, idleTimeout, interval time.Duration) {
	srv.logger.Info("Session janitor started",
		slog.String("idleTimeout", util.FormatDuration(idleTimeout)),
		slog.String("interval", util.FormatDuration(interval)),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := srv.EvictIdle(ctx, srv.now().Add(-idleTimeout)); n > 0 {
				srv.logger.Debug("Evicted idle sessions", slog.Int("count", n))
			}
		}
	}
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nbassil/campuslink/internal/client/gateway"
	"github.com/nbassil/campuslink/internal/client/repositories/credentials"
	"github.com/nbassil/campuslink/internal/client/token"
	"github.com/nbassil/campuslink/internal/logging"
)

// StoreKey is the single well-known slot the credential record lives under.
const StoreKey = "user"

// ErrNoPendingSignUp is returned by Verify when neither memory nor the store
// holds a partial credential to verify against.
var ErrNoPendingSignUp = errors.New("no pending sign-up to verify")

// PushTokenSource obtains the device push-notification token forwarded to
// the backend on sign-up. Failures are swallowed: sign-up proceeds without
// a token.
type PushTokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Manager is the session state machine. It owns the in-memory Session,
// orchestrates the sign-in/up/verify/out transitions, and keeps the access
// token fresh with a self-arming refresh schedule.
//
// Transitions serialize on an internal mutex; overlapping calls resolve as
// last-completed-write-wins. Callers should debounce rapid duplicate
// invocations (e.g. a double-tapped sign-in button equivalent).
type Manager struct {
	gw    gateway.Gateway
	store credentials.Repository
	push  PushTokenSource
	log   logging.Logger

	mu      sync.Mutex
	current Session
	armed   *scheduledRefresh
	gen     uint64
	subs    map[uint64]chan Session
	nextSub uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithPushTokenSource enables push-token registration on sign-up.
func WithPushTokenSource(src PushTokenSource) Option {
	return func(m *Manager) { m.push = src }
}

// NewManager builds the process-wide session manager. The initial session is
// StatusUnknown until Bootstrap runs.
func NewManager(gw gateway.Gateway, store credentials.Repository, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		gw:      gw,
		store:   store,
		log:     log.With("component", "session"),
		current: Session{Status: StatusUnknown},
		subs:    make(map[uint64]chan Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the session as of the last completed transition.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe returns a channel receiving every subsequent session transition
// and a cancel function releasing it. The channel is buffered; when a
// subscriber lags, older transitions are dropped in favor of newer ones.
func (m *Manager) Subscribe() (<-chan Session, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan Session, 4)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
	return ch, cancel
}

// Bootstrap loads the persisted credential once at startup and derives the
// initial session. It never fails: unreadable or unparseable records resolve
// to StatusUnauthenticated.
func (m *Manager) Bootstrap(ctx context.Context) Session {
	raw, err := m.store.Get(ctx, StoreKey)
	if err != nil {
		m.log.Error(ctx, "failed to read credential store, treating as signed out", "error", err)
		m.setState(ctx, Session{Status: StatusUnauthenticated}, time.Time{})
		return m.Current()
	}
	if raw == nil {
		m.setState(ctx, Session{Status: StatusUnauthenticated}, time.Time{})
		return m.Current()
	}

	var cred Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		m.log.Error(ctx, "failed to parse stored credential, treating as signed out", "error", err)
		m.setState(ctx, Session{Status: StatusUnauthenticated}, time.Time{})
		return m.Current()
	}

	if !cred.HasTokens() {
		// Account awaiting email verification; keep the partial record so
		// Verify can find the user id.
		m.setState(ctx, Session{Status: StatusPendingVerification, Credential: &cred}, time.Time{})
		return m.Current()
	}

	claims, err := token.Decode(cred.AccessToken)
	if err != nil {
		m.log.Warn(ctx, "stored access token is not decodable, treating as signed out", "error", err)
		m.forceUnauthenticated(ctx)
		return m.Current()
	}

	// Role is derived from the token, never trusted from the stored copy.
	cred.Role = claims.Role
	m.setState(ctx, Session{Status: StatusAuthenticated, Credential: &cred}, claims.ExpiresAt)
	return m.Current()
}

// SignIn authenticates with email and password. The backend answers with
// either a completed login (token pair) or a pending-verification notice for
// accounts that never finished email verification; both are handled. Any
// gateway error propagates unmodified and leaves the session unchanged.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	out, err := m.gw.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if out.Pending != nil {
		cred := &Credential{UserID: out.Pending.UserID, Email: email}
		if err := m.persist(ctx, cred); err != nil {
			return err
		}
		m.setState(ctx, Session{Status: StatusPendingVerification, Credential: cred}, time.Time{})
		return nil
	}

	return m.completeLogin(ctx, out.Completed)
}

// SignUp creates an unverified account. Push-token registration is best
// effort: a source failure is logged and the sign-up proceeds without one.
func (m *Manager) SignUp(ctx context.Context, email, password, major string) error {
	var pushToken string
	if m.push != nil {
		t, err := m.push.Token(ctx)
		if err != nil {
			m.log.Warn(ctx, "push token unavailable, signing up without one", "error", err)
		} else {
			pushToken = t
		}
	}

	res, err := m.gw.SignUp(ctx, gateway.SignUpRequest{
		Email:     email,
		Password:  password,
		Major:     major,
		PushToken: pushToken,
	})
	if err != nil {
		return err
	}

	cred := &Credential{UserID: res.UserID, Email: email, Major: major}
	if err := m.persist(ctx, cred); err != nil {
		return err
	}
	m.setState(ctx, Session{Status: StatusPendingVerification, Credential: cred}, time.Time{})
	return nil
}

// Verify completes email verification with the code the user received. The
// user id comes from the pending credential (memory first, then the store).
// On failure the session is unchanged and the error propagates.
func (m *Manager) Verify(ctx context.Context, code string) error {
	cred := m.Current().Credential
	if cred == nil || cred.UserID == "" {
		cred = m.loadStored(ctx)
	}
	if cred == nil || cred.UserID == "" {
		return ErrNoPendingSignUp
	}

	res, err := m.gw.Verify(ctx, code, cred.UserID)
	if err != nil {
		return err
	}
	return m.completeLogin(ctx, res)
}

// SignOut invalidates the session. The remote call is best effort; the local
// record is deleted unconditionally. Calling SignOut on an already signed-out
// manager is a no-op.
func (m *Manager) SignOut(ctx context.Context) {
	cur := m.Current()
	if cur.Credential != nil && cur.Credential.AccessToken != "" {
		if err := m.gw.SignOut(ctx, cur.Credential.AccessToken); err != nil {
			m.log.Warn(ctx, "remote sign-out failed", "error", err)
		}
	}

	if err := m.store.Delete(ctx, StoreKey); err != nil {
		m.log.Error(ctx, "failed to delete stored credential", "error", err)
	}
	m.setState(ctx, Session{Status: StatusUnauthenticated}, time.Time{})
}

// completeLogin decodes the role, persists the full credential, and arms the
// refresh scheduler.
func (m *Manager) completeLogin(ctx context.Context, res *gateway.LoginResult) error {
	claims, err := token.Decode(res.AccessToken)
	if err != nil {
		// A token without decodable claims is an invalid session.
		m.forceUnauthenticated(ctx)
		return err
	}

	cred := &Credential{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		UserID:       res.UserID,
		Email:        res.Email,
		Role:         claims.Role,
		Major:        res.Major,
		CreatedAt:    res.CreatedAt,
	}
	if err := m.persist(ctx, cred); err != nil {
		return err
	}
	m.setState(ctx, Session{Status: StatusAuthenticated, Credential: cred}, claims.ExpiresAt)
	return nil
}

// refresh exchanges the refresh token for a new access token, merging it
// into the existing credential. gen guards timer-fired refreshes against
// firing for a superseded state; pass 0 to refresh unconditionally.
//
// Refresh failure is the machine's only self-triggered transition to
// StatusUnauthenticated: there is no caller to hand the error to.
func (m *Manager) refresh(ctx context.Context, gen uint64) {
	m.mu.Lock()
	if gen != 0 && gen != m.gen {
		m.mu.Unlock()
		return
	}
	cred := m.current.Credential
	m.mu.Unlock()

	if !cred.HasTokens() {
		return
	}

	res, err := m.gw.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		m.log.Warn(ctx, "token refresh failed, signing out", "error", err)
		m.forceUnauthenticated(ctx)
		return
	}
	if res == nil || res.AccessToken == "" {
		m.log.Warn(ctx, "token refresh returned no token, signing out")
		m.forceUnauthenticated(ctx)
		return
	}

	claims, err := token.Decode(res.AccessToken)
	if err != nil {
		m.log.Warn(ctx, "refreshed token is not decodable, signing out", "error", err)
		m.forceUnauthenticated(ctx)
		return
	}

	// Only the access token and its derived role change; refresh token and
	// identity are preserved.
	next := *cred
	next.AccessToken = res.AccessToken
	next.Role = claims.Role

	if err := m.persist(ctx, &next); err != nil {
		m.log.Error(ctx, "failed to persist refreshed credential", "error", err)
	}
	m.setState(ctx, Session{Status: StatusAuthenticated, Credential: &next}, claims.ExpiresAt)
	m.log.Debug(ctx, "session refreshed", "userId", next.UserID, "expiresAt", claims.ExpiresAt)
}

// forceUnauthenticated wipes the session and the stored record. Deleting the
// record closes the stale-credential window a later bootstrap could otherwise
// resurrect.
func (m *Manager) forceUnauthenticated(ctx context.Context) {
	if err := m.store.Delete(ctx, StoreKey); err != nil {
		m.log.Error(ctx, "failed to delete stored credential", "error", err)
	}
	m.setState(ctx, Session{Status: StatusUnauthenticated}, time.Time{})
}

// setState atomically replaces the session, notifies subscribers, and
// re-arms the refresh schedule. exp is meaningful only for
// StatusAuthenticated: a future expiry arms a one-shot timer for 1ms past
// it, while a stale one triggers a refresh immediately, before returning.
func (m *Manager) setState(ctx context.Context, next Session, exp time.Time) {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.armed.Cancel()
	m.armed = nil
	m.current = next
	m.notifyLocked(next)

	immediate := false
	if next.Status == StatusAuthenticated {
		delay := time.Until(exp)
		if delay <= 0 {
			immediate = true
		} else {
			m.armed = newScheduledRefresh(delay+time.Millisecond, func() {
				m.refresh(context.Background(), gen)
			})
		}
	}
	m.mu.Unlock()

	if immediate {
		m.refresh(ctx, gen)
	}
}

func (m *Manager) notifyLocked(s Session) {
	for _, ch := range m.subs {
		select {
		case ch <- s:
		default:
			// Subscriber lagging: drop its oldest update so the newest
			// state lands.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}

// loadStored reads and parses the stored credential, returning nil on any
// failure.
func (m *Manager) loadStored(ctx context.Context) *Credential {
	raw, err := m.store.Get(ctx, StoreKey)
	if err != nil || raw == nil {
		return nil
	}
	var cred Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil
	}
	return &cred
}

func (m *Manager) persist(ctx context.Context, cred *Credential) error {
	raw, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, StoreKey, raw); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	return nil
}

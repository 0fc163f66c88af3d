package session

import (
	"context"
	"errors"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	utilserrors "github.com/axelarnetwork/fhevote/utils/errors"
	"github.com/axelarnetwork/fhevote/voter/chain"
	"github.com/axelarnetwork/fhevote/voter/metrics"
	"github.com/axelarnetwork/fhevote/voter/tally"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

// Controller owns the vote session and drives it through its phases.
// The lock is never held across a remote call. Every identity change starts a new generation,
// and results of remote calls issued under an older generation are discarded.
type Controller struct {
	connector  Connector
	binder     Binder
	reconciler Reconciler
	metrics    *metrics.Metrics
	logger     log.Logger

	observersLock sync.RWMutex
	observers     []Observer

	lock       sync.Mutex
	generation uint64
	seq        uint64
	sessionID  uuid.UUID
	phase      Phase
	resume     Phase
	account    chain.Account
	contract   Contract
	hasVoted   bool
	lastError  *ErrorRecord
	pending    *VoteReceipt
	tally      *tally.Latest
	// stamp of the latest refresh whose outcome was applied, successful or not
	refreshed  uint64
}

// NewController returns a controller of a disconnected session
func NewController(connector Connector, binder Binder, reconciler Reconciler, m *metrics.Metrics, logger log.Logger) *Controller {
	return &Controller{
		connector:  connector,
		binder:     binder,
		reconciler: reconciler,
		metrics:    m,
		logger:     logger.With("component", "session"),
		sessionID:  uuid.New(),
		phase:      Disconnected,
		tally:      tally.NewLatest(),
	}
}

// AddObserver registers an observer for all future transitions
func (c *Controller) AddObserver(observer Observer) {
	c.observersLock.Lock()
	defer c.observersLock.Unlock()

	c.observers = append(c.observers, observer)
}

// Snapshot returns the current session state
func (c *Controller) Snapshot() Snapshot {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.snapshotLocked()
}

// Start connects automatically if the wallet already authorized an identity for this client.
// Failures are logged and leave the session disconnected.
func (c *Controller) Start(ctx context.Context) {
	account, ok, err := c.connector.Authorized(ctx)
	switch {
	case err != nil:
		c.logger.Info("skipping auto-connect", "error", err)
		return
	case !ok:
		c.logger.Debug("no authorized account, skipping auto-connect")
		return
	}

	c.lock.Lock()
	if c.phase != Disconnected {
		c.lock.Unlock()
		return
	}
	gen := c.beginConnectLocked()
	c.commit()

	c.logger.Info("auto-connecting", "account", account.Address().Hex())
	if err := c.bindAndCheck(ctx, gen, account, true); err != nil {
		c.logger.Info("auto-connect failed", append([]interface{}{"error", err}, utilserrors.KeyVals(err)...)...)
	}
}

// Connect asks the wallet for an identity, binds it to the contract and checks its vote status.
// A connect issued while another one is pending supersedes it.
// In an errored session with a binding only the check is repeated.
func (c *Controller) Connect(ctx context.Context) error {
	c.lock.Lock()
	switch {
	case c.phase == Errored && c.contract != nil:
		gen := c.generation
		c.lock.Unlock()

		return c.check(ctx, gen, false)
	case c.phase != Disconnected && c.phase != Connecting && c.phase != Errored:
		c.lock.Unlock()
		return nil
	}

	gen := c.beginConnectLocked()
	c.commit()

	account, err := c.connector.Connect(ctx)
	if err != nil {
		return c.failConnect(gen, err, false)
	}

	return c.bindAndCheck(ctx, gen, account, false)
}

// CastVote submits the vote and waits for its confirmation.
// It refuses without touching the contract while a vote is in flight or after the account has voted.
func (c *Controller) CastVote(ctx context.Context) (VoteReceipt, error) {
	c.lock.Lock()
	switch {
	case c.phase.InFlight():
		c.lock.Unlock()
		c.metrics.DuplicateVoteAttempt()

		return VoteReceipt{}, errorsmod.Wrap(votetypes.ErrDuplicateVoteAttempt, "a vote is already being processed")
	case c.hasVoted:
		voter := c.account.Address()
		c.lock.Unlock()

		return VoteReceipt{}, errorsmod.Wrapf(votetypes.ErrAlreadyVoted, "account %s", voter.Hex())
	case !c.readyLocked():
		phase := c.phase
		c.lock.Unlock()

		return VoteReceipt{}, errorsmod.Wrapf(votetypes.ErrNotReady, "cannot vote while %s", phase)
	}

	gen := c.generation
	contract := c.contract
	c.transitionLocked(Voting)
	c.commit()

	tx, err := contract.Vote(ctx)
	if err != nil {
		return VoteReceipt{}, c.failVote(gen, err)
	}

	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		c.logger.Info("vote submitted for a discarded session", "tx", tx.Hash().Hex())

		return VoteReceipt{}, superseded("vote")
	}
	c.pending = &VoteReceipt{Tx: tx.Hash()}
	c.transitionLocked(Confirming)
	c.metrics.VoteSubmitted()
	c.commit()

	if err := contract.WaitConfirmed(ctx, tx); err != nil {
		return VoteReceipt{}, c.failVote(gen, err)
	}

	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		return VoteReceipt{}, superseded("vote")
	}
	c.hasVoted = true
	c.pending = &VoteReceipt{Tx: tx.Hash(), Confirmed: true}
	c.metrics.VoteConfirmed()
	c.commit()

	receipt := VoteReceipt{Tx: tx.Hash(), Confirmed: true}
	view, err := c.reconciler.Refresh(ctx, contract)

	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		return receipt, nil
	}
	c.pending = nil
	switch {
	case !c.claimRefreshLocked(view.AsOf):
		// a later refresh already landed, its outcome decides how the session resumes
		c.metrics.Refreshed(metrics.RefreshStale)
		if c.lastError != nil && c.lastError.Op == OpRefresh {
			c.resume = Ready
			c.transitionLocked(Errored)
		} else {
			c.lastError = nil
			c.transitionLocked(Ready)
		}
	case err != nil:
		c.failLocked(OpRefresh, err, Ready)
	default:
		c.applyViewLocked(view)
		c.lastError = nil
		c.transitionLocked(Ready)
	}
	c.commit()

	// the vote is cast even if the tally could not be refreshed afterwards
	return receipt, nil
}

// Refresh re-reads the tally of a bound session
func (c *Controller) Refresh(ctx context.Context) error {
	c.lock.Lock()
	if !c.readyLocked() && !c.phase.InFlight() {
		phase := c.phase
		c.lock.Unlock()

		return errorsmod.Wrapf(votetypes.ErrNotReady, "cannot refresh while %s", phase)
	}
	gen := c.generation
	contract := c.contract
	c.lock.Unlock()

	view, err := c.reconciler.Refresh(ctx, contract)

	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		c.metrics.Refreshed(metrics.RefreshStale)

		return superseded("refresh")
	}

	if !c.claimRefreshLocked(view.AsOf) {
		c.lock.Unlock()
		c.metrics.Refreshed(metrics.RefreshStale)
		c.logger.Debug("discarding outdated refresh", "as_of", view.AsOf, "error", err)

		return err
	}

	if err != nil {
		if c.phase == Ready || c.phase == Errored {
			c.failLocked(OpRefresh, err, Ready)
		} else {
			c.recordLocked(OpRefresh, err)
		}
		c.commit()

		return err
	}

	changed := c.applyViewLocked(view)
	if c.phase == Errored && c.lastError != nil && c.lastError.Op == OpRefresh {
		c.lastError = nil
		c.transitionLocked(Ready)
		changed = true
	}

	if !changed {
		c.lock.Unlock()
		return nil
	}
	c.commit()

	return nil
}

// Disconnect drops the identity and starts a fresh session
func (c *Controller) Disconnect() {
	c.lock.Lock()
	c.generation++
	c.resetLocked()
	c.sessionID = uuid.New()
	c.lastError = nil
	c.transitionLocked(Disconnected)
	c.commit()

	c.logger.Info("disconnected")
}

func (c *Controller) bindAndCheck(ctx context.Context, gen uint64, account chain.Account, auto bool) error {
	c.lock.Lock()
	stale := c.supersededLocked(gen)
	c.lock.Unlock()
	if stale {
		return superseded("connect")
	}

	contract, err := c.binder.Bind(ctx, account)
	if err != nil {
		return c.failConnect(gen, err, auto)
	}

	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		return superseded("connect")
	}
	c.account = account
	c.contract = contract
	c.transitionLocked(Bound)
	c.commit()

	c.logger.Info("account bound", "account", account.Address().Hex())

	return c.check(ctx, gen, auto)
}

// check reads the account's vote status and the tally concurrently
func (c *Controller) check(ctx context.Context, gen uint64, auto bool) error {
	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		return superseded("check")
	}
	contract := c.contract
	voter := c.account.Address()
	c.transitionLocked(Checking)
	c.commit()

	var (
		voted bool
		view  tally.View
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		voted, err = contract.HasVoted(gCtx, voter)

		return err
	})
	g.Go(func() error {
		var err error
		view, err = c.reconciler.Refresh(gCtx, contract)

		return err
	})
	err := g.Wait()

	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		return superseded("check")
	}

	switch {
	case err != nil && auto:
		c.resetLocked()
		c.transitionLocked(Disconnected)
		c.metrics.Failed(OpCheck, votetypes.Kind(err))
	case err != nil:
		c.failLocked(OpCheck, err, Bound)
	default:
		c.hasVoted = c.hasVoted || voted
		if c.claimRefreshLocked(view.AsOf) {
			c.applyViewLocked(view)
		}
		c.lastError = nil
		c.transitionLocked(Ready)
	}
	c.commit()

	return err
}

func (c *Controller) failConnect(gen uint64, err error, auto bool) error {
	c.lock.Lock()
	if c.supersededLocked(gen) || errorsmod.IsOf(err, votetypes.ErrSuperseded) {
		c.lock.Unlock()
		return superseded("connect")
	}

	c.resetLocked()
	if auto {
		c.metrics.Failed(OpConnect, votetypes.Kind(err))
	} else {
		c.recordLocked(OpConnect, err)
	}
	c.transitionLocked(Disconnected)
	c.commit()

	return err
}

func (c *Controller) failVote(gen uint64, err error) error {
	c.lock.Lock()
	if c.supersededLocked(gen) {
		c.lock.Unlock()
		return superseded("vote")
	}

	c.pending = nil
	c.failLocked(OpVote, err, Ready)
	c.commit()

	return err
}

// beginConnectLocked starts a new generation in the Connecting phase
func (c *Controller) beginConnectLocked() uint64 {
	c.generation++
	c.resetLocked()
	c.transitionLocked(Connecting)

	return c.generation
}

// resetLocked forgets everything tied to the identity
func (c *Controller) resetLocked() {
	c.account = chain.Account{}
	c.contract = nil
	c.hasVoted = false
	c.pending = nil
	c.tally.Reset()
}

func (c *Controller) readyLocked() bool {
	return c.contract != nil && (c.phase == Ready || (c.phase == Errored && c.resume == Ready))
}

// claimRefreshLocked reports whether the outcome of the refresh issued at asOf is newer than every
// outcome applied so far, and if so marks it as the latest
func (c *Controller) claimRefreshLocked(asOf uint64) bool {
	if asOf <= c.refreshed {
		return false
	}

	c.refreshed = asOf
	return true
}

func (c *Controller) supersededLocked(gen uint64) bool {
	return gen != c.generation
}

func (c *Controller) failLocked(op string, err error, resume Phase) {
	c.recordLocked(op, err)
	c.resume = resume
	c.transitionLocked(Errored)
}

func (c *Controller) recordLocked(op string, err error) {
	kind := votetypes.Kind(err)
	c.lastError = &ErrorRecord{Op: op, Kind: kind, Err: err}
	c.metrics.Failed(op, kind)

	keyvals := append([]interface{}{"op", op, "kind", kind, "error", err}, utilserrors.KeyVals(err)...)
	if votetypes.IsExpected(err) || errors.Is(err, votetypes.ErrUserRejected) {
		c.logger.Info("operation declined", keyvals...)
		return
	}
	c.logger.Error("operation failed", keyvals...)
}

// applyViewLocked shows the view unless a newer one is already shown
func (c *Controller) applyViewLocked(view tally.View) bool {
	if !c.tally.Set(view) {
		c.metrics.Refreshed(metrics.RefreshStale)
		return false
	}

	c.metrics.Refreshed(metrics.RefreshOK)
	if v, ok := view.Plaintext.(tally.Value); ok {
		c.metrics.PlaintextTally(v.N)
	}

	return true
}

func (c *Controller) transitionLocked(phase Phase) {
	if phase != c.phase {
		c.logger.Debug("phase transition", "from", c.phase.String(), "to", phase.String())
	}

	c.phase = phase
	c.metrics.Transitioned(phaseLabel(phase))
}

// commit publishes the current state to all observers and releases the lock
func (c *Controller) commit() {
	c.seq++
	snapshot := c.snapshotLocked()
	c.lock.Unlock()

	c.observersLock.RLock()
	defer c.observersLock.RUnlock()

	for _, observer := range c.observers {
		observer(snapshot)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Seq:       c.seq,
		SessionID: c.sessionID,
		Phase:     c.phase,
		Account:   c.account.Address(),
		Tally:     c.tally.Get(),
		HasVoted:  c.hasVoted,
	}

	if c.phase == Errored {
		snapshot.ResumePhase = c.resume
	}

	if c.lastError != nil {
		record := *c.lastError
		snapshot.LastError = &record
	}

	if c.pending != nil {
		receipt := *c.pending
		snapshot.PendingTx = &receipt
	}

	return snapshot
}

func phaseLabel(phase Phase) string {
	label, err := phase.MarshalText()
	if err != nil {
		return "unknown"
	}

	return string(label)
}

func superseded(op string) error {
	return errorsmod.Wrapf(votetypes.ErrSuperseded, "%s result discarded", op)
}

package display_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/fhevote/voter/display"
	"github.com/axelarnetwork/fhevote/voter/display/mock"
	"github.com/axelarnetwork/fhevote/voter/metrics"
	"github.com/axelarnetwork/fhevote/voter/session"
	"github.com/axelarnetwork/fhevote/voter/tally"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

var account = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func readySnapshot(seq uint64) session.Snapshot {
	return session.Snapshot{
		Seq:       seq,
		SessionID: uuid.New(),
		Phase:     session.Ready,
		Account:   account,
		Tally:     tally.View{Ciphertext: bytes.Repeat([]byte{0xab}, 20), Plaintext: tally.Value{N: 3}, AsOf: 1},
	}
}

func TestBoard(t *testing.T) {
	board := display.NewBoard(session.Snapshot{})

	board.Observe(readySnapshot(2))
	board.Observe(session.Snapshot{Seq: 1, Phase: session.Checking})
	assert.Equal(t, session.Ready, board.Latest().Phase)

	board.Observe(session.Snapshot{Seq: 3, Phase: session.Voting})
	assert.Equal(t, session.Voting, board.Latest().Phase)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0xf39F...2266", display.ShortAddress(account))
}

func TestRender(t *testing.T) {
	assert.Equal(t, "Not connected (Disconnected)\n", display.Render(session.Snapshot{}))

	assert.Equal(t,
		"Connected as: 0xf39F...2266\n"+
			"Status: Ready to cast encrypted vote\n"+
			"Encrypted tally: 0xabababababababababababab...\n"+
			"Current total votes: 3\n",
		display.Render(readySnapshot(1)))

	voted := readySnapshot(1)
	voted.HasVoted = true
	voted.Tally.Plaintext = tally.PermissionDenied{}
	voted.Phase = session.Errored
	voted.ResumePhase = session.Ready
	voted.LastError = &session.ErrorRecord{Op: session.OpRefresh, Kind: "RemoteCallFailed", Err: errors.New("timeout")}
	assert.Equal(t,
		"Connected as: 0xf39F...2266\n"+
			"Status: Already voted\n"+
			"Encrypted tally: 0xabababababababababababab...\n"+
			"Current total votes: No decryption permissions\n"+
			"Last error: RemoteCallFailed during refresh (timeout)\n",
		display.Render(voted))
}

func TestPhaseLogger(t *testing.T) {
	var out bytes.Buffer
	observe := display.PhaseLogger(&out)

	observe(session.Snapshot{Seq: 1, Phase: session.Connecting})
	observe(session.Snapshot{Seq: 3, Phase: session.Checking})
	observe(session.Snapshot{Seq: 2, Phase: session.Bound})
	observe(session.Snapshot{Seq: 4, Phase: session.Checking})
	observe(session.Snapshot{Seq: 5, Phase: session.Ready})

	assert.Equal(t, "[Connecting]\n[Checking]\n[Ready]\n", out.String())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, display.StatusCode(errorsmod.Wrap(votetypes.ErrDuplicateVoteAttempt, "in flight")))
	assert.Equal(t, http.StatusConflict, display.StatusCode(votetypes.ErrAlreadyVoted))
	assert.Equal(t, http.StatusForbidden, display.StatusCode(votetypes.ErrUserRejected))
	assert.Equal(t, http.StatusServiceUnavailable, display.StatusCode(votetypes.ErrWalletUnavailable))
	assert.Equal(t, http.StatusBadGateway, display.StatusCode(votetypes.ErrRemoteCallFailed))
	assert.Equal(t, http.StatusInternalServerError, display.StatusCode(errors.New("boom")))
}

func TestSessionResponse_DecodesIntoItself(t *testing.T) {
	snapshot := readySnapshot(7)
	snapshot.Phase = session.Errored
	snapshot.ResumePhase = session.Ready
	snapshot.PendingTx = &session.VoteReceipt{Tx: common.HexToHash("0x02")}
	snapshot.LastError = &session.ErrorRecord{Op: session.OpRefresh, Kind: "RemoteCallFailed", Err: errors.New("connection refused")}

	resp := display.NewSessionResponse(snapshot)
	bz, err := json.Marshal(resp)
	assert.NoError(t, err)

	var decoded display.SessionResponse
	assert.NoError(t, json.Unmarshal(bz, &decoded))
	assert.Equal(t, resp, decoded)
	assert.Equal(t, session.Errored, decoded.Phase)
	assert.Equal(t, session.Ready, *decoded.ResumePhase)
}

func TestRouter(t *testing.T) {
	board := display.NewBoard(readySnapshot(1))
	sess := &mock.SessionMock{
		ConnectFunc:    func(context.Context) error { return nil },
		CastVoteFunc:   func(context.Context) (session.VoteReceipt, error) { return session.VoteReceipt{Tx: common.HexToHash("0x01"), Confirmed: true}, nil },
		RefreshFunc:    func(context.Context) error { return errorsmod.Wrap(votetypes.ErrNotReady, "disconnected") },
		DisconnectFunc: func() {},
		SnapshotFunc:   func() session.Snapshot { return readySnapshot(2) },
	}

	reg := prometheus.NewRegistry()
	metrics.New(reg).VoteSubmitted()
	router := display.NewRouter(sess, board, reg, log.NewNopLogger())

	serve := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	t.Run("GET /session", func(t *testing.T) {
		rec := serve(http.MethodGet, "/session")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ready", resp["phase"])
		assert.Equal(t, account.Hex(), resp["account"])
		assert.Equal(t, "3", resp["decrypted_tally"])
		assert.Equal(t, true, resp["can_vote"])
		assert.NotContains(t, resp, "last_error")
	})

	t.Run("POST /session/vote", func(t *testing.T) {
		rec := serve(http.MethodPost, "/session/vote")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp display.VoteResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, common.HexToHash("0x01").Hex(), resp.Tx)
		assert.EqualValues(t, 2, resp.Session.Seq)
		assert.Equal(t, session.Ready, resp.Session.Phase)
		assert.Nil(t, resp.Session.ResumePhase)
		assert.Len(t, sess.CastVoteCalls(), 1)
	})

	t.Run("POST /session/refresh", func(t *testing.T) {
		rec := serve(http.MethodPost, "/session/refresh")
		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp display.ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "NotReady", resp.Kind)
	})

	t.Run("POST /session/connect and /session/disconnect", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/session/connect").Code)
		assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/session/disconnect").Code)
		assert.Len(t, sess.ConnectCalls(), 1)
		assert.Len(t, sess.DisconnectCalls(), 1)
	})

	t.Run("wrong method", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, serve(http.MethodGet, "/session/vote").Code)
	})

	t.Run("GET /metrics", func(t *testing.T) {
		rec := serve(http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "fhevote_votes_submitted_total 1")
	})
}

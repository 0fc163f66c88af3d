package display

import (
	"context"
	"encoding/json"
	"net/http"

	"cosmossdk.io/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/axelarnetwork/fhevote/voter/session"
	"github.com/axelarnetwork/fhevote/voter/tally"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

//go:generate moq -out ./mock/http.go -pkg mock . Session

// Session is the set of session operations exposed over HTTP
type Session interface {
	Connect(ctx context.Context) error
	CastVote(ctx context.Context) (session.VoteReceipt, error)
	Refresh(ctx context.Context) error
	Disconnect()
	Snapshot() session.Snapshot
}

// ErrorResponse describes a failed request or the session's last error
type ErrorResponse struct {
	Op    string `json:"op,omitempty"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// PendingTxResponse describes a vote awaiting confirmation
type PendingTxResponse struct {
	Tx        string `json:"tx"`
	Confirmed bool   `json:"confirmed"`
}

// SessionResponse is the JSON rendition of a session snapshot
type SessionResponse struct {
	SessionID      string             `json:"session_id"`
	Seq            uint64             `json:"seq"`
	Phase          session.Phase      `json:"phase"`
	ResumePhase    *session.Phase     `json:"resume_phase,omitempty"`
	Account        string             `json:"account,omitempty"`
	HasVoted       bool               `json:"has_voted"`
	CanVote        bool               `json:"can_vote"`
	EncryptedTally string             `json:"encrypted_tally"`
	DecryptedTally string             `json:"decrypted_tally"`
	PendingTx      *PendingTxResponse `json:"pending_tx,omitempty"`
	LastError      *ErrorResponse     `json:"last_error,omitempty"`
}

// VoteResponse is returned for an accepted vote
type VoteResponse struct {
	Tx      string          `json:"tx"`
	Session SessionResponse `json:"session"`
}

// NewSessionResponse converts a snapshot for the HTTP API
func NewSessionResponse(s session.Snapshot) SessionResponse {
	resp := SessionResponse{
		SessionID:      s.SessionID.String(),
		Seq:            s.Seq,
		Phase:          s.Phase,
		HasVoted:       s.HasVoted,
		CanVote:        s.CanVote(),
		EncryptedTally: tally.FormatCiphertext(s.Tally),
		DecryptedTally: tally.FormatPlaintext(s.Tally),
	}

	if s.Phase == session.Errored {
		resume := s.ResumePhase
		resp.ResumePhase = &resume
	}

	if s.Connected() {
		resp.Account = s.Account.Hex()
	}

	if s.PendingTx != nil {
		resp.PendingTx = &PendingTxResponse{Tx: s.PendingTx.Tx.Hex(), Confirmed: s.PendingTx.Confirmed}
	}

	if s.LastError != nil {
		resp.LastError = &ErrorResponse{Op: s.LastError.Op, Kind: s.LastError.Kind, Error: s.LastError.Err.Error()}
	}

	return resp
}

// RegisterRoutes registers the session API and the metrics endpoint
func RegisterRoutes(r *mux.Router, s Session, board *Board, gatherer prometheus.Gatherer, logger log.Logger) {
	h := handler{session: s, board: board, logger: logger.With("component", "http")}

	r.HandleFunc("/session", h.getSession).Methods(http.MethodGet)
	r.HandleFunc("/session/connect", h.connect).Methods(http.MethodPost)
	r.HandleFunc("/session/vote", h.vote).Methods(http.MethodPost)
	r.HandleFunc("/session/refresh", h.refresh).Methods(http.MethodPost)
	r.HandleFunc("/session/disconnect", h.disconnect).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// NewRouter returns a router serving the session API
func NewRouter(s Session, board *Board, gatherer prometheus.Gatherer, logger log.Logger) *mux.Router {
	r := mux.NewRouter()
	RegisterRoutes(r, s, board, gatherer, logger)

	return r
}

type handler struct {
	session Session
	board   *Board
	logger  log.Logger
}

func (h handler) getSession(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, NewSessionResponse(h.board.Latest()))
}

// session operations outlive the request, an abandoned request must not abort a vote in flight
func (h handler) connect(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Connect(context.WithoutCancel(r.Context())); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, NewSessionResponse(h.session.Snapshot()))
}

func (h handler) vote(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.session.CastVote(context.WithoutCancel(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, VoteResponse{Tx: receipt.Tx.Hex(), Session: NewSessionResponse(h.session.Snapshot())})
}

func (h handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Refresh(context.WithoutCancel(r.Context())); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, NewSessionResponse(h.session.Snapshot()))
}

func (h handler) disconnect(w http.ResponseWriter, _ *http.Request) {
	h.session.Disconnect()
	h.writeJSON(w, http.StatusOK, NewSessionResponse(h.session.Snapshot()))
}

func (h handler) writeError(w http.ResponseWriter, err error) {
	kind := votetypes.Kind(err)
	h.writeJSON(w, StatusCode(err), ErrorResponse{Kind: kind, Error: err.Error()})
}

func (h handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

// StatusCode maps an error kind to the HTTP status reported for it
func StatusCode(err error) int {
	switch votetypes.Kind(err) {
	case "DuplicateVoteAttempt", "AlreadyVoted", "NotReady", "Superseded":
		return http.StatusConflict
	case "UserRejected", "SubmissionRejected", "PermissionDenied":
		return http.StatusForbidden
	case "WalletUnavailable":
		return http.StatusServiceUnavailable
	case "Internal":
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

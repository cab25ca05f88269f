// Package api serves game sessions over a JSON HTTP API
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/taixiu/internal/common/uuid"
	"github.com/KirkDiggler/taixiu/internal/models"
	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilGameService = errors.New("game service cannot be nil")
)

type Config struct {
	GameService game.Service

	// AllowedOrigins defaults to any origin
	AllowedOrigins []string

	// Logger defaults to a disabled logger
	Logger *zerolog.Logger
}

type Handler struct {
	serv           game.Service
	allowedOrigins []string
	logger         zerolog.Logger
}

func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Handler{
		serv:           cfg.GameService,
		allowedOrigins: origins,
		logger:         logger.With().Str("component", "api").Logger(),
	}, nil
}

// Router mounts the session endpoints
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         60 * 15,
	}))

	r.Route("/sessions", func(rr chi.Router) {
		rr.Post("/", h.StartSession)
		rr.Route("/{sessionID}", func(sr chi.Router) {
			sr.Use(requireSessionID)
			sr.Get("/", h.GetSession)
			sr.Delete("/", h.EndSession)
			sr.Post("/side", h.SelectSide)
			sr.Post("/bet", h.SetBet)
			sr.Post("/quick-bet", h.QuickBet)
			sr.Post("/all-in", h.AllIn)
			sr.Post("/roll", h.Roll)
			sr.Post("/loan", h.RequestLoan)
		})
	})

	return r
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[StartSessionRequest](r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Reason: err.Error()})
		return
	}

	output, err := h.serv.StartSession(r.Context(), &game.StartSessionInput{
		PlayerName: payload.PlayerName,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(output.Session))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.serv.GetSession(r.Context(), &game.GetSessionInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.serv.EndSession(r.Context(), &game.EndSessionInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) SelectSide(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[SelectSideRequest](r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Reason: err.Error()})
		return
	}

	side, ok := models.ParseSide(payload.Side)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Reason: "invalid side"})
		return
	}

	output, err := h.serv.SelectSide(r.Context(), &game.SelectSideInput{
		SessionID: chi.URLParam(r, "sessionID"),
		Side:      side,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) SetBet(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[SetBetRequest](r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Reason: err.Error()})
		return
	}

	output, err := h.serv.SetBetAmount(r.Context(), &game.SetBetAmountInput{
		SessionID: chi.URLParam(r, "sessionID"),
		Amount:    int(payload.Amount),
		Text:      payload.Text,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) QuickBet(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[QuickBetRequest](r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Reason: err.Error()})
		return
	}

	output, err := h.serv.QuickBet(r.Context(), &game.QuickBetInput{
		SessionID: chi.URLParam(r, "sessionID"),
		Amount:    payload.Amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) AllIn(w http.ResponseWriter, r *http.Request) {
	output, err := h.serv.AllIn(r.Context(), &game.AllInInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(output.Session))
}

// Roll answers while the dice are still tumbling; clients poll GetSession
// for the result
func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	output, err := h.serv.Roll(r.Context(), &game.RollInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, RollResponse{
		Side:       string(output.Started.Side),
		Stake:      output.Started.Stake,
		ResolvesAt: output.ResolvesAt,
		Session:    toSessionResponse(output.Session),
	})
}

func (h *Handler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	output, err := h.serv.RequestLoan(r.Context(), &game.RequestLoanInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LoanResponse{
		Amount:  output.Loan.Amount,
		Session: toSessionResponse(output.Session),
	})
}

// requireSessionID answers 404 for ids that cannot name a session
func requireSessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !uuid.Valid(chi.URLParam(r, "sessionID")) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Reason: game.ErrSessionNotFound.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	writeJSON(w, status, body)
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

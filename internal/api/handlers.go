package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tdnguyen/ieltslab/internal/models"
	"github.com/tdnguyen/ieltslab/internal/repository"
	"github.com/tdnguyen/ieltslab/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	cardService  *services.CardService
	wordService  *services.WordService
	essayService *services.EssayService
	userService  *services.UserService
}

// NewHandler creates a new handler
func NewHandler(cardService *services.CardService, wordService *services.WordService, essayService *services.EssayService, userService *services.UserService) *Handler {
	return &Handler{
		cardService:  cardService,
		wordService:  wordService,
		essayService: essayService,
		userService:  userService,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// ListCards handles GET /vocabulary-cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list vocabulary cards")
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

// GetCard handles GET /vocabulary-cards/{id}
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	card, err := h.cardService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "vocabulary card not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get vocabulary card")
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// CreateCard handles POST /vocabulary-cards
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.cardService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid vocabulary card data")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create vocabulary card")
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// UpdateCardFavorite handles PATCH /vocabulary-cards/{id}/favorite
func (h *Handler) UpdateCardFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	var req models.UpdateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.cardService.UpdateFavorite(r.Context(), id, req.IsFavorited)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "vocabulary card not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update vocabulary card")
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// ListCardWords handles GET /vocabulary-cards/{id}/words
func (h *Handler) ListCardWords(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	words, err := h.wordService.ListByCardID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list vocabulary words")
		return
	}

	writeJSON(w, http.StatusOK, words)
}

// GetWord handles GET /vocabulary-words/{id}
func (h *Handler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word ID")
		return
	}

	word, err := h.wordService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "vocabulary word not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get vocabulary word")
		return
	}

	writeJSON(w, http.StatusOK, word)
}

// CreateWord handles POST /vocabulary-words
func (h *Handler) CreateWord(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.wordService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid vocabulary word data")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create vocabulary word")
		return
	}

	writeJSON(w, http.StatusCreated, word)
}

// CreateEssay handles POST /essay-grading
func (h *Handler) CreateEssay(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEssayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	essay, err := h.essayService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid essay grading data")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create essay grading")
		return
	}

	writeJSON(w, http.StatusCreated, essay)
}

// UpdateEssayScores handles PATCH /essay-grading/{id}/scores
func (h *Handler) UpdateEssayScores(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid essay ID")
		return
	}

	var req models.UpdateScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	essay, err := h.essayService.UpdateScores(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "essay grading not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update essay grading")
		return
	}

	writeJSON(w, http.StatusOK, essay)
}

// ListEssays handles GET /essay-grading
func (h *Handler) ListEssays(w http.ResponseWriter, r *http.Request) {
	essays, err := h.essayService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list essay gradings")
		return
	}

	writeJSON(w, http.StatusOK, essays)
}

// GetEssay handles GET /essay-grading/{id}
func (h *Handler) GetEssay(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid essay ID")
		return
	}

	essay, err := h.essayService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "essay grading not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get essay grading")
		return
	}

	writeJSON(w, http.StatusOK, essay)
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid user data")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// GetUser handles GET /users/{id}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// FindUser handles GET /users?username={username}
func (h *Handler) FindUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

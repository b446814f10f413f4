package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/internal/service/journal"
)

// journalService defines the minimal interface needed by JournalHandler.
type journalService interface {
	ListEntries(ctx context.Context, filter domain.EntryFilter) (*journal.EntryList, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, entryID uuid.UUID, input journal.UpdateEntryInput) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	Stats(ctx context.Context) (*domain.JournalStats, error)
}

// JournalHandler serves journal entry REST endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type topicPayload struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

type insightPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createEntryRequest struct {
	Title         string           `json:"title"`
	Transcription string           `json:"transcription"`
	AudioURL      string           `json:"audioUrl"`
	Duration      string           `json:"duration"`
	Mood          *string          `json:"mood"`
	Tags          []string         `json:"tags"`
	Topics        []topicPayload   `json:"topics"`
	Insights      []insightPayload `json:"insights"`
}

type updateEntryRequest struct {
	Title         *string   `json:"title"`
	Transcription *string   `json:"transcription"`
	AudioURL      *string   `json:"audioUrl"`
	Duration      *string   `json:"duration"`
	Mood          *string   `json:"mood"`
	Tags          *[]string `json:"tags"`
}

type entryResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Transcription string           `json:"transcription"`
	AudioURL      string           `json:"audioUrl"`
	Duration      string           `json:"duration"`
	Mood          *string          `json:"mood"`
	Tags          []string         `json:"tags,omitempty"`
	Topics        []topicPayload   `json:"topics,omitempty"`
	Insights      []insightPayload `json:"insights,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type entryListResponse struct {
	Entries    []entryResponse `json:"entries"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

type statsResponse struct {
	TotalEntries    int `json:"totalEntries"`
	EntriesThisWeek int `json:"entriesThisWeek"`
	CurrentStreak   int `json:"currentStreak"`
}

// List handles GET /api/journal?page=&limit=&search=&tag=.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.EntryFilter{}
	if v := q.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("tag"); v != "" {
		filter.Tag = &v
	}

	result, err := h.svc.ListEntries(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := entryListResponse{
		Entries:    make([]entryResponse, 0, len(result.Entries)),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
	for i := range result.Entries {
		resp.Entries = append(resp.Entries, toEntryResponse(&result.Entries[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/journal/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Create handles POST /api/journal.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := journal.CreateEntryInput{
		Title:         req.Title,
		Transcription: req.Transcription,
		AudioURL:      req.AudioURL,
		Duration:      req.Duration,
		Mood:          req.Mood,
		Tags:          req.Tags,
	}
	for _, t := range req.Topics {
		input.Topics = append(input.Topics, journal.TopicInput{Name: t.Name, Percentage: t.Percentage})
	}
	for _, in := range req.Insights {
		input.Insights = append(input.Insights, journal.InsightInput{Title: in.Title, Description: in.Description})
	}

	entry, err := h.svc.CreateEntry(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Update handles PUT /api/journal/{id}.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), entryID, journal.UpdateEntryInput{
		Title:         req.Title,
		Transcription: req.Transcription,
		AudioURL:      req.AudioURL,
		Duration:      req.Duration,
		Mood:          req.Mood,
		Tags:          req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/journal/{id}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), entryID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats handles GET /api/journal/stats.
func (h *JournalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalEntries:    stats.TotalEntries,
		EntriesThisWeek: stats.EntriesThisWeek,
		CurrentStreak:   stats.CurrentStreak,
	})
}

// pathID parses the {id} path segment as a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return uuid.Nil, false
	}
	return id, true
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	var mood *string
	if e.Mood != nil {
		m := e.Mood.String()
		mood = &m
	}

	resp := entryResponse{
		ID:            e.ID.String(),
		Title:         e.Title,
		Transcription: e.Transcription,
		AudioURL:      e.AudioURL,
		Duration:      e.Duration,
		Mood:          mood,
		Tags:          e.Tags,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	for _, t := range e.Topics {
		resp.Topics = append(resp.Topics, topicPayload{Name: t.Name, Percentage: t.Percentage})
	}
	for _, in := range e.Insights {
		resp.Insights = append(resp.Insights, insightPayload{Title: in.Title, Description: in.Description})
	}
	return resp
}

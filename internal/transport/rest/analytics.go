package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/voicejournal/backend/internal/service/analytics"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	Report(ctx context.Context) (*analytics.Report, error)
}

// AnalyticsHandler serves the aggregate analytics endpoint.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type moodBucketResponse struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

type dayOfWeekBucketResponse struct {
	DayOfWeek int `json:"dayOfWeek"`
	Count     int `json:"count"`
}

type monthBucketResponse struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type topicAggregateResponse struct {
	Name          string `json:"name"`
	AvgPercentage int    `json:"avgPercentage"`
	EntryCount    int    `json:"entryCount"`
}

type timePointResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type analyticsResponse struct {
	MoodDistribution    []moodBucketResponse      `json:"moodDistribution"`
	EntriesPerDayOfWeek []dayOfWeekBucketResponse `json:"entriesPerDayOfWeek"`
	EntriesPerMonth     []monthBucketResponse     `json:"entriesPerMonth"`
	TopTopics           []topicAggregateResponse  `json:"topTopics"`
	TopTags             []tagCountResponse        `json:"topTags"`
	EntriesOverTime     []timePointResponse       `json:"entriesOverTime"`
	AvgEntryLength      int                       `json:"avgEntryLength"`
	WordsPerEntry       int                       `json:"wordsPerEntry"`
	TotalTimeSeconds    int                       `json:"totalTimeSeconds"`
}

// Report handles GET /api/analytics.
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := analyticsResponse{
		MoodDistribution:    make([]moodBucketResponse, 0, len(report.MoodDistribution)),
		EntriesPerDayOfWeek: make([]dayOfWeekBucketResponse, 0, len(report.EntriesPerDayOfWeek)),
		EntriesPerMonth:     make([]monthBucketResponse, 0, len(report.EntriesPerMonth)),
		TopTopics:           make([]topicAggregateResponse, 0, len(report.TopTopics)),
		TopTags:             make([]tagCountResponse, 0, len(report.TopTags)),
		EntriesOverTime:     make([]timePointResponse, 0, len(report.EntriesOverTime)),
		AvgEntryLength:      report.AvgEntryLength,
		WordsPerEntry:       report.WordsPerEntry,
		TotalTimeSeconds:    report.TotalTimeSeconds,
	}
	for _, b := range report.MoodDistribution {
		resp.MoodDistribution = append(resp.MoodDistribution, moodBucketResponse{Mood: b.Mood.String(), Count: b.Count})
	}
	for _, b := range report.EntriesPerDayOfWeek {
		resp.EntriesPerDayOfWeek = append(resp.EntriesPerDayOfWeek, dayOfWeekBucketResponse{DayOfWeek: b.DayOfWeek, Count: b.Count})
	}
	for _, b := range report.EntriesPerMonth {
		resp.EntriesPerMonth = append(resp.EntriesPerMonth, monthBucketResponse{Month: b.Month, Count: b.Count})
	}
	for _, t := range report.TopTopics {
		resp.TopTopics = append(resp.TopTopics, topicAggregateResponse{
			Name:          t.Name,
			AvgPercentage: t.AvgPercentage,
			EntryCount:    t.EntryCount,
		})
	}
	for _, c := range report.TopTags {
		resp.TopTags = append(resp.TopTags, tagCountResponse{Name: c.Name, Count: c.Count})
	}
	for _, p := range report.EntriesOverTime {
		resp.EntriesOverTime = append(resp.EntriesOverTime, timePointResponse{
			Date:  p.Date.Format("2006-01-02"),
			Count: p.Count,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

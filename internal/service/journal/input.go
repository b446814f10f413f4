package journal

import (
	"fmt"

	"github.com/voicejournal/backend/internal/config"
	"github.com/voicejournal/backend/internal/domain"
)

// TopicInput is one AI-assigned topic attached at save time.
type TopicInput struct {
	Name       string
	Percentage int
}

// InsightInput is one AI-generated insight attached at save time.
type InsightInput struct {
	Title       string
	Description string
}

// CreateEntryInput holds parameters for the create entry operation.
type CreateEntryInput struct {
	Title         string
	Transcription string
	AudioURL      string
	Duration      string
	Mood          *string
	Tags          []string
	Topics        []TopicInput
	Insights      []InsightInput
}

// Validate validates the create entry input against the configured limits.
func (i CreateEntryInput) Validate(cfg config.JournalConfig) error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > cfg.MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", cfg.MaxTitleLen)})
	}

	if i.Transcription == "" {
		errs = append(errs, domain.FieldError{Field: "transcription", Message: "required"})
	}

	if i.Mood != nil && !domain.Mood(*i.Mood).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "must be one of: positive, neutral, negative"})
	}

	errs = append(errs, validateTags(i.Tags, cfg)...)

	for idx, topic := range i.Topics {
		if topic.Name == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("topics[%d].name", idx), Message: "required"})
		}
		if topic.Percentage < 0 || topic.Percentage > 100 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("topics[%d].percentage", idx), Message: "must be between 0 and 100"})
		}
	}

	for idx, insight := range i.Insights {
		if insight.Title == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("insights[%d].title", idx), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds parameters for the update entry operation.
// Nil fields are left unchanged; a non-nil Tags replaces the whole tag set.
type UpdateEntryInput struct {
	Title         *string
	Transcription *string
	AudioURL      *string
	Duration      *string
	Mood          *string
	Tags          *[]string
}

// Validate validates the update entry input against the configured limits.
func (i UpdateEntryInput) Validate(cfg config.JournalConfig) error {
	var errs []domain.FieldError

	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > cfg.MaxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", cfg.MaxTitleLen)})
		}
	}

	if i.Transcription != nil && *i.Transcription == "" {
		errs = append(errs, domain.FieldError{Field: "transcription", Message: "must not be empty"})
	}

	if i.Mood != nil && !domain.Mood(*i.Mood).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "must be one of: positive, neutral, negative"})
	}

	if i.Tags != nil {
		errs = append(errs, validateTags(*i.Tags, cfg)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTags(tags []string, cfg config.JournalConfig) []domain.FieldError {
	var errs []domain.FieldError

	if len(tags) > cfg.MaxTagsPerEntry {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("at most %d tags per entry", cfg.MaxTagsPerEntry)})
	}
	for idx, name := range tags {
		if len(name) > cfg.MaxTagNameLen {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("tags[%d]", idx), Message: fmt.Sprintf("must be at most %d characters", cfg.MaxTagNameLen)})
		}
	}
	return errs
}

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

// AddItemRequest carries the user-submitted fields for a new catalog
// entry. The ID and rating aggregate are assigned by the store.
type AddItemRequest struct {
	Name          string   `json:"name" validate:"required"`
	URL           string   `json:"url" validate:"required,url"`
	Description   string   `json:"description" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags"`
	OpenSource    bool     `json:"openSource"`
	Decentralized bool     `json:"decentralized"`
	PrivacyLevel  string   `json:"privacyLevel" validate:"required,oneof=low medium high"`
}

// ValidationError reports which fields of a submission were rejected and
// why, so the presentation layer can attach messages to inputs.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "invalid item submission: " + strings.Join(parts, "; ")
}

// AddItem validates and inserts a locally created catalog entry.
type AddItem struct {
	Catalog  ItemCatalog
	Writer   datasources.ItemWriter
	validate *validator.Validate
}

func NewAddItem(catalog ItemCatalog, writer datasources.ItemWriter) *AddItem {
	return &AddItem{
		Catalog:  catalog,
		Writer:   writer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *AddItem) Execute(ctx context.Context, req AddItemRequest) (domain.Item, error) {
	if err := c.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return domain.Item{}, validationError(fieldErrs)
		}
		return domain.Item{}, fmt.Errorf("validating item submission: %w", err)
	}

	item := c.Catalog.Add(domain.Item{
		Name:          strings.TrimSpace(req.Name),
		URL:           strings.TrimSpace(req.URL),
		Description:   strings.TrimSpace(req.Description),
		Category:      req.Category,
		Tags:          req.Tags,
		OpenSource:    req.OpenSource,
		Decentralized: req.Decentralized,
		PrivacyLevel:  domain.PrivacyLevel(req.PrivacyLevel),
	})

	if c.Writer != nil {
		if err := c.Writer.UpsertItem(ctx, item); err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "failed to persist new item", "item_id", item.ID, "error", err)
		}
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "added catalog item", "item_id", item.ID, "name", item.Name)

	return item, nil
}

func validationError(fieldErrs validator.ValidationErrors) *ValidationError {
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		case "url":
			fields[fe.Field()] = "must be a valid URL"
		case "oneof":
			fields[fe.Field()] = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
		default:
			fields[fe.Field()] = "is invalid"
		}
	}
	return &ValidationError{Fields: fields}
}

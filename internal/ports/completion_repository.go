package ports

import (
	"context"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

// CompletionRepository persists the completion record as a whole.
// There is no partial update: every mutation is a Load followed by a Save.
type CompletionRepository interface {
	// Load returns domain.ErrRecordNotFound when no record exists yet and
	// domain.ErrMalformedRecord when the stored record cannot be trusted.
	Load(ctx context.Context) (*domain.CompletionRecord, error)
	Save(ctx context.Context, record *domain.CompletionRecord) error
}

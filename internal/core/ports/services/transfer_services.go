package services

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/dealerdesk/backend/internal/dto"
)

// TransferReaderSvc defines read operations for internal transfers
type TransferReaderSvc interface {
	GetTransferByID(ctx context.Context, transferID string) (*domain.InternalTransfer, error)
	ListTransfers(ctx context.Context, limit, offset int) ([]domain.InternalTransfer, error)
}

// TransferWriterSvc defines the internal transfer workflow
type TransferWriterSvc interface {
	// CreateTransfer constructs a new transfer in Pending status.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID string) (*domain.InternalTransfer, error)

	// PostTransfer appends the matched pair of ledger legs and flips the
	// transfer to Posted. A transfer that is already Posted is rejected
	// with apperrors.ErrInvalidState; it is never posted twice.
	PostTransfer(ctx context.Context, transferID string, userID string) (*domain.InternalTransfer, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}

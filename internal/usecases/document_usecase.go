package usecases

import (
	"context"
	"encoding/base64"
	"strings"

	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
)

// DocumentUsecase handles citizen PDF documents
type DocumentUsecase struct {
	documentRepo repositories.DocumentRepository
	profileRepo  repositories.ProfileRepository
}

// NewDocumentUsecase creates a new document usecase
func NewDocumentUsecase(documentRepo repositories.DocumentRepository, profileRepo repositories.ProfileRepository) *DocumentUsecase {
	return &DocumentUsecase{documentRepo: documentRepo, profileRepo: profileRepo}
}

// ListMine returns the actor's own documents.
func (u *DocumentUsecase) ListMine(ctx context.Context, actor access.Actor) ([]*entities.Document, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.Document, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.documentRepo.ListByCitizen(ctx, actor.ProfileID)
}

// ListForCitizen returns the documents of the citizen named username.
func (u *DocumentUsecase) ListForCitizen(ctx context.Context, actor access.Actor, username string) ([]*entities.Document, error) {
	citizen, err := resolveCitizen(ctx, u.profileRepo, username)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.Document, citizen.ID)); err != nil {
		return nil, err
	}
	return u.documentRepo.ListByCitizen(ctx, citizen.ID)
}

// Upload decodes the base64 payload and stores it against the citizen.
func (u *DocumentUsecase) Upload(ctx context.Context, actor access.Actor, input *entities.UploadDocumentInput) (*entities.Document, error) {
	citizen, err := resolveCitizen(ctx, u.profileRepo, input.Username)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Create, access.OwnedByCitizen(access.Document, citizen.ID)); err != nil {
		return nil, err
	}

	data, err := DecodePDF(input.PDFData)
	if err != nil {
		return nil, err
	}

	doc := &entities.Document{CitizenID: citizen.ID, Type: input.Type, PDFData: data}
	if err := u.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document.
func (u *DocumentUsecase) Delete(ctx context.Context, actor access.Actor, id uint) error {
	doc, err := u.documentRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, "document not found")
	}
	if err := access.Authorize(actor, access.Delete, access.OwnedByCitizen(access.Document, doc.CitizenID)); err != nil {
		return err
	}
	return notFoundAs(u.documentRepo.Delete(ctx, id), "document not found")
}

// DecodePDF turns the base64 text sent by clients into raw bytes. A data URI
// prefix is accepted and stripped.
func DecodePDF(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if i := strings.Index(encoded, ";base64,"); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, domainerrors.BadRequest("Pdf_data is not valid base64")
	}
	if len(data) == 0 {
		return nil, domainerrors.BadRequest("Pdf_data is empty")
	}
	return data, nil
}

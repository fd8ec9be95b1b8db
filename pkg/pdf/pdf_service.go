package pdf

import (
	"context"

	"Masterchef-Web/pkg/backend"
)

type (
	// PDFService relays backend-generated PDFs. Exactly one attempt per
	// request; content-type verification happens in the client.
	PDFService interface {
		Recipe(ctx context.Context, recipeID int64) ([]byte, error)
		User(ctx context.Context, token string, userID int64) ([]byte, error)
		Users(ctx context.Context, token string) ([]byte, error)
	}

	pdfService struct {
		backendClient backend.Client
	}
)

func NewPDFService(backendClient backend.Client) PDFService {
	return &pdfService{backendClient: backendClient}
}

func (s *pdfService) Recipe(ctx context.Context, recipeID int64) ([]byte, error) {
	return s.backendClient.RecipePDF(ctx, recipeID)
}

func (s *pdfService) User(ctx context.Context, token string, userID int64) ([]byte, error) {
	return s.backendClient.UserPDF(ctx, token, userID)
}

func (s *pdfService) Users(ctx context.Context, token string) ([]byte, error) {
	return s.backendClient.UsersPDF(ctx, token)
}

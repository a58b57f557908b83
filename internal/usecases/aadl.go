package usecases

import (
	"context"
	"strings"

	"docpress/internal/domain/dto"
	"docpress/internal/domain/entities"
	"docpress/internal/domain/repositories"
	apierrors "docpress/pkg/errors"

	"go.uber.org/zap"
)

type AadlService interface {
	// Create stores one application request; name and phone are mandatory.
	Create(ctx context.Context, req *dto.CreateDemandeDTO) (*entities.AadlDemande, error)
	List(ctx context.Context) ([]entities.AadlDemande, error)
}

type aadlService struct {
	repo repositories.AadlDemandeRepository
	log  *zap.Logger
}

func NewAadlService(repo repositories.AadlDemandeRepository, log *zap.Logger) AadlService {
	return &aadlService{
		repo: repo,
		log:  log,
	}
}

func (s *aadlService) Create(ctx context.Context, req *dto.CreateDemandeDTO) (*entities.AadlDemande, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, apierrors.ErrMissingParam("name + phone required")
	}

	demande := &entities.AadlDemande{
		Name:       name,
		FamilyName: strings.TrimSpace(req.FamilyName),
		Phone:      phone,
	}
	if err := s.repo.Create(ctx, demande); err != nil {
		return nil, apierrors.ErrDatabase(err)
	}

	s.log.Info("aadl demande created", zap.String("id", demande.ID.Hex()))
	return demande, nil
}

func (s *aadlService) List(ctx context.Context) ([]entities.AadlDemande, error) {
	demandes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierrors.ErrDatabase(err)
	}
	return demandes, nil
}

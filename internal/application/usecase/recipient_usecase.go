package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// RecipientUseCase destinatarios del usuario autenticado.
type RecipientUseCase struct {
	repo   repository.RecipientRepository
	policy permission.ObjectPolicy
}

// NewRecipientUseCase construye el caso de uso.
func NewRecipientUseCase(repo repository.RecipientRepository) *RecipientUseCase {
	return &RecipientUseCase{repo: repo, policy: permission.OwnerOrAdmin{}}
}

// Create asigna userId desde el principal.
func (uc *RecipientUseCase) Create(ctx context.Context, p *permission.Principal, in dto.RecipientRequest) (*dto.RecipientResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	r, err := mapper.RecipientFromRequest(in)
	if err != nil {
		return nil, err
	}
	r.ID = uuid.New().String()
	r.UserID = p.UserID
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	out := mapper.RecipientToResponse(r)
	return &out, nil
}

// List devuelve los destinatarios propios (todos para staff).
func (uc *RecipientUseCase) List(ctx context.Context, p *permission.Principal) ([]dto.RecipientResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUser(ctx, ownerFilter(p))
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipientResponse, 0, len(list))
	for _, r := range list {
		items = append(items, mapper.RecipientToResponse(r))
	}
	return items, nil
}

func (uc *RecipientUseCase) GetByID(ctx context.Context, p *permission.Principal, id string) (*dto.RecipientResponse, error) {
	r, err := uc.load(ctx, p, permission.OpRead, id)
	if err != nil {
		return nil, err
	}
	out := mapper.RecipientToResponse(r)
	return &out, nil
}

// Update reemplaza los datos; el dueño no cambia.
func (uc *RecipientUseCase) Update(ctx context.Context, p *permission.Principal, id string, in dto.RecipientRequest) (*dto.RecipientResponse, error) {
	current, err := uc.load(ctx, p, permission.OpWrite, id)
	if err != nil {
		return nil, err
	}
	r, err := mapper.RecipientFromRequest(in)
	if err != nil {
		return nil, err
	}
	r.ID = current.ID
	r.UserID = current.UserID
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	out := mapper.RecipientToResponse(r)
	return &out, nil
}

func (uc *RecipientUseCase) Delete(ctx context.Context, p *permission.Principal, id string) error {
	if _, err := uc.load(ctx, p, permission.OpWrite, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *RecipientUseCase) load(ctx context.Context, p *permission.Principal, op permission.Operation, id string) (*entity.Recipient, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if err := authorizeObject(uc.policy, p, op, r); err != nil {
		return nil, err
	}
	return r, nil
}

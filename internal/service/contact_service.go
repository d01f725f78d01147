package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
)

// ContactService manages customer queries from the public contact form.
type ContactService interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	List(ctx context.Context) ([]dto.ContactResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (dto.ContactResponse, error)
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func mapContact(c model.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Whatsapp:  c.Whatsapp,
		QueryType: c.QueryType,
		Message:   c.Message,
		Status:    c.Status,
		Remark:    c.Remark,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *contactService) Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error) {
	c := &model.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		QueryType: req.QueryType,
		Message:   req.Message,
		Status:    model.ContactPending,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.ContactResponse{}, err
	}
	return mapContact(*c), nil
}

func (s *contactService) List(ctx context.Context) ([]dto.ContactResponse, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, mapContact(c))
	}
	return out, nil
}

func (s *contactService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (dto.ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactResponse{}, NotFound("Contact query not found")
		}
		return dto.ContactResponse{}, err
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Remark != nil {
		c.Remark = *req.Remark
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return dto.ContactResponse{}, err
	}
	return mapContact(*c), nil
}

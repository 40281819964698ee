package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"contactbook/internal/cache"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/metrics"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

const contactCacheTTL = 5 * time.Minute

// ContactService handles address-book operations.
type ContactService interface {
	GetOne(ctx context.Context, phoneNumber string) (*model.Contact, error)
	GetAll(ctx context.Context) ([]model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, id uint, patch model.ContactPatch) (*model.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo  repository.ContactRepository
	cache *cache.Client
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository, cache *cache.Client) ContactService {
	return &contactService{repo: repo, cache: cache}
}

func (s *contactService) cacheKey(phoneNumber string) string {
	return "contact:phone:" + phoneNumber
}

// GetOne retrieves a contact by phone number with caching.
func (s *contactService) GetOne(ctx context.Context, phoneNumber string) (*model.Contact, error) {
	var cached model.Contact
	if s.cache.GetJSON(ctx, s.cacheKey(phoneNumber), &cached) {
		return &cached, nil
	}

	contact, err := s.repo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(phoneNumber), contact, contactCacheTTL)
	return contact, nil
}

func (s *contactService) GetAll(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Create rejects a saved phone number before writing. Like user creation the
// check is advisory and not atomic with the insert.
func (s *contactService) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	if err := s.ensurePhoneFree(ctx, contact.PhoneNumber, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateContact
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("contact").Inc()
	return contact, nil
}

// Update merges patch into an existing contact.
func (s *contactService) Update(ctx context.Context, id uint, patch model.ContactPatch) (*model.Contact, error) {
	contact, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPhone := contact.PhoneNumber
	if patch.PhoneNumber != "" && patch.PhoneNumber != oldPhone {
		if err := s.ensurePhoneFree(ctx, patch.PhoneNumber, id); err != nil {
			return nil, err
		}
	}

	patch.Apply(contact)
	if err := s.repo.Update(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateContact
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(oldPhone), s.cacheKey(contact.PhoneNumber))
	return contact, nil
}

// Delete removes an existing contact.
func (s *contactService) Delete(ctx context.Context, id uint) error {
	contact, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(contact.PhoneNumber))
	if !deleted {
		return apperrors.ErrContactNotFound
	}
	return nil
}

func (s *contactService) find(ctx context.Context, id uint) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return contact, nil
}

// ensurePhoneFree fails when phoneNumber belongs to a contact other than self.
func (s *contactService) ensurePhoneFree(ctx context.Context, phoneNumber string, self uint) error {
	existing, err := s.repo.FindByPhone(ctx, phoneNumber)
	switch {
	case err == nil && existing != nil && existing.ID != self:
		return apperrors.ErrDuplicateContact
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("check contact existence: %w", err)
	}
	return nil
}

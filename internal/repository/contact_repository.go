package repository

import (
	"context"

	"gorm.io/gorm"

	"contactbook/internal/model"
)

// ContactRepository defines contact persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// FindByID finds a contact by ID.
func (r *contactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindByPhone finds a contact by its exact phone number.
func (r *contactRepository) FindByPhone(ctx context.Context, phoneNumber string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns every contact, newest first.
func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update saves all fields of an existing contact.
func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// Delete reports whether a row was removed.
func (r *contactRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Contact{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

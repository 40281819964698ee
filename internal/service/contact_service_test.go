package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
)

func TestContactService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockContactRepository)
		wantErr   error
	}{
		{
			name: "new phone number",
			setupMock: func(m *MockContactRepository) {
				m.On("FindByPhone", mock.Anything, "08012345678").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)
			},
		},
		{
			name: "phone number already saved",
			setupMock: func(m *MockContactRepository) {
				m.On("FindByPhone", mock.Anything, "08012345678").Return(&model.Contact{ID: 1, PhoneNumber: "08012345678"}, nil)
			},
			wantErr: apperrors.ErrDuplicateContact,
		},
		{
			name: "storage failure during pre-check",
			setupMock: func(m *MockContactRepository) {
				m.On("FindByPhone", mock.Anything, "08012345678").Return(nil, errors.New("timeout"))
			},
			wantErr: errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockContactRepository)
			tt.setupMock(repo)
			svc := NewContactService(repo, nil)

			in := &model.Contact{FirstName: "Ada", LastName: "L", PhoneNumber: "08012345678"}
			created, err := svc.Create(context.Background(), in)

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Same(t, in, created)
			case errors.Is(tt.wantErr, apperrors.ErrDuplicateContact):
				assert.ErrorIs(t, err, apperrors.ErrDuplicateContact)
				assert.Equal(t, "Phone number is already saved", err.Error())
			default:
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Equal(t, 500, apperrors.FromError(err).Status)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestContactService_GetOne(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("FindByPhone", mock.Anything, "08012345678").Return(&model.Contact{ID: 1, PhoneNumber: "08012345678"}, nil)
	repo.On("FindByPhone", mock.Anything, "08000000000").Return(nil, gorm.ErrRecordNotFound)
	svc := NewContactService(repo, nil)

	c, err := svc.GetOne(context.Background(), "08012345678")
	require.NoError(t, err)
	assert.Equal(t, uint(1), c.ID)

	_, err = svc.GetOne(context.Background(), "08000000000")
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestContactService_Update(t *testing.T) {
	existing := func() *model.Contact {
		return &model.Contact{ID: 1, FirstName: "Ada", LastName: "L", PhoneNumber: "08012345678"}
	}

	t.Run("merges fields", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		c, err := NewContactService(repo, nil).Update(context.Background(), 1, model.ContactPatch{LastName: "Lovelace"})

		require.NoError(t, err)
		assert.Equal(t, "Ada", c.FirstName)
		assert.Equal(t, "Lovelace", c.LastName)
		repo.AssertExpectations(t)
	})

	t.Run("missing contact", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewContactService(repo, nil).Update(context.Background(), 5, model.ContactPatch{FirstName: "X"})

		assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("phone taken by another contact", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(existing(), nil)
		repo.On("FindByPhone", mock.Anything, "08099999999").Return(&model.Contact{ID: 2, PhoneNumber: "08099999999"}, nil)

		_, err := NewContactService(repo, nil).Update(context.Background(), 1, model.ContactPatch{PhoneNumber: "08099999999"})

		assert.ErrorIs(t, err, apperrors.ErrDuplicateContact)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestContactService_Delete(t *testing.T) {
	t.Run("existing contact", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Contact{ID: 1, PhoneNumber: "08012345678"}, nil)
		repo.On("Delete", mock.Anything, uint(1)).Return(true, nil)

		assert.NoError(t, NewContactService(repo, nil).Delete(context.Background(), 1))
		repo.AssertExpectations(t)
	})

	t.Run("missing contact", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		err := NewContactService(repo, nil).Delete(context.Background(), 3)
		assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
	})
}

func TestContactService_GetAll(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("List", mock.Anything).Return([]model.Contact{{ID: 2}, {ID: 1}}, nil)

	contacts, err := NewContactService(repo, nil).GetAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"contactbook/internal/config"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/service"
)

// SeedContact is the import format of a contact.
type SeedContact struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

var sampleContacts = []SeedContact{
	{FirstName: "Chinua", LastName: "Achebe", PhoneNumber: "08030000001"},
	{FirstName: "Wole", LastName: "Soyinka", PhoneNumber: "08030000002"},
	{FirstName: "Buchi", LastName: "Emecheta", PhoneNumber: "0803 000 0003"},
}

type seedResult struct {
	Created  int
	Existing int
	Invalid  int
}

// seedAdmin creates the admin principal unless its email is already registered.
func seedAdmin(ctx context.Context, users service.UserService, cfg config.SeedConfig) (bool, error) {
	_, err := users.GetByEmail(ctx, cfg.AdminEmail)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return false, err
	}

	_, err = users.Create(ctx, service.NewUser{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("create admin %s: %w", cfg.AdminEmail, err)
	}
	return true, nil
}

// seedContacts creates every valid contact whose phone number is not yet saved.
func seedContacts(ctx context.Context, contacts service.ContactService, list []SeedContact) (seedResult, error) {
	var res seedResult
	for _, item := range list {
		if item.FirstName == "" || item.LastName == "" || !model.ValidPhone(item.PhoneNumber) {
			res.Invalid++
			continue
		}

		_, err := contacts.Create(ctx, &model.Contact{
			FirstName:   item.FirstName,
			LastName:    item.LastName,
			PhoneNumber: model.NormalizePhone(item.PhoneNumber),
		})
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, apperrors.ErrDuplicateContact):
			res.Existing++
		default:
			return res, fmt.Errorf("create contact %s: %w", item.PhoneNumber, err)
		}
	}
	return res, nil
}

// fetchContacts downloads a JSON array of contacts.
func fetchContacts(ctx context.Context, url string) ([]SeedContact, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contacts source returned status code: %d", resp.StatusCode)
	}

	var list []SeedContact
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return list, nil
}

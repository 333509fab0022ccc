package account

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"prompt-designer/auth"
)

// Directory owns the account collection and enforces the template-store
// invariants: per-account id uniqueness, the MaxTemplates cap, and
// case-insensitive email uniqueness. Every mutation is a read-modify-write
// cycle over the backing store, serialized by the directory mutex, and is
// only visible once the store write succeeds.
type Directory struct {
	mu    sync.Mutex
	store Store
	seed  []Template
	log   zerolog.Logger
}

func NewDirectory(store Store, log zerolog.Logger) *Directory {
	return &Directory{store: store, seed: DefaultTemplates(), log: log}
}

// Register creates a new account seeded with the default template catalog.
// Email uniqueness is checked case-insensitively.
func (d *Directory) Register(email, password string) (Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.store.ReadAll()
	if err != nil {
		return Account{}, err
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			return Account{}, ErrEmailTaken
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Account{}, err
	}
	acct := Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Templates:    append([]Template(nil), d.seed...),
	}
	if err := d.store.WriteAll(append(accounts, acct)); err != nil {
		return Account{}, err
	}

	d.log.Info().Str("account", acct.ID).Msg("account registered")
	return acct, nil
}

// Authenticate verifies email and password. The same error is returned for
// an unknown email and a wrong password.
func (d *Directory) Authenticate(email, password string) (Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.store.ReadAll()
	if err != nil {
		return Account{}, err
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			if auth.CheckPassword(a.PasswordHash, password) {
				return a, nil
			}
			return Account{}, ErrInvalidCredentials
		}
	}
	return Account{}, ErrInvalidCredentials
}

// ListTemplates returns a copy of the account's template collection.
func (d *Directory) ListTemplates(accountID string) ([]Template, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	acct, err := d.find(accountID)
	if err != nil {
		return nil, err
	}
	return append([]Template(nil), acct.Templates...), nil
}

// GetTemplate returns a single template by id.
func (d *Directory) GetTemplate(accountID, templateID string) (Template, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	acct, err := d.find(accountID)
	if err != nil {
		return Template{}, err
	}
	for _, t := range acct.Templates {
		if t.ID == templateID {
			return t, nil
		}
	}
	return Template{}, ErrTemplateNotFound
}

// CreateTemplate appends a template to the account's collection. It fails
// without persisting anything when a required field is empty, the cap is
// reached, or the id is already taken.
func (d *Directory) CreateTemplate(accountID string, t Template) (Template, error) {
	if t.ID == "" || t.Name == "" || t.Body == "" {
		return Template{}, ErrInvalidTemplate
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.store.ReadAll()
	if err != nil {
		return Template{}, err
	}
	idx := indexByID(accounts, accountID)
	if idx < 0 {
		return Template{}, ErrAccountNotFound
	}
	acct := &accounts[idx]

	if len(acct.Templates) >= MaxTemplates {
		return Template{}, ErrTemplateLimit
	}
	for _, existing := range acct.Templates {
		if existing.ID == t.ID {
			return Template{}, ErrDuplicateTemplate
		}
	}

	acct.Templates = append(acct.Templates, t)
	if err := d.store.WriteAll(accounts); err != nil {
		return Template{}, err
	}

	d.log.Info().Str("account", accountID).Str("template", t.ID).Msg("template created")
	return t, nil
}

// UpdateTemplate applies the non-nil fields of patch to an existing
// template. The id itself never changes.
func (d *Directory) UpdateTemplate(accountID, templateID string, patch TemplatePatch) (Template, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.store.ReadAll()
	if err != nil {
		return Template{}, err
	}
	idx := indexByID(accounts, accountID)
	if idx < 0 {
		return Template{}, ErrAccountNotFound
	}
	acct := &accounts[idx]

	for i := range acct.Templates {
		if acct.Templates[i].ID != templateID {
			continue
		}
		if patch.Name != nil {
			acct.Templates[i].Name = *patch.Name
		}
		if patch.Description != nil {
			acct.Templates[i].Description = *patch.Description
		}
		if patch.Body != nil {
			acct.Templates[i].Body = *patch.Body
		}
		if err := d.store.WriteAll(accounts); err != nil {
			return Template{}, err
		}
		return acct.Templates[i], nil
	}
	return Template{}, ErrTemplateNotFound
}

// find looks up an account in a fresh store snapshot. Caller must hold d.mu.
func (d *Directory) find(accountID string) (Account, error) {
	accounts, err := d.store.ReadAll()
	if err != nil {
		return Account{}, err
	}
	idx := indexByID(accounts, accountID)
	if idx < 0 {
		return Account{}, ErrAccountNotFound
	}
	return accounts[idx], nil
}

func indexByID(accounts []Account, id string) int {
	for i, a := range accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

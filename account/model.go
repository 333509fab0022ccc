package account

import "errors"

// MaxTemplates caps how many templates a single account may hold.
const MaxTemplates = 4

// Template is a reusable prompt containing {{placeholder}} tokens. The body
// is serialized under the "template" key to stay compatible with the stored
// JSON format. IDs are immutable after creation and unique per account.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Body        string `json:"template"`
}

// Account owns a private, ordered template collection.
type Account struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"passwordHash"`
	Templates    []Template `json:"templates"`
}

// TemplatePatch carries a partial template update. Nil fields keep the
// stored value; non-nil fields are applied verbatim, empty strings included.
type TemplatePatch struct {
	Name        *string
	Description *string
	Body        *string
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrDuplicateTemplate  = errors.New("template with this id already exists")
	ErrTemplateLimit      = errors.New("template limit reached")
	ErrInvalidTemplate    = errors.New("id, name, and template are required")
)

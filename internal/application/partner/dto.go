package partner

import (
	"time"

	"github.com/insurance/backend/internal/domain/partner"
	"github.com/insurance/backend/internal/domain/shared"
)

// CreateContactRequest creates a customer or an agent; both carry the same contact fields
type CreateContactRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"max=200"`
	Phone string `json:"phone" binding:"max=50"`
}

// UpdateContactRequest carries a partial customer or agent update
type UpdateContactRequest struct {
	Name  shared.Optional[string] `json:"name"`
	Email shared.Optional[string] `json:"email"`
	Phone shared.Optional[string] `json:"phone"`
}

// ContactResponse represents a customer or an agent in API responses
type ContactResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response
func ToCustomerResponse(c *partner.Customer) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToAgentResponse converts a domain agent to a response
func ToAgentResponse(a *partner.Agent) ContactResponse {
	return ContactResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// applyContact writes a partial update into contact fields
func applyContact(req UpdateContactRequest, setName func(string) error, email, phone *string) error {
	if err := req.Name.ApplyFunc("name", setName); err != nil {
		return err
	}
	req.Email.ApplyOrZero(email)
	req.Phone.ApplyOrZero(phone)
	return nil
}

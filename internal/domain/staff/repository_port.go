package staff

import "context"

// StaffPatch is a partial update; nil fields are left untouched.
type StaffPatch struct {
	Name         *string `json:"name,omitempty"`
	Role         *string `json:"role,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	PhotoURL     *string `json:"photo_url,omitempty"`
	Email        *string `json:"email,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// Repository is the staff side of the remote record store.
type Repository interface {
	// List returns all staff ordered by display_order ascending; ties keep
	// storage order.
	List(ctx context.Context) ([]Staff, error)

	Create(ctx context.Context, s Staff) (Staff, error)
	Update(ctx context.Context, id string, patch StaffPatch) (Staff, error)
}

package usecase

import (
	"context"

	staffdom "manchy/internal/domain/staff"
)

// StaffUsecase serves the "Our Team" page and admin staff management.
type StaffUsecase struct {
	staff staffdom.Repository
}

func NewStaffUsecase(staff staffdom.Repository) *StaffUsecase {
	return &StaffUsecase{staff: staff}
}

// List returns all staff ordered by display_order ascending.
func (uc *StaffUsecase) List(ctx context.Context) ([]staffdom.Staff, error) {
	return uc.staff.List(ctx)
}

func (uc *StaffUsecase) Create(ctx context.Context, s staffdom.Staff) (staffdom.Staff, error) {
	return uc.staff.Create(ctx, s)
}

func (uc *StaffUsecase) Update(ctx context.Context, id string, patch staffdom.StaffPatch) (staffdom.Staff, error) {
	return uc.staff.Update(ctx, id, patch)
}

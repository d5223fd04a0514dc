package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fscommon "manchy/internal/adapters/out/firestore/common"
	staffdom "manchy/internal/domain/staff"
)

// StaffRepositoryFS implements staff.Repository using Firestore.
type StaffRepositoryFS struct {
	Client *firestore.Client
}

func NewStaffRepositoryFS(client *firestore.Client) *StaffRepositoryFS {
	return &StaffRepositoryFS{Client: client}
}

func (r *StaffRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("staff")
}

// Compile-time check
var _ staffdom.Repository = (*StaffRepositoryFS)(nil)

// List returns all staff ordered by display_order ascending. Firestore's
// OrderBy is stable for equal keys, which preserves storage order for ties.
func (r *StaffRepositoryFS) List(ctx context.Context) ([]staffdom.Staff, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	q := r.col().OrderBy("displayOrder", firestore.Asc)

	it := q.Documents(ctx)
	defer it.Stop()

	members := []staffdom.Staff{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		s, err := docToStaff(doc)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}
	return members, nil
}

func (r *StaffRepositoryFS) Create(ctx context.Context, s staffdom.Staff) (staffdom.Staff, error) {
	if r.Client == nil {
		return staffdom.Staff{}, errors.New("firestore client is nil")
	}

	var docRef *firestore.DocumentRef
	if strings.TrimSpace(s.ID) == "" {
		docRef = r.col().NewDoc()
		s.ID = docRef.ID
	} else {
		s.ID = strings.TrimSpace(s.ID)
		docRef = r.col().Doc(s.ID)
	}

	if _, err := docRef.Create(ctx, staffToDocData(s)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return staffdom.Staff{}, staffdom.ErrConflict
		}
		return staffdom.Staff{}, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		return staffdom.Staff{}, err
	}
	return docToStaff(snap)
}

func (r *StaffRepositoryFS) Update(ctx context.Context, id string, patch staffdom.StaffPatch) (staffdom.Staff, error) {
	if r.Client == nil {
		return staffdom.Staff{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return staffdom.Staff{}, staffdom.ErrNotFound
	}

	docRef := r.col().Doc(id)

	var updates []firestore.Update
	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: strings.TrimSpace(*patch.Name)})
	}
	if patch.Role != nil {
		updates = append(updates, firestore.Update{Path: "role", Value: strings.TrimSpace(*patch.Role)})
	}
	if patch.Bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: strings.TrimSpace(*patch.Bio)})
	}
	if patch.PhotoURL != nil {
		updates = append(updates, firestore.Update{Path: "photoUrl", Value: strings.TrimSpace(*patch.PhotoURL)})
	}
	if patch.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: strings.TrimSpace(*patch.Email)})
	}
	if patch.DisplayOrder != nil {
		updates = append(updates, firestore.Update{Path: "displayOrder", Value: *patch.DisplayOrder})
	}

	if len(updates) == 0 {
		return r.getByID(ctx, id)
	}

	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return staffdom.Staff{}, staffdom.ErrNotFound
		}
		return staffdom.Staff{}, err
	}

	return r.getByID(ctx, id)
}

func (r *StaffRepositoryFS) getByID(ctx context.Context, id string) (staffdom.Staff, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return staffdom.Staff{}, staffdom.ErrNotFound
		}
		return staffdom.Staff{}, err
	}
	return docToStaff(snap)
}

// =======================
// Mapping Helpers
// =======================

func staffToDocData(s staffdom.Staff) map[string]any {
	return map[string]any{
		"id":           strings.TrimSpace(s.ID),
		"name":         strings.TrimSpace(s.Name),
		"role":         strings.TrimSpace(s.Role),
		"bio":          strings.TrimSpace(s.Bio),
		"photoUrl":     strings.TrimSpace(s.PhotoURL),
		"email":        strings.TrimSpace(s.Email),
		"displayOrder": s.DisplayOrder,
	}
}

func docToStaff(doc *firestore.DocumentSnapshot) (staffdom.Staff, error) {
	data := fscommon.Doc(doc.Data())
	if data == nil {
		return staffdom.Staff{}, fmt.Errorf("empty staff document: %s", doc.Ref.ID)
	}

	var s staffdom.Staff
	s.ID = data.Str("id")
	if s.ID == "" {
		s.ID = doc.Ref.ID
	}
	s.Name = data.Str("name")
	s.Role = data.Str("role")
	s.Bio = data.Str("bio")
	s.PhotoURL = data.Str("photoUrl")
	s.Email = data.Str("email")
	s.DisplayOrder = data.Int("displayOrder")
	return s, nil
}

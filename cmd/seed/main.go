package main

import (
	"context"
	"log"
	"time"

	fsrepo "manchy/internal/adapters/out/firestore"
	cardom "manchy/internal/domain/car"
	staffdom "manchy/internal/domain/staff"
	appcfg "manchy/internal/infra/config"
	firestoreinfra "manchy/internal/infra/firestore"
)

// Seeds the cars and staff collections with starter records for a fresh
// environment. Existing documents with the same IDs are left untouched
// (Create maps AlreadyExists to a conflict, which is logged and skipped).
func main() {
	ctx := context.Background()
	cfg := appcfg.Load()

	fs, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		log.Fatalf("[seed] firestore init failed: %v", err)
	}
	defer fs.Close()

	seedCars(ctx, fsrepo.NewCarRepositoryFS(fs.Client))
	seedStaff(ctx, fsrepo.NewStaffRepositoryFS(fs.Client))

	log.Printf("[seed] done")
}

func seedCars(ctx context.Context, repo *fsrepo.CarRepositoryFS) {
	now := time.Now().UTC()

	type spec struct {
		id           string
		brand, model string
		year         int
		mileage      int
		transmission cardom.Transmission
		fuel         cardom.FuelType
		color        string
		condition    cardom.Condition
		price        int64
		featured     bool
		description  string
	}

	specs := []spec{
		{
			id: "camry-2015", brand: "Toyota", model: "Camry", year: 2015,
			mileage: 82000, transmission: cardom.TransmissionAutomatic,
			fuel: cardom.FuelPetrol, color: "Silver",
			condition: cardom.ConditionUsed, price: 8_500_000, featured: true,
			description: "Clean foreign used Camry, accident free.",
		},
		{
			id: "corolla-2018", brand: "Toyota", model: "Corolla", year: 2018,
			mileage: 45000, transmission: cardom.TransmissionAutomatic,
			fuel: cardom.FuelPetrol, color: "White",
			condition: cardom.ConditionUsed, price: 11_200_000, featured: true,
			description: "Low mileage, full service history.",
		},
		{
			id: "accord-2016", brand: "Honda", model: "Accord", year: 2016,
			mileage: 98000, transmission: cardom.TransmissionAutomatic,
			fuel: cardom.FuelPetrol, color: "Black",
			condition: cardom.ConditionNigerianUsed, price: 7_800_000,
			description: "First body, buy and drive.",
		},
		{
			id: "rav4-2020", brand: "Toyota", model: "RAV4", year: 2020,
			mileage: 21000, transmission: cardom.TransmissionAutomatic,
			fuel: cardom.FuelHybrid, color: "Blue",
			condition: cardom.ConditionNew, price: 28_500_000, featured: true,
			description: "Brand new hybrid RAV4, factory warranty.",
		},
		{
			id: "elantra-2017", brand: "Hyundai", model: "Elantra", year: 2017,
			mileage: 60000, transmission: cardom.TransmissionManual,
			fuel: cardom.FuelPetrol, color: "Red",
			condition: cardom.ConditionNigerianUsed, price: 5_900_000,
			description: "Economical daily driver.",
		},
	}

	for _, s := range specs {
		c, err := cardom.New(s.id, s.brand, s.model, s.year, s.price, s.condition, cardom.StatusAvailable, now)
		if err != nil {
			log.Printf("[seed] car %s invalid: %v", s.id, err)
			continue
		}
		c.Mileage = s.mileage
		c.Transmission = s.transmission
		c.FuelType = s.fuel
		c.Color = s.color
		c.Description = s.description
		c.IsFeatured = s.featured

		if _, err := repo.Create(ctx, c); err != nil {
			log.Printf("[seed] car %s skipped: %v", s.id, err)
			continue
		}
		log.Printf("[seed] car %s created", s.id)
	}
}

func seedStaff(ctx context.Context, repo *fsrepo.StaffRepositoryFS) {
	type spec struct {
		id, name, role, email string
		order                 int
		bio                   string
	}

	specs := []spec{
		{
			id: "manager", name: "Emmanuel Obi", role: "General Manager",
			email: "manchyautomobile@gmail.com", order: 1,
			bio: "Oversees sales and sourcing.",
		},
		{
			id: "sales-lead", name: "Adaeze Nwosu", role: "Sales Lead",
			email: "sales@manchyautomobile.com", order: 2,
			bio: "Handles customer inquiries and test drives.",
		},
		{
			id: "inspector", name: "Tunde Bakare", role: "Vehicle Inspector",
			email: "inspection@manchyautomobile.com", order: 3,
			bio: "Runs pre-sale and pre-purchase inspections.",
		},
	}

	for _, s := range specs {
		m, err := staffdom.New(s.id, s.name, s.role, s.email, s.order)
		if err != nil {
			log.Printf("[seed] staff %s invalid: %v", s.id, err)
			continue
		}
		m.Bio = s.bio

		if _, err := repo.Create(ctx, m); err != nil {
			log.Printf("[seed] staff %s skipped: %v", s.id, err)
			continue
		}
		log.Printf("[seed] staff %s created", s.id)
	}
}

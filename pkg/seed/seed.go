package seed

import (
	"log"

	"gorm.io/datatypes"

	"primegate_backend/internal/model"
	"primegate_backend/internal/storage"
)

func intPtr(v int) *int { return &v }

// SeedCatalogs fills the services and partners catalogs on first start.
// Both are effectively static content managed through the database.
func SeedCatalogs(store storage.Storage) {
	seedServices(store)
	seedPartners(store)
}

func seedServices(store storage.Storage) {
	existing, err := store.GetServices()
	if err != nil {
		log.Printf("Error checking services catalog: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	services := []model.Service{
		{
			Title:       "Buy a Property",
			Description: "Guided purchases across Dubai's established communities and off-plan launches.",
			Icon:        "home",
			Features:    datatypes.NewJSONSlice([]string{"Market analysis", "Developer negotiations", "Handover support"}),
			Category:    "sales",
		},
		{
			Title:       "Sell a Property",
			Description: "Valuation, marketing and closing handled end to end by our listing specialists.",
			Icon:        "trending-up",
			Features:    datatypes.NewJSONSlice([]string{"Free valuation", "Professional photography", "Listing syndication"}),
			Category:    "sales",
		},
		{
			Title:       "Property Management",
			Description: "Tenant sourcing, rent collection and maintenance for hands-off landlords.",
			Icon:        "building",
			Features:    datatypes.NewJSONSlice([]string{"Tenant screening", "Rent collection", "Maintenance coordination"}),
			Category:    "management",
		},
		{
			Title:       "Investment Advisory",
			Description: "Portfolio strategy for investors targeting rental yield or capital growth.",
			Icon:        "bar-chart",
			Features:    datatypes.NewJSONSlice([]string{"Yield projections", "Off-plan sourcing", "Exit planning"}),
			Category:    "advisory",
		},
	}

	for i := range services {
		if err := store.CreateService(&services[i]); err != nil {
			log.Printf("Error seeding service %q: %v", services[i].Title, err)
		}
	}
	log.Println("Services catalog seeded successfully!")
}

func seedPartners(store storage.Storage) {
	existing, err := store.GetPartners()
	if err != nil {
		log.Printf("Error checking partners catalog: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	partners := []model.Partner{
		{
			Name:            "Emaar",
			Logo:            "https://cdn.primegateproperties.com/partners/emaar.png",
			Description:     "Master developer behind Downtown Dubai and Dubai Hills Estate.",
			Established:     intPtr(1997),
			TotalProperties: intPtr(84),
		},
		{
			Name:            "DAMAC",
			Logo:            "https://cdn.primegateproperties.com/partners/damac.png",
			Description:     "Luxury residential and leisure developments across the region.",
			Established:     intPtr(2002),
			TotalProperties: intPtr(61),
		},
		{
			Name:            "Sobha Realty",
			Logo:            "https://cdn.primegateproperties.com/partners/sobha.png",
			Description:     "Premium communities built with in-house design and construction.",
			Established:     intPtr(1976),
			TotalProperties: intPtr(37),
		},
		{
			Name:            "Nakheel",
			Logo:            "https://cdn.primegateproperties.com/partners/nakheel.png",
			Description:     "Waterfront icons including Palm Jumeirah and Dubai Islands.",
			Established:     intPtr(2000),
			TotalProperties: intPtr(45),
		},
	}

	for i := range partners {
		if err := store.CreatePartner(&partners[i]); err != nil {
			log.Printf("Error seeding partner %q: %v", partners[i].Name, err)
		}
	}
	log.Println("Partners catalog seeded successfully!")
}

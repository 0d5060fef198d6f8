package models

import "time"

// Seed data shown on first run, before the user has created anything. Each
// call returns fresh slices so callers can mutate without aliasing.

func intPtr(v int) *int { return &v }

func seedDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func SampleLeads() []Lead {
	return []Lead{
		{
			ID:                "1",
			FirstName:         "John",
			LastName:          "Smith",
			Email:             "john.smith@email.com",
			Phone:             "555-0101",
			DateOfBirth:       "1985-03-15",
			PropertyType:      TypeResidential,
			Requirement:       RequirementBuy,
			Budget:            "$500,000",
			PreferredLocation: "Downtown",
			Bedrooms:          intPtr(3),
			Bathrooms:         intPtr(2),
			SquareFootage:     "2000",
			Status:            LeadInProgress,
			Source:            SourceWebsite,
			Notes:             "Looking for a family home",
			Address:           "123 Main St",
			City:              "New York",
			State:             "NY",
			ZipCode:           "10001",
			CreatedAt:         seedDate(2024, 1, 15),
			UpdatedAt:         seedDate(2024, 1, 20),
		},
		{
			ID:                "2",
			FirstName:         "Sarah",
			LastName:          "Johnson",
			Email:             "sarah.j@email.com",
			Phone:             "555-0102",
			DateOfBirth:       "1990-07-22",
			PropertyType:      TypeCommercial,
			Requirement:       RequirementLease,
			Budget:            "$10,000/month",
			PreferredLocation: "Business District",
			Status:            LeadNotStarted,
			Source:            SourceReferral,
			Notes:             "Office space for startup",
			Address:           "456 Oak Ave",
			City:              "Los Angeles",
			State:             "CA",
			ZipCode:           "90001",
			CreatedAt:         seedDate(2024, 1, 18),
			UpdatedAt:         seedDate(2024, 1, 18),
		},
		{
			ID:                "3",
			FirstName:         "Michael",
			LastName:          "Davis",
			Email:             "mdavis@email.com",
			Phone:             "555-0103",
			DateOfBirth:       "1978-11-08",
			PropertyType:      TypeResidential,
			Requirement:       RequirementSell,
			Budget:            "$750,000",
			PreferredLocation: "Suburbs",
			Bedrooms:          intPtr(4),
			Bathrooms:         intPtr(3),
			SquareFootage:     "3500",
			Status:            LeadComplete,
			Source:            SourceAdvertisement,
			Notes:             "Property sold successfully",
			Address:           "789 Pine Rd",
			City:              "Chicago",
			State:             "IL",
			ZipCode:           "60601",
			CreatedAt:         seedDate(2024, 1, 10),
			UpdatedAt:         seedDate(2024, 1, 25),
		},
		{
			ID:                "4",
			FirstName:         "Emily",
			LastName:          "Brown",
			Email:             "emily.b@email.com",
			Phone:             "555-0104",
			DateOfBirth:       "1995-02-28",
			PropertyType:      TypeResidential,
			Requirement:       RequirementRent,
			Budget:            "$2,500/month",
			PreferredLocation: "Near University",
			Bedrooms:          intPtr(2),
			Bathrooms:         intPtr(1),
			Status:            LeadInProgress,
			Source:            SourceSocialMedia,
			Notes:             "Graduate student looking for apartment",
			Address:           "321 College Blvd",
			City:              "Boston",
			State:             "MA",
			ZipCode:           "02101",
			CreatedAt:         seedDate(2024, 1, 22),
			UpdatedAt:         seedDate(2024, 1, 23),
		},
		{
			ID:                "5",
			FirstName:         "Robert",
			LastName:          "Wilson",
			Email:             "r.wilson@email.com",
			Phone:             "555-0105",
			DateOfBirth:       "1970-06-12",
			PropertyType:      TypeLand,
			Requirement:       RequirementBuy,
			Budget:            "$200,000",
			PreferredLocation: "Rural Area",
			SquareFootage:     "50000",
			Status:            LeadNotStarted,
			Source:            SourceOther,
			Notes:             "Looking for farmland",
			Address:           "654 Country Ln",
			City:              "Austin",
			State:             "TX",
			ZipCode:           "78701",
			CreatedAt:         seedDate(2024, 1, 24),
			UpdatedAt:         seedDate(2024, 1, 24),
		},
	}
}

func SampleProperties() []Property {
	return []Property{
		{
			ID:            "1",
			Title:         "Modern Downtown Apartment",
			Description:   "Stunning 2-bedroom apartment with city views, modern amenities, and walking distance to restaurants and entertainment.",
			PropertyType:  TypeResidential,
			ListingType:   ListingRent,
			Price:         2500,
			PriceUnit:     PriceMonthly,
			Address:       "123 Main Street, Apt 15B",
			City:          "New York",
			State:         "NY",
			ZipCode:       "10001",
			Bedrooms:      intPtr(2),
			Bathrooms:     intPtr(2),
			SquareFootage: 1200,
			YearBuilt:     intPtr(2020),
			Amenities:     []string{"Gym", "Pool", "Parking", "Doorman", "Laundry"},
			Photos:        []string{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800"},
			Status:        PropertyAvailable,
			Availability:  []AvailabilityEntry{},
			CreatedAt:     seedDate(2024, 1, 10),
			UpdatedAt:     seedDate(2024, 1, 15),
		},
		{
			ID:            "2",
			Title:         "Luxury Family Home",
			Description:   "Beautiful 4-bedroom family home with a large backyard, updated kitchen, and excellent school district.",
			PropertyType:  TypeResidential,
			ListingType:   ListingSale,
			Price:         750000,
			PriceUnit:     PriceTotal,
			Address:       "456 Oak Avenue",
			City:          "Los Angeles",
			State:         "CA",
			ZipCode:       "90001",
			Bedrooms:      intPtr(4),
			Bathrooms:     intPtr(3),
			SquareFootage: 3200,
			YearBuilt:     intPtr(2015),
			Amenities:     []string{"Garage", "Backyard", "Central AC", "Fireplace"},
			Photos:        []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800"},
			Status:        PropertyAvailable,
			Availability:  []AvailabilityEntry{},
			CreatedAt:     seedDate(2024, 1, 12),
			UpdatedAt:     seedDate(2024, 1, 18),
		},
		{
			ID:            "3",
			Title:         "Prime Commercial Space",
			Description:   "High-visibility retail space in a busy commercial district. Perfect for restaurants, retail, or office use.",
			PropertyType:  TypeCommercial,
			ListingType:   ListingLease,
			Price:         5000,
			PriceUnit:     PriceMonthly,
			Address:       "789 Business Blvd",
			City:          "Chicago",
			State:         "IL",
			ZipCode:       "60601",
			SquareFootage: 2500,
			YearBuilt:     intPtr(2018),
			Amenities:     []string{"Street Parking", "High Ceilings", "Large Windows"},
			Photos:        []string{"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800"},
			Status:        PropertyUnderContract,
			Availability:  []AvailabilityEntry{},
			CreatedAt:     seedDate(2024, 1, 8),
			UpdatedAt:     seedDate(2024, 1, 20),
		},
	}
}

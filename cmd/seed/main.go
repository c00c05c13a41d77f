package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"kejastays/internal/database"
	"kejastays/internal/domain"
	"kejastays/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "stays.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}

	log.Info().Msg("running migrations")
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := repository.EnsureBookingOverlapConstraint(db); err != nil {
		log.Fatal().Err(err).Msg("overlap constraint failed")
	}

	// Cleanup old data (children first to keep foreign keys happy)
	log.Info().Msg("cleaning old data")
	db.Exec("DELETE FROM blocked_dates")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM property_images")
	db.Exec("DELETE FROM contact_messages")
	db.Exec("DELETE FROM properties")

	ctx := context.Background()
	properties := repository.NewPropertyRepository(db)
	blocks := repository.NewBlockedDateRepository(db)

	log.Info().Msg("creating properties")

	seed := []struct {
		property domain.Property
		gallery  []domain.PropertyImage
		blocked  []domain.BlockedDate
	}{
		{
			property: domain.Property{
				Name:          "Ocean Paradise Villa",
				Description:   "Luxury beachfront villa with infinity pool, private beach access and a resident chef on the white sands of Diani.",
				Location:      "Diani Beach, Kwale",
				PricePerNight: 25000,
				MaxGuests:     8,
				Bedrooms:      4,
				ImageURL:      "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?auto=format&fit=crop&w=800&q=80",
				Amenities:     []string{"Private Beach", "Infinity Pool", "Ocean View", "Wi-Fi", "AC", "Private Chef"},
				Featured:      true,
				Category:      "villas",
			},
			gallery: []domain.PropertyImage{
				{Category: "Bedroom", ImageURL: "https://images.unsplash.com/photo-1519710164239-da123dc03ef4?auto=format&fit=crop&w=400&q=80"},
				{Category: "Bedroom", ImageURL: "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=400&q=80"},
				{Category: "Pool", ImageURL: "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?auto=format&fit=crop&w=400&q=80"},
				{Category: "Beach", ImageURL: "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&w=400&q=80"},
			},
			blocked: []domain.BlockedDate{
				{StartDate: date(2025, 8, 8), EndDate: date(2025, 8, 11), Reason: domain.BlockManual},
			},
		},
		{
			property: domain.Property{
				Name:          "Kilifi Creek Villa",
				Description:   "Elegant villa overlooking Kilifi Creek with traditional Swahili architecture and modern luxury amenities.",
				Location:      "Kilifi, Coast Province",
				PricePerNight: 18000,
				MaxGuests:     6,
				Bedrooms:      3,
				ImageURL:      "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=800&q=80",
				Amenities:     []string{"Creek View", "Traditional Design", "Pool", "Wi-Fi", "Spacious Terrace", "Dhow Trips"},
				Featured:      true,
				Category:      "villas",
			},
			gallery: []domain.PropertyImage{
				{Category: "Living Room", ImageURL: "https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=400&q=80"},
				{Category: "Terrace", ImageURL: "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=400&q=80"},
			},
		},
		{
			property: domain.Property{
				Name:          "Westlands Executive Apartment",
				Description:   "Modern apartment in the heart of Westlands with skyline views, gym access and round-the-clock security.",
				Location:      "Westlands, Nairobi",
				PricePerNight: 8500,
				MaxGuests:     4,
				Bedrooms:      2,
				ImageURL:      "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=800&q=80",
				Amenities:     []string{"Wi-Fi", "Gym Access", "Parking", "City View", "Kitchen", "24/7 Security"},
				Category:      "apartments",
			},
			gallery: []domain.PropertyImage{
				{Category: "Bedroom", ImageURL: "https://images.unsplash.com/photo-1519710164239-da123dc03ef4?auto=format&fit=crop&w=400&q=80"},
				{Category: "Living Room", ImageURL: "https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=400&q=80"},
			},
		},
		{
			property: domain.Property{
				Name:          "Lavington Family House",
				Description:   "Spacious family house in quiet Lavington with a large garden, perfect for longer stays with children.",
				Location:      "Lavington, Nairobi",
				PricePerNight: 15000,
				MaxGuests:     7,
				Bedrooms:      4,
				ImageURL:      "https://images.unsplash.com/photo-1568605114967-8130f3a36994?auto=format&fit=crop&w=800&q=80",
				Amenities:     []string{"Large Garden", "Family Room", "Wi-Fi", "Kitchen", "Parking", "Security"},
				Category:      "houses",
			},
		},
		{
			property: domain.Property{
				Name:          "Naivasha Lakeside Cottage",
				Description:   "Cosy cottage on the shores of Lake Naivasha, a short drive from Hell's Gate and the flower farms.",
				Location:      "Naivasha, Nakuru",
				PricePerNight: 10000,
				MaxGuests:     5,
				Bedrooms:      2,
				ImageURL:      "https://images.unsplash.com/photo-1449158743715-0a90ebb6d2d8?auto=format&fit=crop&w=800&q=80",
				Amenities:     []string{"Lake View", "Fireplace", "Wi-Fi", "Boat Rides", "Game Watching"},
				Featured:      true,
				Category:      "naivasha",
			},
			gallery: []domain.PropertyImage{
				{Category: "Garden", ImageURL: "https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=400&q=80"},
			},
		},
	}

	for i := range seed {
		s := &seed[i]
		s.property.IsActive = true
		if err := properties.Create(ctx, &s.property); err != nil {
			log.Fatal().Err(err).Str("property", s.property.Name).Msg("seed property failed")
		}
		for _, img := range s.gallery {
			img.PropertyID = s.property.ID
			if err := properties.AddImage(ctx, &img); err != nil {
				log.Fatal().Err(err).Msg("seed image failed")
			}
		}
		for _, b := range s.blocked {
			b.PropertyID = s.property.ID
			if err := blocks.Create(ctx, &b); err != nil {
				log.Fatal().Err(err).Msg("seed blocked date failed")
			}
		}
	}

	log.Info().Int("properties", len(seed)).Msg("seed complete")
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

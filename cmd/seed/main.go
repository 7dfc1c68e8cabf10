package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/modules/booking"
	"travelbook/internal/modules/review"
	jwtsvc "travelbook/internal/pkg/jwt"
	"travelbook/internal/pkg/logger"
	"travelbook/internal/storage"
)

type demoService struct {
	id    string
	typ   domain.ServiceType
	name  string
	price float64
}

var services = []demoService{
	{"exc-reef", domain.ServiceExcursion, "Reef snorkelling", 65},
	{"exc-volcano", domain.ServiceExcursion, "Volcano sunrise hike", 90},
	{"acc-harbour", domain.ServiceAccommodation, "Harbour Inn", 140},
	{"acc-villa", domain.ServiceAccommodation, "Casa Azul villa", 310},
	{"din-trattoria", domain.ServiceDining, "Trattoria del Porto", 45},
}

var users = []domain.Identity{
	{ID: "demo-ana", Name: "Ana Ruiz", Email: "ana@example.com"},
	{ID: "demo-ben", Name: "Ben Okafor", Email: "ben@example.com"},
	{ID: "demo-chen", Name: "Chen Wei", Email: "chen@example.com"},
}

var comments = []string{
	"Exactly as described, would book again.",
	"Friendly staff and great value.",
	"A bit crowded but still worth it.",
	"Highlight of the trip!",
}

func main() {
	bookingsPerUser := flag.Int("bookings", 3, "bookings to create per demo user")
	withReviews := flag.Bool("reviews", true, "also create one review per booking")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	l := logger.New(logger.Config{Level: cfg.LogLevel, Format: logger.FormatText, Service: "travelbook-seed"})

	ctx := context.Background()
	adapter, closeStorage, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("storage:", err)
	}
	defer func() { _ = closeStorage() }()

	bookings, err := booking.NewStore(ctx, adapter, booking.WithLogger(l))
	if err != nil {
		log.Fatal("load bookings:", err)
	}
	reviews, err := review.NewStore(ctx, adapter, review.WithLogger(l))
	if err != nil {
		log.Fatal("load reviews:", err)
	}

	log.Printf("Seeding %s storage (%d bookings, %d reviews already present)...",
		cfg.Storage.Driver, len(bookings.Bookings()), len(reviews.Reviews()))

	start := time.Now().AddDate(0, 1, 0)
	n := 0
	for ui, u := range users {
		for i := 0; i < *bookingsPerUser; i++ {
			svc := services[(ui+i)%len(services)]
			guests := 1 + (ui+i)%4
			from := start.AddDate(0, 0, 7*i+ui)
			to := from
			if svc.typ == domain.ServiceAccommodation {
				to = from.AddDate(0, 0, 3)
			}

			b, err := bookings.AddBooking(ctx, booking.NewBooking{
				UserID:      u.ID,
				ServiceID:   svc.id,
				ServiceType: svc.typ,
				ServiceName: svc.name,
				Date: domain.DateRange{
					Start: from.Format("2006-01-02"),
					End:   to.Format("2006-01-02"),
				},
				Guests:      guests,
				TotalAmount: svc.price * float64(guests),
				Currency:    "EUR",
			})
			if err != nil {
				log.Fatal("add booking:", err)
			}
			n++

			if i == 0 {
				if err := bookings.UpdateBookingStatus(ctx, b.ID, domain.BookingCompleted); err != nil {
					log.Fatal("update status:", err)
				}
			}

			if *withReviews {
				_, err := reviews.AddReview(ctx, review.NewReview{
					UserID:      u.ID,
					UserName:    u.Name,
					Rating:      3 + (ui+i)%3,
					Comment:     comments[(ui+i)%len(comments)],
					ServiceID:   svc.id,
					ServiceType: svc.typ,
					IsVerified:  i == 0,
				})
				if err != nil {
					log.Fatal("add review:", err)
				}
			}
		}
	}

	log.Printf("Created %d bookings", n)

	if cfg.IsProduction() {
		return
	}
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	for _, u := range users {
		token, err := j.GenerateToken(u)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\t%s\n", u.ID, token)
	}
}

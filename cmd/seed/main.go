package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vinhyan/midland-library/configs"
	"github.com/vinhyan/midland-library/internal/db"
	"github.com/vinhyan/midland-library/internal/models"
)

var sampleBooks = []models.Book{
	{
		Author: "Ann Napolitano",
		Title:  "Hello Beautiful (Oprah's Book Club): A Novel",
		Img:    "/images/HelloBeautiful.jpg",
		Desc:   "From the New York Times bestselling author of Dear Edward comes a “powerfully affecting” (People) family story that asks: Can love make a broken person whole?",
	},
	{
		Author: "Gabor Maté MD",
		Title:  "The Myth of Normal: Trauma, Illness and Healing in a Toxic Culture",
		Img:    "/images/TheMythofNormal.jpg",
		Desc:   "This riveting and beautifully written tale has profound implications for all of our lives, including the practice of medicine and mental health.” —Bessel van der Kolk, MD, #1 New York Times bestselling author of The Body Keeps the Score",
	},
	{
		Author: "Colleen Hoover",
		Title:  "Verity",
		Img:    "/images/Verity.jpg",
		Desc:   "Whose truth is the lie? Stay up all night reading the sensational psychological thriller that has readers obsessed, from the #1 New York Times bestselling author of It Ends With Us.",
	},
	{
		Author: "Paulo Coelho",
		Title:  "The Alchemist",
		Img:    "/images/TheAlchemist.jpg",
		Desc:   "A special 25th anniversary edition of the extraordinary international bestseller, including a new Foreword by Paulo Coelho.",
	},
	{
		Author: "Gabrielle Zevin",
		Title:  "Tomorrow, and Tomorrow, and Tomorrow: A novel",
		Img:    "/images/Tomorrow.jpg",
		Desc:   "In this exhilarating novel by the best-selling author of The Storied Life of A. J. Fikry two friends—often in love, but never lovers—come together as creative partners in the world of video game design, where success brings them fame, joy, tragedy, duplicity, and, ultimately, a kind of immortality.",
	},
}

var sampleUsers = []models.User{
	{CardNumber: "0000", Name: "John"},
	{CardNumber: "1234", Name: "Leah"},
}

func main() {
	cfg := configs.LoadConfig()
	db.Connect(cfg.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bookCol := db.GetCollection(cfg.DBName, "books")
	userCol := db.GetCollection(cfg.DBName, "users")

	count, err := bookCol.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Counting books failed: %v", err)
	}
	if count == 0 {
		docs := make([]any, 0, len(sampleBooks))
		for _, b := range sampleBooks {
			docs = append(docs, b)
		}
		if _, err := bookCol.InsertMany(ctx, docs); err != nil {
			log.Fatalf("Seeding books failed: %v", err)
		}
		log.Printf("Seeded %d books", len(sampleBooks))
	} else {
		log.Printf("Books collection already has %d documents, skipping", count)
	}

	count, err = userCol.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Counting users failed: %v", err)
	}
	if count == 0 {
		docs := make([]any, 0, len(sampleUsers))
		for _, u := range sampleUsers {
			docs = append(docs, u)
		}
		if _, err := userCol.InsertMany(ctx, docs); err != nil {
			log.Fatalf("Seeding users failed: %v", err)
		}
		log.Printf("Seeded %d users", len(sampleUsers))
	} else {
		log.Printf("Users collection already has %d documents, skipping", count)
	}

	if err := db.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect failed: %v", err)
	}
}

package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	DestinationsCollection   *mongo.Collection
	ActivitiesCollection     *mongo.Collection
	HotelsCollection         *mongo.Collection
	PlacesCollection         *mongo.Collection
	RestaurantsCollection    *mongo.Collection
	ReviewsCollection        *mongo.Collection
	ItineraryCollection      *mongo.Collection
	ItineraryItemsCollection *mongo.Collection
	ProfilesCollection       *mongo.Collection
	ChatMessagesCollection   *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "wandervoice"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(dbName)
	DestinationsCollection = database.Collection("destinations")
	ActivitiesCollection = database.Collection("activities")
	HotelsCollection = database.Collection("hotels")
	PlacesCollection = database.Collection("places")
	RestaurantsCollection = database.Collection("restaurants")
	ReviewsCollection = database.Collection("reviews")
	ItineraryCollection = database.Collection("itineraries")
	ItineraryItemsCollection = database.Collection("itinerary_items")
	ProfilesCollection = database.Collection("profiles")
	ChatMessagesCollection = database.Collection("chat_messages")

	log.Println("Connected to MongoDB:", uri)
}

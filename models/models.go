package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. The store addresses every entity by the lowercase
// name of its type, matching the documents already in production.
const (
	UsersCollection      = "user"
	CategoriesCollection = "category"
	ProductsCollection   = "product"
	ReviewsCollection    = "review"
	OrdersCollection     = "order"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	AvatarURL    string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// Variant is a purchasable option of a product with its own price
// delta and stock count.
type Variant struct {
	Name       string  `bson:"name" json:"name"`
	Value      string  `bson:"value" json:"value"`
	SKU        string  `bson:"sku,omitempty" json:"sku,omitempty"`
	PriceDelta float64 `bson:"price_delta" json:"price_delta"`
	Stock      int     `bson:"stock" json:"stock"`
}

// Product as stored. Rating and RatingCount are derived from the
// review collection and must never be authored directly; the review
// aggregator rewrites both after every submitted review.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Images      []string           `bson:"images" json:"images"`
	Category    string             `bson:"category" json:"category"` // category slug, unenforced reference
	Tags        []string           `bson:"tags" json:"tags"`
	Variants    []Variant          `bson:"variants" json:"variants"`
	Rating      float64            `bson:"rating" json:"rating"`
	RatingCount int                `bson:"rating_count" json:"rating_count"`
}

// Review is immutable once created. UserID/UserName stay empty for
// anonymous submissions.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID string             `bson:"product_id" json:"product_id"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserName  string             `bson:"user_name,omitempty" json:"user_name,omitempty"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// OrderItem is a denormalized snapshot of the product at purchase
// time, not a live reference.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id" binding:"required"`
	Title     string  `bson:"title" json:"title" binding:"required"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity" binding:"required"`
	Variant   string  `bson:"variant,omitempty" json:"variant,omitempty"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

type ShippingAddress struct {
	FullName     string `bson:"full_name" json:"full_name" binding:"required"`
	AddressLine1 string `bson:"address_line1" json:"address_line1" binding:"required"`
	AddressLine2 string `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         string `bson:"city" json:"city" binding:"required"`
	State        string `bson:"state" json:"state" binding:"required"`
	PostalCode   string `bson:"postal_code" json:"postal_code" binding:"required"`
	Country      string `bson:"country" json:"country" binding:"required"`
}

// Order totals are caller-supplied and stored as given; the server
// does not recompute them from item prices.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Shipping        float64            `bson:"shipping" json:"shipping"`
	Total           float64            `bson:"total" json:"total"`
	Email           string             `bson:"email" json:"email"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shipping_address"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// Package api binds the HTTP surface to the catalog engine, review
// aggregator, and document store. Handlers own request validation;
// store errors are mapped to the JSON error taxonomy here.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/glasscart/storefront/auth"
	"github.com/glasscart/storefront/catalog"
	"github.com/glasscart/storefront/config"
	"github.com/glasscart/storefront/models"
	"github.com/glasscart/storefront/reviews"
	"github.com/glasscart/storefront/store"
)

// Catalog is the product-side slice of the store the handlers query.
type Catalog interface {
	Search(ctx context.Context, q catalog.Query) (catalog.Page, error)
	BySlug(ctx context.Context, slug string) (models.Product, error)
	Related(ctx context.Context, p models.Product) ([]models.Product, error)
	Suggest(ctx context.Context, term string) ([]catalog.Suggestion, error)
}

type Categories interface {
	All(ctx context.Context) ([]models.Category, error)
}

type Users interface {
	ByEmail(ctx context.Context, email string) (models.User, error)
	ByID(ctx context.Context, id string) (models.User, error)
	Insert(ctx context.Context, u models.User) (string, error)
}

type Orders interface {
	Insert(ctx context.Context, o models.Order) (string, error)
}

type Reviews interface {
	Submit(ctx context.Context, productID string, sub reviews.Submission) (string, error)
	List(ctx context.Context, productID string) ([]models.Review, error)
}

type Seeder interface {
	Seed(ctx context.Context) error
}

type Diagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// EnvInfo feeds the diagnostic endpoint without re-reading the
// environment per request.
type EnvInfo struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// API holds every injected dependency. Nil store-backed fields mean
// the process started without a configured store; the affected
// endpoints report it as unavailable instead of panicking.
type API struct {
	Tokens     *auth.Tokens
	Catalog    Catalog
	Categories Categories
	Users      Users
	Orders     Orders
	Reviews    Reviews
	Seeder     Seeder
	Diag       Diagnostics
	Env        EnvInfo
}

// New wires the real store repositories into an API. A nil store is
// allowed and leaves every data dependency unset.
func New(st *store.Store, tokens *auth.Tokens, cfg config.Config) *API {
	a := &API{
		Tokens: tokens,
		Env: EnvInfo{
			DatabaseURLSet:  cfg.DatabaseURL != "",
			DatabaseNameSet: os.Getenv("DATABASE_NAME") != "",
		},
	}
	if st != nil {
		products := st.Products()
		a.Catalog = products
		a.Categories = st.Categories()
		a.Users = st.Users()
		a.Orders = st.Orders()
		a.Reviews = reviews.NewAggregator(st.Reviews(), products)
		a.Seeder = st
		a.Diag = st
	}
	return a
}

const (
	detailStoreUnavailable = "Database not configured"
	detailBadCredentials   = "Could not validate credentials"
)

func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func (a *API) unavailable(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, detailStoreUnavailable)
}

// storeError logs the underlying failure and reports the store as
// unreachable without leaking internals to the client.
func (a *API) storeError(c *gin.Context, err error) {
	slog.Error("store error", "path", c.FullPath(), "error", err)
	respondError(c, http.StatusInternalServerError, "Store unavailable")
}

package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/seed"
	"github.com/example/morascent/internal/store"
)

func TestProductListingFilters(t *testing.T) {
	s := newStore(t)

	all := s.ListProducts("", "")
	require.NotEmpty(t, all)

	// The catch-all category never filters, in either language.
	assert.Len(t, s.ListProducts(seed.AllCategory.Ar, ""), len(all))
	assert.Len(t, s.ListProducts(seed.AllCategory.En, ""), len(all))

	// Search matches both Arabic and English names.
	assert.NotEmpty(t, s.ListProducts("", "Hacivat"))
	assert.NotEmpty(t, s.ListProducts("", "نيشان"))
	assert.Empty(t, s.ListProducts("", "no-such-perfume"))
}

func TestCreateProductDefaults(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateProduct(models.Product{Name: "عطر", Price: 0, Image: "x.jpg"})
	assert.ErrorIs(t, err, store.ErrMissingFields)

	p, err := s.CreateProduct(models.Product{Name: "عطر جديد", NameEn: "New Scent", Price: 400, Image: "x.jpg"})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.NotEmpty(t, p.Category) // default category assigned

	fetched, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Category, fetched.Category)
}

func TestDefaultCategoryIsFirstAfterCatchAll(t *testing.T) {
	s := newStore(t)

	categories := s.ListCategories()
	require.Greater(t, len(categories), 1)
	assert.Equal(t, seed.AllCategory, categories[0])

	def, ok := s.DefaultCategory()
	require.True(t, ok)
	assert.Equal(t, categories[1], def)

	// The policy follows deletions of the current default.
	require.NoError(t, s.RemoveCategory(def.Ar))
	next, ok := s.DefaultCategory()
	require.True(t, ok)
	assert.Equal(t, categories[2], next)
}

func TestCategoryGuards(t *testing.T) {
	s := newStore(t)

	err := s.AddCategory(models.Category{Ar: "شرقي", En: "Oriental"})
	require.NoError(t, err)
	assert.ErrorIs(t, s.AddCategory(models.Category{Ar: "شرقي", En: "Oriental"}), store.ErrDuplicateCategory)

	assert.ErrorIs(t, s.RemoveCategory(seed.AllCategory.Ar), store.ErrCategoryProtected)
	assert.NoError(t, s.RemoveCategory("شرقي"))
	assert.ErrorIs(t, s.RemoveCategory("شرقي"), store.ErrNotFound)
}

func TestAdminAuthentication(t *testing.T) {
	s := newStore(t)

	admin, err := s.AuthenticateAdmin("admin@morascent.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)
	assert.NotNil(t, admin.LastLogin)

	_, err = s.AuthenticateAdmin("admin@morascent.com", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	_, err = s.AuthenticateAdmin("nobody@morascent.com", "secret123")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestAdminUserLifecycle(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateAdminUser("Sara", "admin@morascent.com", models.RoleAdmin, "pw123456")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)

	_, err = s.CreateAdminUser("Sara", "sara@morascent.com", "owner", "pw123456")
	assert.ErrorIs(t, err, store.ErrInvalidRole)

	sara, err := s.CreateAdminUser("Sara", "sara@morascent.com", models.RoleAdmin, "pw123456")
	require.NoError(t, err)

	seeded := s.ListAdminUsers()
	require.Len(t, seeded, 2)

	// The only super admin cannot be demoted or deleted.
	var root models.AdminUser
	for _, a := range seeded {
		if a.Role == models.RoleSuperAdmin {
			root = a
		}
	}
	_, err = s.UpdateAdminUser(root.ID, root.Name, root.Email, models.RoleStaff)
	assert.ErrorIs(t, err, store.ErrLastSuperAdmin)
	assert.ErrorIs(t, s.DeleteAdminUser(root.ID), store.ErrLastSuperAdmin)

	// A second super admin lifts the guard.
	_, err = s.UpdateAdminUser(sara.ID, "Sara", sara.Email, models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.NoError(t, s.DeleteAdminUser(root.ID))
}

func TestActivityLogNewestFirst(t *testing.T) {
	s := newStore(t)

	s.LogActivity("id-1", "Admin", "created product", "127.0.0.1")
	s.LogActivity("id-1", "Admin", "deleted product", "127.0.0.1")

	logs := s.ListActivity(10)
	require.Len(t, logs, 2)
	assert.Equal(t, "deleted product", logs[0].Action)

	assert.Len(t, s.ListActivity(1), 1)
}

func TestSnapshotAndStats(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 8, 1)
	require.NoError(t, err)
	order, err := s.SubmitOrder(token, "", customerInfo("+201000000020"))
	require.NoError(t, err)

	b := s.Snapshot()
	assert.False(t, b.ExportedAt.IsZero())
	assert.NotEmpty(t, b.Products)
	assert.NotEmpty(t, b.Coupons)
	require.Len(t, b.Orders, 1)
	assert.Equal(t, "Mora scent", b.Settings.Name)

	stats := s.DashboardStats(5)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, order.Total, stats.TotalRevenue)
	assert.Equal(t, 1, stats.CustomerCount)

	// Cancelled orders drop out of revenue but not out of the count.
	_, err = s.UpdateOrderStatus(order.ID, models.OrderStatusCancelled, "", "")
	require.NoError(t, err)
	stats = s.DashboardStats(5)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
}

func TestFabricateUserIsIdempotentPerEmail(t *testing.T) {
	s := newStore(t)

	u1, err := s.FabricateUser("", "layla@example.com")
	require.NoError(t, err)
	assert.Equal(t, "layla", u1.Name)

	u2, err := s.FabricateUser("Layla", "layla@example.com")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)

	_, err = s.FabricateUser("x", "")
	assert.ErrorIs(t, err, store.ErrMissingFields)
}

func TestReviewValidation(t *testing.T) {
	s := newStore(t)

	_, err := s.AddReview(models.Review{ProductID: 999, Rating: 4, Comment: "جميل", UserName: "أحمد"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.AddReview(models.Review{ProductID: 8, Rating: 4, Comment: "جميل"})
	assert.ErrorIs(t, err, store.ErrMissingFields)

	r, err := s.AddReview(models.Review{ProductID: 8, Rating: 9, Comment: "رائع", UserName: "أحمد"})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating) // clamped

	assert.Len(t, s.ListReviews(8), 1)
	assert.Empty(t, s.ListReviews(9))
}

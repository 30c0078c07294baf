// Package seed holds the initial session state: catalog, categories, the
// Egyptian governorate list, shipping zones, coupons, store settings and the
// built-in back-office account. The store copies this data at boot; a process
// restart starts the session over from here.
package seed

import (
	"time"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/utils"
)

// Countries supported at checkout.
var Countries = []string{"مصر"}

// EgyptCities lists every governorate selectable as a delivery destination.
var EgyptCities = []string{
	"القاهرة", "الجيزة", "الإسكندرية", "القليوبية", "الدقهلية",
	"الغربية", "المنوفية", "الشرقية", "البحيرة", "كفر الشيخ",
	"دمياط", "بورسعيد", "الإسماعيلية", "السويس", "الفيوم",
	"بني سويف", "المنيا", "أسيوط", "سوهاج", "قنا",
	"الأقصر", "أسوان", "البحر الأحمر", "الوادي الجديد", "مطروح",
	"شمال سيناء", "جنوب سيناء",
}

// AllCategory is the synthetic catch-all category. It cannot be removed and
// never owns products.
var AllCategory = models.Category{Ar: "الكل", En: "All"}

// Categories returns the initial category list, AllCategory first.
func Categories() []models.Category {
	return []models.Category{
		AllCategory,
		{Ar: "عطور شرقية", En: "Oriental"},
		{Ar: "عطور فرنسية", En: "French"},
		{Ar: "عطور نيش", En: "Niche"},
		{Ar: "زيوت عطرية", En: "Essential Oils"},
	}
}

// Products returns the initial catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:         8,
			Name:       "برفان نيشاني هاشيفات",
			NameEn:     "Nishane Hacivat",
			Category:   "عطور نيش",
			CategoryEn: "Niche",
			Price:      1150,
			Image:      "https://images.unsplash.com/photo-1621006279463-02a6316c5719?q=80&w=800&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1594035910387-fea477942698?q=80&w=800",
				"https://images.unsplash.com/photo-1523293182086-7651a899d37f?q=80&w=800",
			},
			Description:   "إصدار نيش الشهير، مزيج ساحر من الأناناس المنعش وخشب البلوط.",
			DescriptionEn: "The famous niche release, a magical blend of fresh pineapple and oakmoss.",
			Stock:         15,
		},
		{
			ID:            9,
			Name:          "عود ملكي فاخر",
			NameEn:        "Royal Oud",
			Category:      "عطور شرقية",
			CategoryEn:    "Oriental",
			Price:         850,
			Image:         "https://images.unsplash.com/photo-1541643600914-78b084683601?q=80&w=800&auto=format&fit=crop",
			Description:   "عود كمبودي أصيل مع لمسات العنبر والمسك.",
			DescriptionEn: "Authentic Cambodian oud with touches of amber and musk.",
			Stock:         20,
		},
		{
			ID:            10,
			Name:          "زيت الياسمين الصافي",
			NameEn:        "Pure Jasmine Oil",
			Category:      "زيوت عطرية",
			CategoryEn:    "Essential Oils",
			Price:         320,
			Image:         "https://images.unsplash.com/photo-1547887537-6158d64c35b3?q=80&w=800&auto=format&fit=crop",
			Description:   "زيت ياسمين مصري مقطر من حقول الدلتا.",
			DescriptionEn: "Egyptian jasmine oil distilled from Delta fields.",
			Stock:         40,
		},
	}
}

// Coupons returns the launch coupons.
func Coupons() []models.Coupon {
	return []models.Coupon{
		{
			BaseModel:     models.NewBase(),
			Code:          "MORA10",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			MinOrderValue: 500,
			ExpiryDate:    time.Now().AddDate(1, 0, 0),
			UsageLimit:    100,
			UsageCount:    0,
			IsActive:      true,
		},
	}
}

// ShippingZones returns the initial per-city rates. Cities without a zone
// ship at no charge until an admin adds one.
func ShippingZones() []models.ShippingZone {
	zones := []struct {
		city string
		rate float64
		eta  string
	}{
		{"القاهرة", 50, "24-48 ساعة"},
		{"الجيزة", 50, "24-48 ساعة"},
		{"الإسكندرية", 60, "48 ساعة"},
		{"الدقهلية", 65, "48 ساعة"},
		{"أسوان", 80, "48-72 ساعة"},
	}

	out := make([]models.ShippingZone, 0, len(zones))
	for _, z := range zones {
		out = append(out, models.ShippingZone{
			BaseModel:    models.NewBase(),
			City:         z.city,
			Rate:         z.rate,
			DeliveryTime: z.eta,
			IsActive:     true,
		})
	}
	return out
}

// ShippingCompanies returns the initial carrier list.
func ShippingCompanies() []models.ShippingCompany {
	return []models.ShippingCompany{
		{BaseModel: models.NewBase(), Name: "Bosta", Contact: "19043", IsActive: true},
		{BaseModel: models.NewBase(), Name: "Aramex", Contact: "19033", IsActive: true},
	}
}

// Settings returns the default store settings.
func Settings() models.StoreSettings {
	return models.StoreSettings{
		Name:             "Mora scent",
		Logo:             "M",
		Email:            "hello@morascent.com",
		WhatsApp:         "01550294614",
		Currency:         "ج.م",
		DefaultLanguage:  "ar",
		TaxPercentage:    0,
		Policy:           "التوصيل خلال 48 ساعة كحد أقصى لجميع المحافظات المصرية",
		AssistantEnabled: true,
	}
}

// AdminUsers returns the built-in back-office accounts. The password comes
// from the caller so it can be sourced from configuration.
func AdminUsers(password string) ([]models.AdminUser, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return []models.AdminUser{
		{
			BaseModel:    models.NewBase(),
			Name:         "Mora Admin",
			Email:        "admin@morascent.com",
			Role:         models.RoleSuperAdmin,
			PasswordHash: hash,
		},
	}, nil
}

package models

// Product is a catalog entry with Arabic and English copy. The numeric ID is
// assigned by the store and never reused within a session.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	NameEn        string   `json:"name_en"`
	Category      string   `json:"category"`
	CategoryEn    string   `json:"category_en"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Description   string   `json:"description"`
	DescriptionEn string   `json:"description_en"`
	Stock         int      `json:"stock"`
}

// Category is a bilingual category name pair. The Arabic name is the
// authoritative key.
type Category struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// CartItem is a product snapshot plus a quantity. A cart holds at most one
// item per product id; adding an already-present product increments Quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price times quantity for this item.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Review is a shopper rating attached to a product.
type Review struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

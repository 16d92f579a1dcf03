package model

// Product is the catalog entity. Updates never mutate an existing value;
// a replacement Product carrying the same ID is built via NewProduct.
type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"productId"`
	Name        string  `gorm:"type:varchar(255);not null" json:"productName"`
	Description string  `gorm:"type:text" json:"productDescription"`
	Price       float64 `gorm:"index;not null" json:"productPrice"`
	Category    string  `gorm:"type:varchar(100)" json:"productCategory"`
	Stock       int     `gorm:"default:0" json:"productStock"`
	ImageURL    string  `gorm:"type:text" json:"productImageUrl"`
}

func (Product) TableName() string { return "products" }

// ProductRequest is the create/update payload. Price is a pointer so a
// missing price is distinguishable from a zero price, which is valid.
type ProductRequest struct {
	Name        string   `json:"productName" validate:"required"`
	Description string   `json:"productDescription"`
	Price       *float64 `json:"productPrice" validate:"required,gte=0"`
	Category    string   `json:"productCategory"`
	Stock       int      `json:"productStock" validate:"gte=0"`
	ImageURL    string   `json:"productImageUrl"`
}

// NewProduct builds a Product from a validated request. Optional text
// fields decode to "" when absent, so the value never carries a null
// marker. The only place a Product is constructed from client input.
func NewProduct(id int, req *ProductRequest) *Product {
	return &Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}
}

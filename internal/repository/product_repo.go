package repository

import (
	"errors"
	"strings"

	"github.com/SushanthKalagi/EcommerceApplication/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	FindByID(id int) (*model.Product, error)
	ExistsByID(id int) (bool, error)
	Save(product *model.Product) error
	DeleteByID(id int) error
	FindAll(pr model.PageRequest) (*model.Page, error)
	FindByNameContaining(name string, pr model.PageRequest) (*model.Page, error)
	FindByCategory(category string, pr model.PageRequest) (*model.Page, error)
	FindByPriceBetween(min, max float64, pr model.PageRequest) (*model.Page, error)
	DistinctCategories() ([]string, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// sortColumns whitelists sortable fields; both the wire names and the
// column names are accepted. Anything else falls back to name.
var sortColumns = map[string]string{
	"productId":       "id",
	"productName":     "name",
	"productPrice":    "price",
	"productCategory": "category",
	"productStock":    "stock",
	"id":              "id",
	"name":            "name",
	"price":           "price",
	"category":        "category",
	"stock":           "stock",
}

func sortColumn(field string) string {
	if col, ok := sortColumns[field]; ok {
		return col
	}
	return "name"
}

func (r *productRepo) FindByID(id int) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) ExistsByID(id int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save inserts when the id is zero (the database sequence assigns one)
// and fully replaces the row otherwise.
func (r *productRepo) Save(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) DeleteByID(id int) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) FindAll(pr model.PageRequest) (*model.Page, error) {
	return r.paginate(r.db.Model(&model.Product{}), pr)
}

func (r *productRepo) FindByNameContaining(name string, pr model.PageRequest) (*model.Page, error) {
	tx := r.db.Model(&model.Product{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	return r.paginate(tx, pr)
}

func (r *productRepo) FindByCategory(category string, pr model.PageRequest) (*model.Page, error) {
	return r.paginate(r.db.Model(&model.Product{}).Where("category = ?", category), pr)
}

func (r *productRepo) FindByPriceBetween(min, max float64, pr model.PageRequest) (*model.Page, error) {
	tx := r.db.Model(&model.Product{}).Where("price >= ? AND price <= ?", min, max)
	return r.paginate(tx, pr)
}

func (r *productRepo) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.Product{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepo) paginate(tx *gorm.DB, pr model.PageRequest) (*model.Page, error) {
	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var products []model.Product
	err := tx.Session(&gorm.Session{}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortColumn(pr.Sort)}, Desc: pr.Desc}).
		Offset(pr.Page * pr.Size).
		Limit(pr.Size).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return model.NewPage(products, pr.Page, pr.Size, total), nil
}

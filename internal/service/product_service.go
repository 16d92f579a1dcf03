package service

import (
	"sort"

	"github.com/SushanthKalagi/EcommerceApplication/internal/model"
	"github.com/SushanthKalagi/EcommerceApplication/internal/repository"
	"github.com/SushanthKalagi/EcommerceApplication/internal/ws"
	"github.com/SushanthKalagi/EcommerceApplication/pkg/validator"
)

type CatalogService interface {
	Create(req *model.ProductRequest) (*model.Product, error)
	Update(id int, req *model.ProductRequest) (*model.Product, error)
	Delete(id int) error
	GetByID(id int) (*model.Product, error)
	Search(params SearchParams) (*model.Page, error)
	Categories() ([]string, error)
}

// SearchParams are the optional filters plus paging/sort of one search.
// A nil pointer means the parameter was absent from the request.
type SearchParams struct {
	Name     *string
	Category *string
	MinPrice *float64
	MaxPrice *float64
	Paging   model.PageRequest
}

type filterKind int

const (
	filterNone filterKind = iota
	filterByName
	filterByCategory
	filterByPriceRange
)

// searchFilter is the resolved query strategy; exactly one kind is set
// per request, never a combination.
type searchFilter struct {
	kind     filterKind
	name     string
	category string
	minPrice float64
	maxPrice float64
}

// resolveFilter picks the single query strategy by precedence: name,
// then category, then an inclusive price range requiring both bounds.
// A one-sided price bound is not an error; it falls through to the
// unfiltered branch.
func resolveFilter(params SearchParams) searchFilter {
	if params.Name != nil {
		return searchFilter{kind: filterByName, name: *params.Name}
	}
	if params.Category != nil {
		return searchFilter{kind: filterByCategory, category: *params.Category}
	}
	if params.MinPrice != nil && params.MaxPrice != nil {
		return searchFilter{kind: filterByPriceRange, minPrice: *params.MinPrice, maxPrice: *params.MaxPrice}
	}
	return searchFilter{kind: filterNone}
}

type catalogService struct {
	repo repository.ProductRepository
	hub  *ws.Hub
}

func NewCatalogService(repo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{repo: repo, hub: hub}
}

func (s *catalogService) Create(req *model.ProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	// Zero id: the store's sequence assigns the new unique id.
	product := model.NewProduct(0, req)
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}

	s.publish(ws.ActionProductCreated, product)
	return product, nil
}

func (s *catalogService) Update(id int, req *model.ProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	// Full replace, read-then-write: concurrent updates to the same id
	// are last write wins.
	product := model.NewProduct(id, req)
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}

	s.publish(ws.ActionProductUpdated, product)
	return product, nil
}

func (s *catalogService) Delete(id int) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}

	s.publish(ws.ActionProductDeleted, &model.Product{ID: id})
	return nil
}

func (s *catalogService) GetByID(id int) (*model.Product, error) {
	return s.repo.FindByID(id)
}

func (s *catalogService) Search(params SearchParams) (*model.Page, error) {
	switch f := resolveFilter(params); f.kind {
	case filterByName:
		return s.repo.FindByNameContaining(f.name, params.Paging)
	case filterByCategory:
		return s.repo.FindByCategory(f.category, params.Paging)
	case filterByPriceRange:
		return s.repo.FindByPriceBetween(f.minPrice, f.maxPrice, params.Paging)
	default:
		return s.repo.FindAll(params.Paging)
	}
}

// Categories returns the categories in use, deduplicated and sorted
// ascending regardless of what the store handed back. An empty string
// is a valid category value.
func (s *catalogService) Categories() ([]string, error) {
	raw, err := s.repo.DistinctCategories()
	if err != nil {
		return nil, err
	}

	sort.Strings(raw)
	categories := make([]string, 0, len(raw))
	for i, c := range raw {
		if i > 0 && c == raw[i-1] {
			continue
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (s *catalogService) publish(action string, product *model.Product) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(ws.ProductEvent{Action: action, Product: product})
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"coursehub/internal/entity"
)

// DefaultCategories seeds an empty backend so the filter dropdown is never
// blank on first run.
var DefaultCategories = []entity.Category{
	{Code: "001", Name: "Teaching", IconPath: "assets/images/teach-1968076_1280.jpg"},
	{Code: "002", Name: "Art & Craft", IconPath: "assets/images/hand-4752642_1280.jpg"},
	{Code: "003", Name: "Computers", IconPath: "assets/images/pexels-pixabay-38568.jpg"},
	{Code: "004", Name: "Medicine", IconPath: "assets/images/syringes-3539565_1280.jpg"},
}

// CategoryService wraps the /categories resource.
type CategoryService struct {
	c *Client
}

func NewCategoryService(c *Client) *CategoryService {
	return &CategoryService{c: c}
}

func (s *CategoryService) All(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := s.c.do(ctx, http.MethodGet, "/categories", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CategoryService) Add(ctx context.Context, category entity.Category) error {
	return s.c.do(ctx, http.MethodPost, "/categories", "", category, nil)
}

func (s *CategoryService) Update(ctx context.Context, category entity.Category) error {
	return s.c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(category.Code), "", category, nil)
}

func (s *CategoryService) Delete(ctx context.Context, code string) error {
	return s.c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(code), "", nil, nil)
}

// EnsureDefaults fetches the categories and seeds the defaults when the
// backend has none. Seeding is best effort: a failed insert is skipped so
// one bad row cannot take the page down.
func (s *CategoryService) EnsureDefaults(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}
	for _, category := range DefaultCategories {
		if err := s.Add(ctx, category); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

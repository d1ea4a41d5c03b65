package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type ProductsService struct {
	c *Client
}

func (c *Client) Products() *ProductsService {
	return &ProductsService{c: c}
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Available   bool    `json:"available"`
	Image       string  `json:"image,omitempty"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

func (s *ProductsService) List(ctx context.Context) ([]domain.Product, Envelope) {
	return into[[]domain.Product](s.c.Get(ctx, "/products"))
}

func (s *ProductsService) Get(ctx context.Context, id string) (*domain.Product, Envelope) {
	return into[*domain.Product](s.c.Get(ctx, "/products/"+id))
}

func (s *ProductsService) Create(ctx context.Context, req ProductRequest) (*domain.Product, Envelope) {
	return into[*domain.Product](s.c.Post(ctx, "/products", req))
}

func (s *ProductsService) Update(ctx context.Context, id string, req ProductRequest) (*domain.Product, Envelope) {
	return into[*domain.Product](s.c.Put(ctx, "/products/"+id, req))
}

// formFields flattens the request for a multipart submit.
func (r ProductRequest) formFields() map[string]string {
	return map[string]string{
		"name":        r.Name,
		"description": r.Description,
		"price":       strconv.FormatFloat(r.Price, 'f', -1, 64),
		"category":    r.Category,
		"available":   strconv.FormatBool(r.Available),
	}
}

// CreateWithImage submits the product as a multipart form with the image
// attached; the server stores the image and fills the image URL.
func (s *ProductsService) CreateWithImage(ctx context.Context, req ProductRequest, imageName string, image []byte) (*domain.Product, Envelope) {
	file := &FileField{Field: "image", FileName: imageName, Data: image}
	return into[*domain.Product](s.c.SubmitForm(ctx, http.MethodPost, "/products", req.formFields(), file))
}

func (s *ProductsService) UpdateWithImage(ctx context.Context, id string, req ProductRequest, imageName string, image []byte) (*domain.Product, Envelope) {
	file := &FileField{Field: "image", FileName: imageName, Data: image}
	return into[*domain.Product](s.c.SubmitForm(ctx, http.MethodPut, "/products/"+id, req.formFields(), file))
}

func (s *ProductsService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Product, Envelope) {
	return into[*domain.Product](s.c.Patch(ctx, "/products/"+id+"/availability", AvailabilityRequest{Available: available}))
}

func (s *ProductsService) Delete(ctx context.Context, id string) Envelope {
	return s.c.Delete(ctx, "/products/"+id)
}

// PublicMenu fetches the customer-facing menu. No token required.
func (s *ProductsService) PublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, Envelope) {
	return into[*domain.PublicMenu](s.c.Get(ctx, "/menu/"+slug))
}

package mutations

import (
	"context"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/permissions"
)

type createProductMessage struct {
	input  api.ProductInput
	result *content.Product
}

func (m *createProductMessage) Type() string    { return "products.create" }
func (m *createProductMessage) Validate() error { return m.input.Validate() }

type updateProductMessage struct {
	id     string
	input  api.ProductInput
	result *content.Product
}

func (m *updateProductMessage) Type() string    { return "products.update" }
func (m *updateProductMessage) Validate() error { return m.input.Validate() }

type deleteProductMessage struct {
	id string
}

func (m *deleteProductMessage) Type() string { return "products.delete" }

// ProductMutations writes the /products resource. The products key space
// includes the cached category list, so a single prefix eviction covers
// both.
type ProductMutations struct {
	create *Handler[*createProductMessage]
	update *Handler[*updateProductMessage]
	remove *Handler[*deleteProductMessage]
}

func newProductMutations(cfg Config) *ProductMutations {
	svc := cfg.Client.Products()
	prefix := resourcePrefix(permissions.ResourceProducts)
	return &ProductMutations{
		create: newSuiteHandler(cfg, func(ctx context.Context, msg *createProductMessage) error {
			item, err := svc.Create(ctx, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "products.create", "Product created"),
		update: newSuiteHandler(cfg, func(ctx context.Context, msg *updateProductMessage) error {
			item, err := svc.Update(ctx, msg.id, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "products.update", "Product updated"),
		remove: newSuiteHandler(cfg, func(ctx context.Context, msg *deleteProductMessage) error {
			return svc.Delete(ctx, msg.id)
		}, prefix, "products.delete", "Product deleted"),
	}
}

// Create submits a new product.
func (m *ProductMutations) Create(ctx context.Context, in api.ProductInput) (*content.Product, error) {
	var out content.Product
	if err := m.create.Execute(ctx, &createProductMessage{input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an existing product.
func (m *ProductMutations) Update(ctx context.Context, id string, in api.ProductInput) (*content.Product, error) {
	var out content.Product
	if err := m.update.Execute(ctx, &updateProductMessage{id: id, input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product.
func (m *ProductMutations) Delete(ctx context.Context, id string) error {
	return m.remove.Execute(ctx, &deleteProductMessage{id: id})
}

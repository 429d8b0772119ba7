package mutations

import (
	"context"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/content"
)

type createBookMessage struct {
	input  api.BookInput
	result *content.Book
}

func (m *createBookMessage) Type() string    { return "books.create" }
func (m *createBookMessage) Validate() error { return m.input.Validate() }

type updateBookMessage struct {
	id     string
	input  api.BookInput
	result *content.Book
}

func (m *updateBookMessage) Type() string    { return "books.update" }
func (m *updateBookMessage) Validate() error { return m.input.Validate() }

type deleteBookMessage struct {
	id string
}

func (m *deleteBookMessage) Type() string { return "books.delete" }

// BookMutations writes the /books resource.
type BookMutations struct {
	create *Handler[*createBookMessage]
	update *Handler[*updateBookMessage]
	remove *Handler[*deleteBookMessage]
}

func newBookMutations(cfg Config) *BookMutations {
	svc := cfg.Client.Books()
	return &BookMutations{
		create: newSuiteHandler(cfg, func(ctx context.Context, msg *createBookMessage) error {
			item, err := svc.Create(ctx, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, booksPrefix, "books.create", "Book created"),
		update: newSuiteHandler(cfg, func(ctx context.Context, msg *updateBookMessage) error {
			item, err := svc.Update(ctx, msg.id, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, booksPrefix, "books.update", "Book updated"),
		remove: newSuiteHandler(cfg, func(ctx context.Context, msg *deleteBookMessage) error {
			return svc.Delete(ctx, msg.id)
		}, booksPrefix, "books.delete", "Book deleted"),
	}
}

// Create submits a new book.
func (m *BookMutations) Create(ctx context.Context, in api.BookInput) (*content.Book, error) {
	var out content.Book
	if err := m.create.Execute(ctx, &createBookMessage{input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an existing book.
func (m *BookMutations) Update(ctx context.Context, id string, in api.BookInput) (*content.Book, error) {
	var out content.Book
	if err := m.update.Execute(ctx, &updateBookMessage{id: id, input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a book.
func (m *BookMutations) Delete(ctx context.Context, id string) error {
	return m.remove.Execute(ctx, &deleteBookMessage{id: id})
}

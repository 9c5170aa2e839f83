package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"formdesk/internal/models"

	badger "github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const todoKeyPrefix = "todo:"

// BadgerTodoRepository stores todos as JSON documents in an embedded Badger
// store, keyed by "todo:<object id>".
type BadgerTodoRepository struct {
	db *badger.DB
}

// NewBadgerTodoRepository creates a new instance of BadgerTodoRepository.
func NewBadgerTodoRepository(db *badger.DB) *BadgerTodoRepository {
	return &BadgerTodoRepository{
		db: db,
	}
}

// Create assigns a new object id and stores the document.
func (r *BadgerTodoRepository) Create(ctx context.Context, todo *models.Todo) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	todo.ID = primitive.NewObjectID()

	data, err := json.Marshal(todo)
	if err != nil {
		return "", fmt.Errorf("failed to encode todo: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(todoKeyPrefix+todo.ID.Hex()), data)
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert todo: %w", err)
	}
	return todo.ID.Hex(), nil
}

// GetAll scans the todo prefix. Object ids start with a timestamp, so the
// key order is also creation order.
func (r *BadgerTodoRepository) GetAll(ctx context.Context) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 100
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(todoKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var todo models.Todo
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &todo)
			})
			if err != nil {
				return err
			}
			if todo.IsDeleted {
				continue
			}
			todos = append(todos, todo)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

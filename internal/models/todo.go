package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Todo is a task document in the todo collection.
type Todo struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Mobileno    int64              `json:"mobileno" bson:"mobileno"`
	IsCompleted bool               `json:"is_completed" bson:"is_completed"`
	IsDeleted   bool               `json:"is_deleted" bson:"is_deleted"`
	UpdatedAt   int64              `json:"updated_at" bson:"updated_at"`
	Creation    int64              `json:"creation" bson:"creation"`
}

// TodoRequest is the accepted body for creating a todo.
// Mobileno is a pointer so a missing value can be told apart from zero.
type TodoRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Mobileno    *int64 `json:"mobileno" validate:"required"`
	IsCompleted bool   `json:"is_completed"`
	IsDeleted   bool   `json:"is_deleted"`
}

// NewTodo builds a Todo from a validated request. Both timestamps are taken
// from now, i.e. when the document is constructed for this request.
func NewTodo(req TodoRequest, now time.Time) *Todo {
	var mobileno int64
	if req.Mobileno != nil {
		mobileno = *req.Mobileno
	}
	ts := now.Unix()
	return &Todo{
		Name:        req.Name,
		Email:       req.Email,
		Mobileno:    mobileno,
		IsCompleted: req.IsCompleted,
		IsDeleted:   req.IsDeleted,
		UpdatedAt:   ts,
		Creation:    ts,
	}
}

// TodoResponse is the public shape of a todo in list responses.
type TodoResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobileno int64  `json:"mobileno"`
	Status   bool   `json:"status"`
}

// NewTodoResponse reshapes a stored todo for clients.
func NewTodoResponse(todo Todo) TodoResponse {
	return TodoResponse{
		ID:       todo.ID.Hex(),
		Name:     todo.Name,
		Email:    todo.Email,
		Mobileno: todo.Mobileno,
		Status:   todo.IsCompleted,
	}
}

// NewTodoResponses reshapes every todo. The result is never nil.
func NewTodoResponses(todos []Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, NewTodoResponse(todo))
	}
	return out
}

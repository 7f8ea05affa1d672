package listview

import (
	"context"

	"github.com/mytheresa/product-price/app/client"
	"go.uber.org/zap"
)

type Op int

const (
	OpLoad Op = iota
	OpCreate
	OpUpdate
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "load"
	}
}

// Outcome describes what one operation did on the network.
type Outcome struct {
	Op Op
	ID client.ID

	// Skipped is set when the presence check failed and nothing was sent.
	Skipped bool
	// Err is the failure of the mutating request.
	Err error

	// Loaded is set when the collection was fetched successfully.
	Loaded    bool
	Records   []Record
	ReloadErr error
}

// API is the products endpoint as the view consumes it.
type API interface {
	List(ctx context.Context) ([]client.Product, error)
	Create(ctx context.Context, d client.Draft) error
	Update(ctx context.Context, p client.Product) error
	Delete(ctx context.Context, id client.ID) error
}

// Controller runs the request sequence behind each operation. Failures are
// logged and reported in the Outcome; nothing is retried.
type Controller struct {
	api    API
	logger *zap.Logger
}

func NewController(api API, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{api: api, logger: logger}
}

func (c *Controller) Load(ctx context.Context) Outcome {
	return c.reload(ctx, Outcome{Op: OpLoad})
}

func (c *Controller) Create(ctx context.Context, d client.Draft) Outcome {
	o := Outcome{Op: OpCreate}
	if d.Title == "" || d.Price == "" {
		o.Skipped = true
		return o
	}

	if err := c.api.Create(ctx, d); err != nil {
		c.logger.Error("Error adding record", zap.Stringer("op", o.Op), zap.Error(err))
		o.Err = err
		return o
	}
	return c.reload(ctx, o)
}

func (c *Controller) Update(ctx context.Context, r Record) Outcome {
	o := Outcome{Op: OpUpdate, ID: r.ID}
	if r.Title == "" || r.Price == "" {
		o.Skipped = true
		return o
	}

	if err := c.api.Update(ctx, r); err != nil {
		c.logger.Error("Error updating record",
			zap.Stringer("op", o.Op), zap.Stringer("id", r.ID), zap.Error(err))
		o.Err = err
		return o
	}
	return c.reload(ctx, o)
}

func (c *Controller) Delete(ctx context.Context, id client.ID) Outcome {
	o := Outcome{Op: OpDelete, ID: id}
	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.Error("Error deleting record",
			zap.Stringer("op", o.Op), zap.Stringer("id", id), zap.Error(err))
		o.Err = err
		return o
	}
	return c.reload(ctx, o)
}

func (c *Controller) reload(ctx context.Context, o Outcome) Outcome {
	records, err := c.api.List(ctx)
	if err != nil {
		c.logger.Error("Error fetching data", zap.Stringer("op", o.Op), zap.Error(err))
		o.ReloadErr = err
		return o
	}
	o.Loaded = true
	o.Records = records
	return o
}

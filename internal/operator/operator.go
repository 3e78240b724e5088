package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-report/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	id     int
	logger *logrus.Logger
	queue  chan ActionItem
}

func NewOperator(id int, logger *logrus.Logger, queue chan ActionItem) *Operator {
	return &Operator{
		id:     id,
		logger: logger,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{err: o.perform(item)}
}

func (o *Operator) perform(item ActionItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.WithFields(logrus.Fields{
				"worker": o.id,
				"panic":  r,
			}).Error("Operator.Perform.Panic")
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()

	return item.action.Perform(item.ctx)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

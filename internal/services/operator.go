package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"vehicle_rental/internal/metrics"
	"vehicle_rental/internal/store"
)

// reference is a soft reference checked before insert.
type reference struct {
	collection string
	key        string
	exists     func(ctx context.Context) (bool, error)
}

func refTo[T any](coll store.Collection[T], collection, field, key string) reference {
	return reference{
		collection: collection,
		key:        key,
		exists: func(ctx context.Context) (bool, error) {
			doc, err := coll.FindOne(ctx, store.Filter{field: key})
			return doc != nil, err
		},
	}
}

// operator holds what the five CRUD services have in common: a collection,
// the business key field and the field update/delete are addressed by.
type operator[T any] struct {
	collection  string
	coll        func() store.Collection[T]
	keyField    string
	key         func(*T) string
	lookupField string
	v           *validator.Validate

	// checkRefsOnConflict keeps evaluating reference checks after a
	// duplicate key was found, so every failure is reported at once.
	checkRefsOnConflict bool
}

// add validates doc, checks key uniqueness, the optional guards and the
// soft references, then inserts.
func (o operator[T]) add(ctx context.Context, doc *T, refs []reference, guards ...func(context.Context, *T) error) (err error) {
	defer func() { o.record("add", err) }()

	if err := validateStruct(o.v, doc); err != nil {
		return err
	}

	key := o.key(doc)
	var errs []error

	existing, err := o.coll().FindOne(ctx, store.Filter{o.keyField: key})
	if err != nil {
		return err
	}
	if existing != nil {
		errs = append(errs, &ConflictError{Collection: o.collection, Key: key})
		if !o.checkRefsOnConflict {
			return errs[0]
		}
	}

	for _, guard := range guards {
		if err := guard(ctx, doc); err != nil {
			return errors.Join(append(errs, err)...)
		}
	}

	for _, ref := range refs {
		ok, err := ref.exists(ctx)
		if err != nil {
			return err
		}
		if !ok {
			errs = append(errs, &ReferenceError{Collection: ref.collection, Key: ref.key})
			break
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if err := o.coll().Insert(ctx, doc); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return &ConflictError{Collection: o.collection, Key: key}
		}
		return err
	}
	return nil
}

// update loads the record addressed by lookup, asks diff for the fields
// that differ and writes only those. It reports false when nothing changed.
func (o operator[T]) update(ctx context.Context, lookup string, diff func(cur *T) (changeSet, error)) (changed bool, err error) {
	defer func() { o.record("update", err) }()

	cur, err := o.coll().FindOne(ctx, store.Filter{o.lookupField: lookup})
	if err != nil {
		return false, err
	}
	if cur == nil {
		return false, &NotFoundError{Collection: o.collection, Key: lookup}
	}

	changes, err := diff(cur)
	if err != nil {
		return false, err
	}
	if len(changes) == 0 {
		return false, nil
	}

	matched, err := o.coll().UpdateFields(ctx, store.Filter{o.keyField: o.key(cur)}, changes)
	if err != nil {
		return false, err
	}
	if matched == 0 {
		return false, &NotFoundError{Collection: o.collection, Key: lookup}
	}
	return true, nil
}

func (o operator[T]) delete(ctx context.Context, lookup string) (err error) {
	defer func() { o.record("delete", err) }()

	n, err := o.coll().DeleteOne(ctx, store.Filter{o.lookupField: lookup})
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Collection: o.collection, Key: lookup}
	}
	return nil
}

func (o operator[T]) list(ctx context.Context) (docs []T, err error) {
	defer func() { o.record("list", err) }()

	docs, err = o.coll().Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (o operator[T]) record(operation string, err error) {
	outcome := Outcome(err)
	metrics.RecordOperation(o.collection, operation, outcome)
	if outcome == "error" {
		logrus.WithError(err).WithFields(logrus.Fields{
			"collection": o.collection,
			"operation":  operation,
		}).Error("store operation failed")
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"sitecms/ent/predicate"
	"sitecms/ent/servicepage"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ServicePageDelete is the builder for deleting a ServicePage entity.
type ServicePageDelete struct {
	config
	hooks    []Hook
	mutation *ServicePageMutation
}

// Where appends a list predicates to the ServicePageDelete builder.
func (_d *ServicePageDelete) Where(ps ...predicate.ServicePage) *ServicePageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ServicePageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServicePageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ServicePageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(servicepage.Table, sqlgraph.NewFieldSpec(servicepage.FieldID, field.TypeInt64))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ServicePageDeleteOne is the builder for deleting a single ServicePage entity.
type ServicePageDeleteOne struct {
	_d *ServicePageDelete
}

// Where appends a list predicates to the ServicePageDelete builder.
func (_d *ServicePageDeleteOne) Where(ps ...predicate.ServicePage) *ServicePageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ServicePageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{servicepage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServicePageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

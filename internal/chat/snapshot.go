package chat

import (
	"context"

	"clarityflow/internal/company"
	"clarityflow/internal/domain"
	"clarityflow/internal/sale"
	"clarityflow/internal/task"
	"clarityflow/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// companySnapshot adalah bagian ChatContext yang sama untuk semua user dalam
// satu company; bagian User distempel per pemanggil.
type companySnapshot struct {
	Companies []company.Company
	Employees []domain.User
	Tasks     []task.Task
	Sales     []sale.Sale
}

// SnapshotBuilder merakit ChatContext untuk reasoner. Burst request dari
// company yang sama di-collapse lewat singleflight supaya storage tidak
// dibaca berulang untuk snapshot identik.
type SnapshotBuilder struct {
	companies company.Service
	users     user.Service
	tasks     task.Service
	sales     sale.Service
	group     singleflight.Group
	logger    *zap.Logger
}

func NewSnapshotBuilder(
	companies company.Service,
	users user.Service,
	tasks task.Service,
	sales sale.Service,
	logger ...*zap.Logger,
) *SnapshotBuilder {
	l := zap.L().Named("chat.snapshot")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.snapshot")
	}
	return &SnapshotBuilder{
		companies: companies,
		users:     users,
		tasks:     tasks,
		sales:     sales,
		logger:    l,
	}
}

// Build mengambil snapshot company milik actor lalu menempelkan actor sebagai
// User. Bagian yang gagal dibaca diisi slice kosong, bukan error: konteks
// reasoner boleh parsial.
func (b *SnapshotBuilder) Build(ctx context.Context, actor domain.User) ChatContext {
	v, _, _ := b.group.Do(actor.CompanyID, func() (any, error) {
		return b.build(ctx, actor), nil
	})
	snap := v.(companySnapshot)

	return ChatContext{
		User:      actor,
		Companies: snap.Companies,
		Employees: snap.Employees,
		Tasks:     snap.Tasks,
		Sales:     snap.Sales,
	}
}

func (b *SnapshotBuilder) build(ctx context.Context, actor domain.User) companySnapshot {
	snap := companySnapshot{
		Companies: []company.Company{},
		Employees: []domain.User{},
		Tasks:     []task.Task{},
		Sales:     []sale.Sale{},
	}

	if c, err := b.companies.Get(ctx, actor.CompanyID); err == nil && c != nil {
		snap.Companies = []company.Company{*c}
	} else if err != nil {
		b.logger.Debug("snapshot company skipped", zap.Error(err))
	}

	if employees, err := b.users.GetAllByCompany(ctx, actor.CompanyID); err == nil {
		snap.Employees = employees
	} else {
		b.logger.Debug("snapshot employees skipped", zap.Error(err))
	}

	if tasks, err := b.tasks.GetAll(ctx, actor.CompanyID); err == nil {
		snap.Tasks = tasks
	} else {
		b.logger.Debug("snapshot tasks skipped", zap.Error(err))
	}

	if sales, err := b.sales.GetAll(ctx, actor.CompanyID); err == nil {
		snap.Sales = sales
	} else {
		b.logger.Debug("snapshot sales skipped", zap.Error(err))
	}

	return snap
}

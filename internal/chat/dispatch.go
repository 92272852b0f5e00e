package chat

import (
	"context"
	"encoding/json"

	"clarityflow/internal/appointment"
	"clarityflow/internal/domain"
	"clarityflow/internal/sale"
	"clarityflow/internal/shared/contextutil"
	"clarityflow/internal/task"
	"clarityflow/internal/user"

	"go.uber.org/zap"
)

// Dispatcher mengeksekusi mutasi yang diminta balasan remote service.
// Semua kegagalan mutator (permission, validasi) ditelan dan dicatat di
// sini: orchestrator sengaja diinsulasi dari kegagalan dispatch supaya
// percakapan tetap jalan.
type Dispatcher struct {
	tasks        task.Service
	appointments appointment.Service
	sales        sale.Service
	users        user.Service
	logger       *zap.Logger
}

func NewDispatcher(
	tasks task.Service,
	appointments appointment.Service,
	sales sale.Service,
	users user.Service,
	logger ...*zap.Logger,
) *Dispatcher {
	l := zap.L().Named("chat.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.dispatcher")
	}
	return &Dispatcher{
		tasks:        tasks,
		appointments: appointments,
		sales:        sales,
		users:        users,
		logger:       l,
	}
}

// decodeInto memindahkan payload map ke DTO mutator lewat round-trip JSON.
func decodeInto(data map[string]any, dest any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// PerformAction men-stamp company scope actor ke payload lalu mem-routing
// ke mutator yang cocok. Hanya create yang diimplementasikan; kombinasi
// (type, action) lain dicatat dan diabaikan tanpa error ke caller.
func (d *Dispatcher) PerformAction(ctx context.Context, typ, action string, data map[string]any, actor domain.User) {
	if data == nil {
		data = map[string]any{}
	}
	data["companyId"] = actor.CompanyID

	var err error
	switch {
	case typ == "task" && action == "create":
		var req task.CreateTaskRequest
		if err = decodeInto(data, &req); err == nil {
			_, err = d.tasks.Create(ctx, actor, req)
		}
	case typ == "appointment" && action == "create":
		var req appointment.CreateAppointmentRequest
		if err = decodeInto(data, &req); err == nil {
			_, err = d.appointments.Create(ctx, actor, req)
		}
	case typ == "sale" && action == "create":
		var req sale.CreateSaleRequest
		if err = decodeInto(data, &req); err == nil {
			_, err = d.sales.Create(ctx, actor, req)
		}
	case typ == "employee" && action == "create":
		var req user.CreateEmployeeRequest
		if err = decodeInto(data, &req); err == nil {
			_, err = d.users.Create(ctx, actor, req)
		}
	default:
		d.logger.Warn("unknown action type",
			zap.String("type", typ),
			zap.String("action", action),
			zap.String("user_id", contextutil.GetUserID(ctx)),
		)
		return
	}

	if err != nil {
		d.logger.Error("error performing action",
			zap.String("type", typ),
			zap.String("action", action),
			zap.String("user_id", contextutil.GetUserID(ctx)),
			zap.Error(err),
		)
	}
}

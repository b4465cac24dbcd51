package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
	"github.com/krikodium/hermanascaradonti/internal/service"
)

// ── In-memory project / movement / order repositories ────────────────────────

type fakeProjectRepo struct {
	projects map[uuid.UUID]*model.Project
	order    []uuid.UUID
}

func newFakeProjectRepo(names ...string) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: make(map[uuid.UUID]*model.Project)}
	for _, name := range names {
		p := &model.Project{ID: uuid.New(), Name: name, ProjectType: model.ProjectDeco, Status: model.ProjectActive, CreatedBy: "seed"}
		r.projects[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakeProjectRepo) Create(_ context.Context, p *model.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.projects[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.IsArchived {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *fakeProjectRepo) FindByName(_ context.Context, name string) (*model.Project, error) {
	for _, p := range r.projects {
		if p.Name == name && !p.IsArchived {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeProjectRepo) List(_ context.Context, filter dto.ProjectFilter) ([]model.Project, int64, error) {
	var out []model.Project
	for _, id := range r.order {
		p := r.projects[id]
		if p.IsArchived && !filter.IncludeArchived {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProjectRepo) ListAll(_ context.Context) ([]model.Project, error) {
	var out []model.Project
	for _, id := range r.order {
		if p := r.projects[id]; !p.IsArchived {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *model.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) Archive(_ context.Context, id uuid.UUID) error {
	p, ok := r.projects[id]
	if !ok {
		return errors.New("not found")
	}
	p.IsArchived = true
	return nil
}

var _ repository.ProjectRepository = (*fakeProjectRepo)(nil)

type fakeMovementRepo struct {
	movements []model.StudioMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *model.StudioMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeMovementRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StudioMovement, error) {
	for i := range r.movements {
		if r.movements[i].ID == id {
			return &r.movements[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeMovementRepo) List(_ context.Context, filter dto.StudioMovementFilter) ([]model.StudioMovement, int64, error) {
	if filter.Project != "" {
		out, _ := r.ListByProject(context.Background(), filter.Project)
		return out, int64(len(out)), nil
	}
	return append([]model.StudioMovement(nil), r.movements...), int64(len(r.movements)), nil
}

func (r *fakeMovementRepo) ListByProject(_ context.Context, projectName string) ([]model.StudioMovement, error) {
	var out []model.StudioMovement
	for _, m := range r.movements {
		if m.ProjectName == projectName {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListAll(_ context.Context) ([]model.StudioMovement, error) {
	return append([]model.StudioMovement(nil), r.movements...), nil
}

func (r *fakeMovementRepo) SaveAll(_ context.Context, movements []model.StudioMovement) error {
	for _, m := range movements {
		for i := range r.movements {
			if r.movements[i].ID == m.ID {
				r.movements[i] = m
				break
			}
		}
	}
	return nil
}

var _ repository.StudioMovementRepository = (*fakeMovementRepo)(nil)

type fakeOrderRepo struct {
	orders []model.DisbursementOrder
}

func (r *fakeOrderRepo) Create(_ context.Context, o *model.DisbursementOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DisbursementOrder, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return &r.orders[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeOrderRepo) ListByProject(_ context.Context, projectName string) ([]model.DisbursementOrder, error) {
	var out []model.DisbursementOrder
	for _, o := range r.orders {
		if o.ProjectName == projectName {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context) ([]model.DisbursementOrder, error) {
	return append([]model.DisbursementOrder(nil), r.orders...), nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *model.DisbursementOrder) error {
	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			r.orders[i] = *o
			return nil
		}
	}
	return errors.New("not found")
}

var _ repository.DisbursementOrderRepository = (*fakeOrderRepo)(nil)

func newStudioService(projects ...string) (service.StudioService, *fakeMovementRepo, *fakeOrderRepo) {
	movements := &fakeMovementRepo{}
	orders := &fakeOrderRepo{}
	svc := service.NewStudioService(movements, orders, newFakeProjectRepo(projects...))
	return svc, movements, orders
}

func movementRequest(project string, incomeARS, expenseARS float64) dto.CreateStudioMovementRequest {
	req := dto.CreateStudioMovementRequest{
		Date:        "2025-05-12",
		ProjectName: project,
		Description: "Movimiento de obra",
	}
	if incomeARS != 0 {
		req.IncomeARS = dec(incomeARS)
	}
	if expenseARS != 0 {
		req.ExpenseARS = dec(expenseARS)
	}
	return req
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateMovementUnknownProject(t *testing.T) {
	svc, _, _ := newStudioService("Alvear")

	_, err := svc.CreateMovement(context.Background(), "caro", movementRequest("Inexistente", 1000, 0))
	assert.ErrorContains(t, err, "el proyecto no existe")
}

func TestCreateMovementChainsRunningBalance(t *testing.T) {
	svc, movements, _ := newStudioService("Alvear")

	_, err := svc.CreateMovement(context.Background(), "caro", movementRequest("Alvear", 100000, 0))
	require.NoError(t, err)
	resp, err := svc.CreateMovement(context.Background(), "caro", movementRequest("Alvear", 0, 35000))
	require.NoError(t, err)

	assert.Equal(t, decimal.NewFromFloat(65000).String(), resp.RunningBalanceARS.String())

	// The whole persisted chain carries running balances
	chain, err := movements.ListByProject(context.Background(), "Alvear")
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, decimal.NewFromFloat(100000).String(), chain[0].RunningBalanceARS.String())
	assert.Equal(t, decimal.NewFromFloat(65000).String(), chain[1].RunningBalanceARS.String())
}

func TestMovementChainsAreScopedPerProject(t *testing.T) {
	svc, _, _ := newStudioService("Alvear", "Hotel Madero")

	_, err := svc.CreateMovement(context.Background(), "caro", movementRequest("Alvear", 100000, 0))
	require.NoError(t, err)
	resp, err := svc.CreateMovement(context.Background(), "caro", movementRequest("Hotel Madero", 20000, 0))
	require.NoError(t, err)

	// Hotel Madero's first movement starts its own chain
	assert.Equal(t, decimal.NewFromFloat(20000).String(), resp.RunningBalanceARS.String())
}

func TestCreateOrderDefaultsPriorityAndStatus(t *testing.T) {
	svc, _, _ := newStudioService("Alvear")

	resp, err := svc.CreateOrder(context.Background(), "caro", dto.CreateDisbursementOrderRequest{
		ProjectName:      "Alvear",
		DisbursementType: "supplier_payment",
		AmountARS:        dec(120000),
		Supplier:         "Maderera Sur",
		Description:      "Tablones de roble",
	})
	require.NoError(t, err)

	assert.Equal(t, "normal", resp.Priority)
	assert.Equal(t, string(model.DisbRequested), resp.Status)
}

func TestListOrdersDerivesOverdue(t *testing.T) {
	svc, _, orders := newStudioService("Alvear")

	due := "2025-01-01" // long past
	_, err := svc.CreateOrder(context.Background(), "caro", dto.CreateDisbursementOrderRequest{
		ProjectName:      "Alvear",
		DisbursementType: "materials",
		AmountARS:        dec(50000),
		Supplier:         "Maderera Sur",
		Description:      "Herrajes",
		DueDate:          &due,
	})
	require.NoError(t, err)

	list, err := svc.ListOrders(context.Background(), "Alvear")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, string(model.DisbOverdue), list[0].Status)

	// Derived only: the stored row keeps its real status
	assert.Equal(t, model.DisbRequested, orders.orders[0].Status)
}

func TestStudioSummaryCountsOverdue(t *testing.T) {
	svc, _, _ := newStudioService("Alvear")

	_, err := svc.CreateMovement(context.Background(), "caro", movementRequest("Alvear", 100000, 0))
	require.NoError(t, err)

	due := "2025-01-01"
	_, err = svc.CreateOrder(context.Background(), "caro", dto.CreateDisbursementOrderRequest{
		ProjectName:      "Alvear",
		DisbursementType: "materials",
		AmountARS:        dec(50000),
		Supplier:         "Maderera Sur",
		Description:      "Herrajes",
		DueDate:          &due,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalMovements)
	assert.Equal(t, 1, summary.OverduePayments)
	assert.Contains(t, summary.ByProject, "Alvear")
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/goals/domain"
)

// fakeGoals backs both stores; milestones resolve ownership through their
// goal the same way the SQL joins do.
type fakeGoals struct {
	nextGoalID      int
	nextMilestoneID int
	goals           map[int]domain.Goal
	milestones      map[int]domain.Milestone
}

func newFakeGoals() *fakeGoals {
	return &fakeGoals{
		nextGoalID:      1,
		nextMilestoneID: 1,
		goals:           map[int]domain.Goal{},
		milestones:      map[int]domain.Milestone{},
	}
}

func (f *fakeGoals) List(_ context.Context, userID int) ([]domain.Goal, error) {
	out := []domain.Goal{}
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoals) GetByID(_ context.Context, id, userID int) (*domain.Goal, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &g, nil
}

func (f *fakeGoals) Create(_ context.Context, n domain.NewGoal) (*domain.Goal, error) {
	g := domain.Goal{
		ID:       f.nextGoalID,
		Title:    n.Title,
		Status:   n.Status,
		Progress: n.Progress,
		UserID:   n.UserID,
	}
	f.nextGoalID++
	f.goals[g.ID] = g
	return &g, nil
}

func (f *fakeGoals) Update(_ context.Context, id, userID int, patch domain.GoalPatch) (*domain.Goal, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Progress != nil {
		g.Progress = *patch.Progress
	}
	f.goals[id] = g
	return &g, nil
}

func (f *fakeGoals) Delete(_ context.Context, id, userID int) error {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.goals, id)
	for mid, m := range f.milestones {
		if m.GoalID == id {
			delete(f.milestones, mid)
		}
	}
	return nil
}

func (f *fakeGoals) owns(goalID, userID int) bool {
	g, ok := f.goals[goalID]
	return ok && g.UserID == userID
}

func (f *fakeGoals) ListByGoal(_ context.Context, goalID, userID int) ([]domain.Milestone, error) {
	if !f.owns(goalID, userID) {
		return []domain.Milestone{}, nil
	}
	out := []domain.Milestone{}
	for _, m := range f.milestones {
		if m.GoalID == goalID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeGoals) CreateMilestone(_ context.Context, n domain.NewMilestone, userID int) (*domain.Milestone, error) {
	if !f.owns(n.GoalID, userID) {
		return nil, domain.ErrNotFound
	}
	m := domain.Milestone{ID: f.nextMilestoneID, GoalID: n.GoalID, Title: n.Title}
	f.nextMilestoneID++
	f.milestones[m.ID] = m
	return &m, nil
}

func (f *fakeGoals) UpdateMilestone(_ context.Context, id, userID int, patch domain.MilestonePatch) (*domain.Milestone, error) {
	m, ok := f.milestones[id]
	if !ok || !f.owns(m.GoalID, userID) {
		return nil, domain.ErrMilestoneNotFound
	}
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Completed != nil {
		m.Completed = *patch.Completed
	}
	f.milestones[id] = m
	return &m, nil
}

func (f *fakeGoals) DeleteMilestone(_ context.Context, id, userID int) error {
	m, ok := f.milestones[id]
	if !ok || !f.owns(m.GoalID, userID) {
		return domain.ErrMilestoneNotFound
	}
	delete(f.milestones, id)
	return nil
}

// milestoneStore adapts fakeGoals to the MilestoneStore method names.
type milestoneStore struct{ *fakeGoals }

func (s milestoneStore) Create(ctx context.Context, n domain.NewMilestone, userID int) (*domain.Milestone, error) {
	return s.CreateMilestone(ctx, n, userID)
}

func (s milestoneStore) Update(ctx context.Context, id, userID int, patch domain.MilestonePatch) (*domain.Milestone, error) {
	return s.UpdateMilestone(ctx, id, userID, patch)
}

func (s milestoneStore) Delete(ctx context.Context, id, userID int) error {
	return s.DeleteMilestone(ctx, id, userID)
}

func setup(userID int) (*gin.Engine, *fakeGoals) {
	gin.SetMode(gin.TestMode)
	store := newFakeGoals()
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(auth.CtxUserID, userID) })
	New(store, milestoneStore{store}, zap.NewNop()).
		Register(r.Group("/api/goals"), r.Group("/api/milestones"))
	return r, store
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateGoalAndMilestone(t *testing.T) {
	r, _ := setup(1)

	w := do(r, http.MethodPost, "/api/goals", `{"title":"Reach $5k monthly revenue"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var g domain.Goal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))

	w = do(r, http.MethodPost, "/api/milestones", `{"goalId":1,"title":"Sign two retainers"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var m domain.Milestone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, g.ID, m.GoalID)
	assert.False(t, m.Completed)
}

func TestListMilestonesRequiresGoalID(t *testing.T) {
	r, _ := setup(1)

	w := do(r, http.MethodGet, "/api/milestones", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMilestoneForForeignGoalIsRejected(t *testing.T) {
	r, store := setup(1)
	store.goals[99] = domain.Goal{ID: 99, Title: "not yours", UserID: 2}

	w := do(r, http.MethodPost, "/api/milestones", `{"goalId":99,"title":"sneaky"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.milestones)
}

func TestToggleMilestone(t *testing.T) {
	r, store := setup(1)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/goals", `{"title":"Ship portfolio site"}`).Code)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/milestones", `{"goalId":1,"title":"Write case study"}`).Code)

	w := do(r, http.MethodPatch, "/api/milestones/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.milestones[1].Completed)
}

func TestDeleteGoalRemovesItsMilestones(t *testing.T) {
	r, store := setup(1)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/goals", `{"title":"Grow newsletter"}`).Code)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/milestones", `{"goalId":1,"title":"First 100 subs"}`).Code)

	w := do(r, http.MethodDelete, "/api/goals/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.goals)
	assert.Empty(t, store.milestones)
}

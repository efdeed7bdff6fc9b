package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"stayease/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	user.Version++
	m.users[user.UserID] = user
	return nil
}

// ── Mock MenuItemRepository ──

type mockMenuItemRepo struct {
	items map[string]*model.MenuItem
	seq   int
}

func newMockMenuItemRepo() *mockMenuItemRepo {
	return &mockMenuItemRepo{items: make(map[string]*model.MenuItem)}
}

func (m *mockMenuItemRepo) Create(_ context.Context, item *model.MenuItem) error {
	if item.MenuItemID == "" {
		m.seq++
		item.MenuItemID = fmt.Sprintf("item-%d", m.seq)
	}
	m.items[item.MenuItemID] = item
	return nil
}

func (m *mockMenuItemRepo) GetByID(_ context.Context, id string) (*model.MenuItem, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuItemRepo) List(_ context.Context) ([]model.MenuItem, error) {
	var result []model.MenuItem
	for _, item := range m.items {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MenuItemID < result[j].MenuItemID })
	return result, nil
}

func (m *mockMenuItemRepo) Update(_ context.Context, item *model.MenuItem) error {
	if _, ok := m.items[item.MenuItemID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[item.MenuItemID] = item
	return nil
}

func (m *mockMenuItemRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── Mock PreorderRepository ──

type mockPreorderRepo struct {
	orders  map[string]*model.Preorder
	seq     int
	failing bool // 置为 true 模拟写入失败
}

func newMockPreorderRepo() *mockPreorderRepo {
	return &mockPreorderRepo{orders: make(map[string]*model.Preorder)}
}

func (m *mockPreorderRepo) Create(_ context.Context, order *model.Preorder) error {
	if m.failing {
		return fmt.Errorf("模拟写入失败")
	}
	if order.PreorderID == "" {
		m.seq++
		order.PreorderID = fmt.Sprintf("order-%d", m.seq)
	}
	m.orders[order.PreorderID] = order
	return nil
}

func (m *mockPreorderRepo) GetByID(_ context.Context, id string) (*model.Preorder, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPreorderRepo) ListByStudent(_ context.Context, studentID string) ([]model.Preorder, error) {
	var result []model.Preorder
	for _, o := range m.orders {
		if o.StudentID == studentID {
			result = append(result, *o)
		}
	}
	// order_time 降序，与存储层一致
	sort.Slice(result, func(i, j int) bool { return result[i].OrderTime > result[j].OrderTime })
	return result, nil
}

func (m *mockPreorderRepo) ListByDay(_ context.Context, day string) ([]model.Preorder, error) {
	var result []model.Preorder
	for _, o := range m.orders {
		if o.Day == day {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OrderTime < result[j].OrderTime })
	return result, nil
}

func (m *mockPreorderRepo) UpdateStatus(_ context.Context, id, fromStatus, toStatus string) (int64, error) {
	o, ok := m.orders[id]
	if !ok || o.Status != fromStatus {
		return 0, nil
	}
	o.Status = toStatus
	return 1, nil
}

func (m *mockPreorderRepo) Delete(_ context.Context, id string) error {
	delete(m.orders, id)
	return nil
}

// ── Mock LeaveRequestRepository ──

type mockLeaveRequestRepo struct {
	requests map[string]*model.LeaveRequest
	seq      int
}

func newMockLeaveRequestRepo() *mockLeaveRequestRepo {
	return &mockLeaveRequestRepo{requests: make(map[string]*model.LeaveRequest)}
}

func (m *mockLeaveRequestRepo) Create(_ context.Context, req *model.LeaveRequest) error {
	if req.LeaveRequestID == "" {
		m.seq++
		req.LeaveRequestID = fmt.Sprintf("leave-%d", m.seq)
	}
	m.requests[req.LeaveRequestID] = req
	return nil
}

func (m *mockLeaveRequestRepo) ListByStudent(_ context.Context, studentID string) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, r := range m.requests {
		if r.StudentID == studentID {
			result = append(result, *r)
		}
	}
	// submitted_at_ms 降序，与存储层一致
	sort.Slice(result, func(i, j int) bool { return result[i].SubmittedAtMs > result[j].SubmittedAtMs })
	return result, nil
}

// ── Mock FoodMenuRepository ──

type mockFoodMenuRepo struct {
	menus map[string]*model.FoodMenu // key = day
	seq   int
}

func newMockFoodMenuRepo() *mockFoodMenuRepo {
	return &mockFoodMenuRepo{menus: make(map[string]*model.FoodMenu)}
}

func (m *mockFoodMenuRepo) List(_ context.Context) ([]model.FoodMenu, error) {
	var result []model.FoodMenu
	for _, fm := range m.menus {
		result = append(result, *fm)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FoodMenuID < result[j].FoodMenuID })
	return result, nil
}

func (m *mockFoodMenuRepo) GetByDay(_ context.Context, day string) (*model.FoodMenu, error) {
	if fm, ok := m.menus[day]; ok {
		return fm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFoodMenuRepo) Upsert(_ context.Context, menu *model.FoodMenu) error {
	if existing, ok := m.menus[menu.Day]; ok {
		menu.FoodMenuID = existing.FoodMenuID
	} else if menu.FoodMenuID == "" {
		m.seq++
		menu.FoodMenuID = fmt.Sprintf("menu-%d", m.seq)
	}
	m.menus[menu.Day] = menu
	return nil
}

// ── Mock ComplaintRepository ──

type mockComplaintRepo struct {
	complaints map[string]*model.Complaint
	seq        int
}

func newMockComplaintRepo() *mockComplaintRepo {
	return &mockComplaintRepo{complaints: make(map[string]*model.Complaint)}
}

func (m *mockComplaintRepo) Create(_ context.Context, complaint *model.Complaint) error {
	if complaint.ComplaintID == "" {
		m.seq++
		complaint.ComplaintID = fmt.Sprintf("complaint-%d", m.seq)
	}
	m.complaints[complaint.ComplaintID] = complaint
	return nil
}

func (m *mockComplaintRepo) ListByStudent(_ context.Context, studentID string) ([]model.Complaint, error) {
	var result []model.Complaint
	for _, c := range m.complaints {
		if c.StudentID == studentID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SubmittedAtMs > result[j].SubmittedAtMs })
	return result, nil
}

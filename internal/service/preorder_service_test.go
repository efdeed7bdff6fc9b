package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"stayease/internal/dto"
	"stayease/internal/model"
	"stayease/internal/repository"
)

// ── 测试辅助 ──

func setupTestPreorderService() (*preorderService, *mockPreorderRepo, *mockMenuItemRepo) {
	preorderRepo := newMockPreorderRepo()
	menuItemRepo := newMockMenuItemRepo()
	repo := &repository.Repository{
		User:         newMockUserRepo(),
		MenuItem:     menuItemRepo,
		Preorder:     preorderRepo,
		LeaveRequest: newMockLeaveRequestRepo(),
		FoodMenu:     newMockFoodMenuRepo(),
		Complaint:    newMockComplaintRepo(),
	}
	svc := NewPreorderService(repo, zap.NewNop()).(*preorderService)
	// 固定时钟，下单时间可预期
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 12, 30, 45, 0, time.UTC)
	}
	return svc, preorderRepo, menuItemRepo
}

func seedMenuItem(t *testing.T, menuItemRepo *mockMenuItemRepo, day, food string) *model.MenuItem {
	t.Helper()
	item := &model.MenuItem{Day: day, Food: food}
	if err := menuItemRepo.Create(context.Background(), item); err != nil {
		t.Fatalf("写入菜单条目失败: %v", err)
	}
	return item
}

// ── PlaceOrder 测试 ──

func TestPreorderService_PlaceOrder_Success(t *testing.T) {
	svc, _, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")

	result, err := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: item.MenuItemID,
		Quantity:   2,
	})
	if err != nil {
		t.Fatalf("PlaceOrder 应成功: %v", err)
	}
	if result.Status != model.PreorderStatusPending {
		t.Errorf("期望Status=pending，实际=%s", result.Status)
	}
	if result.Quantity != 2 {
		t.Errorf("期望Quantity=2，实际=%d", result.Quantity)
	}
	if result.OrderTime != "2026-03-02 12:30:45" {
		t.Errorf("期望OrderTime=2026-03-02 12:30:45，实际=%s", result.OrderTime)
	}
	if result.Food != "Veg Meals" || result.Day != "Monday" {
		t.Errorf("菜品快照不正确: food=%s day=%s", result.Food, result.Day)
	}
}

func TestPreorderService_PlaceOrder_QuantityClamped(t *testing.T) {
	svc, _, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")

	cases := []struct {
		in   int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{5, 5},
		{99, 5},
	}
	for _, c := range cases {
		result, err := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   c.in,
		})
		if err != nil {
			t.Fatalf("PlaceOrder(quantity=%d) 应成功: %v", c.in, err)
		}
		if result.Quantity != c.want {
			t.Errorf("quantity=%d 期望收敛到 %d，实际=%d", c.in, c.want, result.Quantity)
		}
	}
}

func TestPreorderService_PlaceOrder_MenuItemNotFound(t *testing.T) {
	svc, _, _ := setupTestPreorderService()

	_, err := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: "no-such-item",
		Quantity:   1,
	})
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("期望 ErrMenuItemNotFound，实际: %v", err)
	}
}

func TestPreorderService_PlaceOrder_CreateFails(t *testing.T) {
	svc, preorderRepo, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")
	preorderRepo.failing = true

	_, err := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: item.MenuItemID,
		Quantity:   1,
	})
	if !errors.Is(err, ErrOrderPlacementFailed) {
		t.Errorf("期望 ErrOrderPlacementFailed，实际: %v", err)
	}
	// 失败下单不留部分状态
	orders, _ := preorderRepo.ListByStudent(context.Background(), "stu-001")
	if len(orders) != 0 {
		t.Errorf("失败下单不应留下记录，实际=%d 条", len(orders))
	}
}

func TestPreorderService_PlaceOrder_QRPayloadFormat(t *testing.T) {
	svc, _, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Friday", "Chicken Biryani")

	result, err := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: item.MenuItemID,
		Quantity:   3,
	})
	if err != nil {
		t.Fatalf("PlaceOrder 应成功: %v", err)
	}

	lines := strings.Split(result.QRPayload, "\n")
	if len(lines) != 6 {
		t.Fatalf("期望载荷 6 行，实际=%d", len(lines))
	}
	wants := []string{
		"Order ID: " + result.ID,
		"Student: Kishor",
		"Food: Chicken Biryani",
		"Day: Friday",
		"Quantity: 3",
		"Time: 2026-03-02 12:30:45",
	}
	for i, want := range wants {
		if lines[i] != want {
			t.Errorf("第 %d 行期望 %q，实际 %q", i+1, want, lines[i])
		}
	}
}

// ── CancelOrder 测试 ──

func TestPreorderService_CancelOrder_Success(t *testing.T) {
	svc, preorderRepo, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")

	placed, err := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: item.MenuItemID,
		Quantity:   1,
	})
	if err != nil {
		t.Fatalf("PlaceOrder 应成功: %v", err)
	}

	if err := svc.CancelOrder(context.Background(), "stu-001", placed.ID); err != nil {
		t.Fatalf("CancelOrder 应成功: %v", err)
	}

	// 取消是状态更新而非删除：记录保留，状态迁移
	order, err := preorderRepo.GetByID(context.Background(), placed.ID)
	if err != nil {
		t.Fatalf("取消后记录应保留: %v", err)
	}
	if order.Status != model.PreorderStatusCancelled {
		t.Errorf("期望Status=cancelled，实际=%s", order.Status)
	}
}

func TestPreorderService_CancelOrder_SecondCancelRejected(t *testing.T) {
	svc, _, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")

	placed, _ := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: item.MenuItemID,
		Quantity:   1,
	})

	if err := svc.CancelOrder(context.Background(), "stu-001", placed.ID); err != nil {
		t.Fatalf("第一次取消应成功: %v", err)
	}
	err := svc.CancelOrder(context.Background(), "stu-001", placed.ID)
	if !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("重复取消期望 ErrInvalidStateTransition，实际: %v", err)
	}
}

func TestPreorderService_CancelOrder_NotOwned(t *testing.T) {
	svc, _, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")

	placed, _ := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: item.MenuItemID,
		Quantity:   1,
	})

	err := svc.CancelOrder(context.Background(), "stu-002", placed.ID)
	if !errors.Is(err, ErrOrderNotOwned) {
		t.Errorf("越权取消期望 ErrOrderNotOwned，实际: %v", err)
	}
}

func TestPreorderService_CancelOrder_NotFound(t *testing.T) {
	svc, _, _ := setupTestPreorderService()

	err := svc.CancelOrder(context.Background(), "stu-001", "no-such-order")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("期望 ErrOrderNotFound，实际: %v", err)
	}
}

// ── PurgeOrder 测试 ──

func TestPreorderService_PurgeOrder_RemovesRecord(t *testing.T) {
	svc, preorderRepo, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")

	placed, _ := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
		MenuItemID: item.MenuItemID,
		Quantity:   1,
	})

	if err := svc.PurgeOrder(context.Background(), "stu-001", placed.ID); err != nil {
		t.Fatalf("PurgeOrder 应成功: %v", err)
	}
	if _, err := preorderRepo.GetByID(context.Background(), placed.ID); err == nil {
		t.Error("硬删除后记录不应存在")
	}
}

// ── ListOrders 测试 ──

func TestPreorderService_ListOrders_NewestFirst(t *testing.T) {
	svc, _, menuItemRepo := setupTestPreorderService()
	item := seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		offset := time.Duration(i) * time.Hour
		svc.now = func() time.Time { return base.Add(offset) }
		if _, err := svc.PlaceOrder(context.Background(), "stu-001", "Kishor", &dto.PlaceOrderRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   1,
		}); err != nil {
			t.Fatalf("PlaceOrder 应成功: %v", err)
		}
	}

	orders, err := svc.ListOrders(context.Background(), "stu-001")
	if err != nil {
		t.Fatalf("ListOrders 应成功: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("期望 3 条记录，实际=%d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i-1].OrderTime < orders[i].OrderTime {
			t.Errorf("预订列表应最近在前: %s 在 %s 之前", orders[i-1].OrderTime, orders[i].OrderTime)
		}
	}
}

// ── ListMenu 测试 ──

func TestPreorderService_ListMenu_WeekdayOrder(t *testing.T) {
	svc, _, menuItemRepo := setupTestPreorderService()
	seedMenuItem(t, menuItemRepo, "Wednesday", "Noodles")
	seedMenuItem(t, menuItemRepo, "Monday", "Veg Meals")
	seedMenuItem(t, menuItemRepo, "Sunday", "Special")

	items, err := svc.ListMenu(context.Background())
	if err != nil {
		t.Fatalf("ListMenu 应成功: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("期望 3 条菜单，实际=%d", len(items))
	}
	wantDays := []string{"Monday", "Wednesday", "Sunday"}
	for i, want := range wantDays {
		if items[i].Day != want {
			t.Errorf("第 %d 项期望Day=%s，实际=%s", i, want, items[i].Day)
		}
	}
}

// ── 目录维护测试 ──

func TestPreorderService_MenuItemCRUD(t *testing.T) {
	svc, _, _ := setupTestPreorderService()
	ctx := context.Background()

	created, err := svc.CreateMenuItem(ctx, &dto.CreateMenuItemRequest{
		Day:  "monday",
		Food: "Veg Meals",
	}, "admin-001")
	if err != nil {
		t.Fatalf("CreateMenuItem 应成功: %v", err)
	}
	if created.Day != "Monday" {
		t.Errorf("day 应规范化为 Monday，实际=%s", created.Day)
	}

	newFood := "Paneer Rice"
	updated, err := svc.UpdateMenuItem(ctx, created.ID, &dto.UpdateMenuItemRequest{Food: &newFood}, "admin-001")
	if err != nil {
		t.Fatalf("UpdateMenuItem 应成功: %v", err)
	}
	if updated.Food != "Paneer Rice" {
		t.Errorf("期望Food=Paneer Rice，实际=%s", updated.Food)
	}

	if err := svc.DeleteMenuItem(ctx, created.ID); err != nil {
		t.Fatalf("DeleteMenuItem 应成功: %v", err)
	}
	if err := svc.DeleteMenuItem(ctx, created.ID); !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("重复删除期望 ErrMenuItemNotFound，实际: %v", err)
	}
}

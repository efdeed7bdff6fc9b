package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"stayease/internal/dto"
	"stayease/internal/repository"
)

// ── 测试辅助 ──

func setupTestMenuService() (MenuService, *mockFoodMenuRepo) {
	foodMenuRepo := newMockFoodMenuRepo()
	repo := &repository.Repository{
		User:         newMockUserRepo(),
		MenuItem:     newMockMenuItemRepo(),
		Preorder:     newMockPreorderRepo(),
		LeaveRequest: newMockLeaveRequestRepo(),
		FoodMenu:     foodMenuRepo,
		Complaint:    newMockComplaintRepo(),
	}
	return NewMenuService(repo, zap.NewNop()), foodMenuRepo
}

// ── GetWeeklyMenu 测试 ──

func TestMenuService_GetWeeklyMenu_WeekdayOrder(t *testing.T) {
	svc, _ := setupTestMenuService()
	ctx := context.Background()

	// 乱序写入，含一个无法识别的 day
	for _, day := range []string{"Wednesday", "Monday", "BadDay"} {
		if _, err := svc.UpsertDayMenu(ctx, &dto.UpsertFoodMenuRequest{Day: day, Menu: "Breakfast: Idli"}); err != nil {
			t.Fatalf("UpsertDayMenu(%s) 应成功: %v", day, err)
		}
	}

	menus, err := svc.GetWeeklyMenu(ctx)
	if err != nil {
		t.Fatalf("GetWeeklyMenu 应成功: %v", err)
	}
	if len(menus) != 3 {
		t.Fatalf("期望 3 天菜单，实际=%d", len(menus))
	}
	// 周一在前，无法识别的 day 排末尾
	wantDays := []string{"Monday", "Wednesday", "BadDay"}
	for i, want := range wantDays {
		if menus[i].Day != want {
			t.Errorf("第 %d 天期望=%s，实际=%s", i, want, menus[i].Day)
		}
	}
}

// ── UpsertDayMenu 测试 ──

func TestMenuService_UpsertDayMenu_ReplacesExisting(t *testing.T) {
	svc, foodMenuRepo := setupTestMenuService()
	ctx := context.Background()

	first, err := svc.UpsertDayMenu(ctx, &dto.UpsertFoodMenuRequest{Day: "Monday", Menu: "Breakfast: Idli"})
	if err != nil {
		t.Fatalf("UpsertDayMenu 应成功: %v", err)
	}
	result, err := svc.UpsertDayMenu(ctx, &dto.UpsertFoodMenuRequest{Day: "monday", Menu: "Breakfast: Dosa"})
	if err != nil {
		t.Fatalf("覆盖写入应成功: %v", err)
	}
	if result.Day != "Monday" {
		t.Errorf("day 应规范化为 Monday，实际=%s", result.Day)
	}
	// 覆盖写入返回已存行，ID 不变
	if result.ID != first.ID {
		t.Errorf("覆盖写入后 ID 应保持不变，期望=%s，实际=%s", first.ID, result.ID)
	}

	// 同一天只保留一条，内容被覆盖
	if len(foodMenuRepo.menus) != 1 {
		t.Fatalf("同一天应只有一条菜单，实际=%d", len(foodMenuRepo.menus))
	}
	stored, _ := foodMenuRepo.GetByDay(ctx, "Monday")
	if stored.Menu != "Breakfast: Dosa" {
		t.Errorf("菜单内容应被覆盖，实际=%s", stored.Menu)
	}
}

// ── parseMenuText 测试 ──

func TestParseMenuText(t *testing.T) {
	meals := parseMenuText("Breakfast: Idli,Vada; Lunch: Rice,Sambar ; Snacks")
	if len(meals) != 3 {
		t.Fatalf("期望 3 个餐别，实际=%d", len(meals))
	}
	if meals[0].MealType != "Breakfast" || meals[0].Items != "Idli, Vada" {
		t.Errorf("第 1 餐解析错误: %+v", meals[0])
	}
	if meals[1].MealType != "Lunch" || meals[1].Items != "Rice, Sambar" {
		t.Errorf("第 2 餐解析错误: %+v", meals[1])
	}
	// 无冒号的段整体作为菜品
	if meals[2].MealType != "" || meals[2].Items != "Snacks" {
		t.Errorf("第 3 餐解析错误: %+v", meals[2])
	}
}

func TestParseMenuText_EmptyAndBlankSegments(t *testing.T) {
	if meals := parseMenuText(""); len(meals) != 0 {
		t.Errorf("空文本应解析为空列表，实际=%d", len(meals))
	}
	meals := parseMenuText("; ;Breakfast: Idli;")
	if len(meals) != 1 {
		t.Fatalf("空段应被跳过，实际=%d 个餐别", len(meals))
	}
	if meals[0].MealType != "Breakfast" {
		t.Errorf("期望MealType=Breakfast，实际=%s", meals[0].MealType)
	}
}

// ── normalizeDay 测试 ──

func TestNormalizeDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"monday", "Monday"},
		{" MONDAY ", "MONDAY"},
		{"friday", "Friday"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalizeDay(c.in); got != c.want {
			t.Errorf("normalizeDay(%q) 期望=%q，实际=%q", c.in, c.want, got)
		}
	}
}

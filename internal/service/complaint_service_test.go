package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"stayease/internal/dto"
	"stayease/internal/model"
	"stayease/internal/repository"
)

// ── 测试辅助 ──

func setupTestComplaintService() (*complaintService, *mockComplaintRepo) {
	complaintRepo := newMockComplaintRepo()
	repo := &repository.Repository{
		User:         newMockUserRepo(),
		MenuItem:     newMockMenuItemRepo(),
		Preorder:     newMockPreorderRepo(),
		LeaveRequest: newMockLeaveRequestRepo(),
		FoodMenu:     newMockFoodMenuRepo(),
		Complaint:    complaintRepo,
	}
	svc := NewComplaintService(repo, zap.NewNop()).(*complaintService)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}
	return svc, complaintRepo
}

// ── Submit 测试 ──

func TestComplaintService_Submit_Success(t *testing.T) {
	svc, _ := setupTestComplaintService()

	result, err := svc.Submit(context.Background(), "stu-001", "Kishor", &dto.SubmitComplaintRequest{
		Category:    "Wi-Fi",
		Description: "Room 203 no signal",
	})
	if err != nil {
		t.Fatalf("Submit 应成功: %v", err)
	}
	if result.Status != model.ComplaintStatusPending {
		t.Errorf("新投诉期望Status=Pending，实际=%s", result.Status)
	}
	if result.Category != "Wi-Fi" {
		t.Errorf("期望Category=Wi-Fi，实际=%s", result.Category)
	}
}

func TestComplaintService_Submit_AllCategories(t *testing.T) {
	svc, _ := setupTestComplaintService()

	for _, category := range []string{"Wi-Fi", "Water", "Maintenance", "Electricity", "Others"} {
		if _, err := svc.Submit(context.Background(), "stu-001", "Kishor", &dto.SubmitComplaintRequest{
			Category:    category,
			Description: "test",
		}); err != nil {
			t.Errorf("类别 %s 应被接受: %v", category, err)
		}
	}
}

func TestComplaintService_Submit_InvalidCategory(t *testing.T) {
	svc, complaintRepo := setupTestComplaintService()

	_, err := svc.Submit(context.Background(), "stu-001", "Kishor", &dto.SubmitComplaintRequest{
		Category:    "Food",
		Description: "test",
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("期望 ErrInvalidCategory，实际: %v", err)
	}
	if len(complaintRepo.complaints) != 0 {
		t.Error("非法类别不应写入记录")
	}
}

// ── ListMine 测试 ──

func TestComplaintService_ListMine_OwnRecordsOnly(t *testing.T) {
	svc, _ := setupTestComplaintService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "stu-001", "Kishor", &dto.SubmitComplaintRequest{
		Category: "Water", Description: "leak",
	}); err != nil {
		t.Fatalf("Submit 应成功: %v", err)
	}
	if _, err := svc.Submit(ctx, "stu-002", "Arun", &dto.SubmitComplaintRequest{
		Category: "Electricity", Description: "outage",
	}); err != nil {
		t.Fatalf("Submit 应成功: %v", err)
	}

	result, err := svc.ListMine(ctx, "stu-001")
	if err != nil {
		t.Fatalf("ListMine 应成功: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("只应返回本人的投诉，实际=%d 条", len(result))
	}
	if result[0].Category != "Water" {
		t.Errorf("期望Category=Water，实际=%s", result[0].Category)
	}
}

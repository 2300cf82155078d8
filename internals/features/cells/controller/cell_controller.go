package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/cells/dto"
	"churchhub_backend/internals/features/cells/model"
	"churchhub_backend/internals/features/cells/service"
	memberModel "churchhub_backend/internals/features/members/model"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

type CellController struct {
	DB *gorm.DB
}

func NewCellController(db *gorm.DB) *CellController {
	return &CellController{DB: db}
}

// 🟢 GET /api/a/cells?status=&q=&page=&per_page=
func (ctrl *CellController) GetCells(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		return helper.JsonList(c, "Cells", []dto.CellResponse{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CellModel{}).Where("cell_church_id = ?", churchID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("cell_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(cell_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count cells: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count cells")
	}

	var cells []model.CellModel
	if err := q.Order("cell_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&cells).Error; err != nil {
		log.Printf("[ERROR] list cells: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cells")
	}

	resp := make([]dto.CellResponse, len(cells))
	for i := range cells {
		resp[i] = dto.ToCellResponse(&cells[i])
	}
	ctrl.attachLeaderNamesAndCounts(churchID, resp)

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Cells", resp, &pg)
}

// leader names and member counts in two extra queries
func (ctrl *CellController) attachLeaderNamesAndCounts(churchID uuid.UUID, cells []dto.CellResponse) {
	if len(cells) == 0 {
		return
	}

	leaderIDs := make([]uuid.UUID, 0, len(cells))
	cellIDs := make([]uuid.UUID, 0, len(cells))
	for i := range cells {
		cellIDs = append(cellIDs, cells[i].CellID)
		if cells[i].CellLeaderID != nil {
			leaderIDs = append(leaderIDs, *cells[i].CellLeaderID)
		}
	}

	if len(leaderIDs) > 0 {
		var leaders []memberModel.MemberModel
		if err := ctrl.DB.
			Where("member_id IN ? AND member_church_id = ?", leaderIDs, churchID).
			Find(&leaders).Error; err != nil {
			log.Printf("[WARN] attach leader names: %v", err)
		} else {
			names := make(map[uuid.UUID]string, len(leaders))
			for i := range leaders {
				names[leaders[i].MemberID] = leaders[i].MemberFullName
			}
			for i := range cells {
				if cells[i].CellLeaderID != nil {
					cells[i].CellLeaderName = names[*cells[i].CellLeaderID]
				}
			}
		}
	}

	type countRow struct {
		CellID uuid.UUID `gorm:"column:member_cell_id"`
		Total  int64     `gorm:"column:total"`
	}
	var counts []countRow
	if err := ctrl.DB.Model(&memberModel.MemberModel{}).
		Select("member_cell_id, COUNT(*) AS total").
		Where("member_cell_id IN ? AND member_church_id = ?", cellIDs, churchID).
		Group("member_cell_id").
		Scan(&counts).Error; err != nil {
		log.Printf("[WARN] attach member counts: %v", err)
		return
	}
	byCell := make(map[uuid.UUID]int64, len(counts))
	for _, row := range counts {
		byCell[row.CellID] = row.Total
	}
	for i := range cells {
		cells[i].CellMemberCount = byCell[cells[i].CellID]
	}
}

// 🟢 GET /api/a/cells/available-leaders?cell_id=
// Active members not already leading a cell. cell_id keeps the current
// leader in the list for edit forms.
func (ctrl *CellController) GetAvailableLeaders(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var cellID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("cell_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell id")
		}
		cellID = &id
	}

	members, err := service.AvailableLeaders(ctrl.DB, churchID, cellID)
	if err != nil {
		log.Printf("[ERROR] available leaders: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch available leaders")
	}

	type leaderOption struct {
		MemberID       uuid.UUID `json:"member_id"`
		MemberFullName string    `json:"member_full_name"`
	}
	out := make([]leaderOption, len(members))
	for i := range members {
		out[i] = leaderOption{MemberID: members[i].MemberID, MemberFullName: members[i].MemberFullName}
	}
	return helper.JsonList(c, "Available leaders", out, nil)
}

// 🟢 POST /api/a/cells
func (ctrl *CellController) CreateCell(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CellRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.CellLeaderID != nil {
		if err := service.ValidateLeader(ctrl.DB, churchID, *req.CellLeaderID, nil); err != nil {
			return leaderRuleError(c, err)
		}
	}

	m := req.ToModel(churchID)
	m.CellID = uuid.New()

	values := map[string]any{
		"cell_id":               m.CellID,
		"cell_church_id":        m.CellChurchID,
		"cell_name":             m.CellName,
		"cell_status":           m.CellStatus,
		"cell_leader_id":        m.CellLeaderID,
		"cell_meeting_weekday":  m.CellMeetingWeekday,
		"cell_meeting_time":     m.CellMeetingTime,
		"cell_meeting_location": m.CellMeetingLocation,
		"cell_created_at":       time.Now().UTC(),
		"cell_updated_at":       time.Now().UTC(),
	}

	// schema may lag the app in some deployments: write only what exists
	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "cells", values)
	if err := ctrl.DB.Model(&model.CellModel{}).Create(kept).Error; err != nil {
		log.Printf("[ERROR] create cell: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save cell")
	}

	var created model.CellModel
	if err := ctrl.DB.Where("cell_id = ?", m.CellID).First(&created).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload cell")
	}
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Cell saved",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToCellResponse(&created))
	}
	return helper.JsonCreated(c, "Cell saved", dto.ToCellResponse(&created))
}

// 🟡 PATCH /api/a/cells/:id
func (ctrl *CellController) UpdateCell(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	cellID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell id")
	}

	var m model.CellModel
	if err := ctrl.DB.
		Where("cell_id = ? AND cell_church_id = ?", cellID, churchID).
		First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Cell not found")
	}

	var req dto.CellUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	values := map[string]any{}
	if req.CellName != nil {
		values["cell_name"] = *req.CellName
	}
	if req.CellStatus != nil {
		values["cell_status"] = *req.CellStatus
	}
	if req.ClearLeaderID {
		values["cell_leader_id"] = nil
	} else if req.CellLeaderID != nil {
		if err := service.ValidateLeader(ctrl.DB, churchID, *req.CellLeaderID, &cellID); err != nil {
			return leaderRuleError(c, err)
		}
		values["cell_leader_id"] = *req.CellLeaderID
	}
	if req.CellMeetingWeekday != nil {
		values["cell_meeting_weekday"] = *req.CellMeetingWeekday
	}
	if req.CellMeetingTime != nil {
		values["cell_meeting_time"] = *req.CellMeetingTime
	}
	if req.CellMeetingLocation != nil {
		values["cell_meeting_location"] = *req.CellMeetingLocation
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "cells", values)
	if len(kept) > 0 {
		if err := ctrl.DB.Model(&m).Updates(kept).Error; err != nil {
			log.Printf("[ERROR] update cell: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cell")
		}
	}
	if err := ctrl.DB.Where("cell_id = ?", cellID).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload cell")
	}
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Cell updated",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToCellResponse(&m))
	}
	return helper.JsonUpdated(c, "Cell updated", dto.ToCellResponse(&m))
}

// 🔴 DELETE /api/a/cells/:id
// Members of the cell are kept and detached in the same transaction.
func (ctrl *CellController) DeleteCell(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	cellID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell id")
	}

	detached, err := service.DeleteCellWithMembers(ctrl.DB, churchID, cellID)
	if err != nil {
		if errors.Is(err, service.ErrCellNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cell not found")
		}
		log.Printf("[ERROR] delete cell: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete cell")
	}
	return helper.JsonDeleted(c, "Cell deleted", fiber.Map{"members_detached": detached})
}

func leaderRuleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrLeaderNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, "Leader not found in this church")
	case errors.Is(err, service.ErrLeaderNotActive):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Leader must be an active member")
	case errors.Is(err, service.ErrLeaderAlreadyLeading):
		return helper.JsonError(c, fiber.StatusConflict, "Member already leads another cell")
	default:
		log.Printf("[ERROR] validate leader: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to validate leader")
	}
}

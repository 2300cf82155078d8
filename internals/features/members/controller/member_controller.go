package controller

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cellModel "churchhub_backend/internals/features/cells/model"
	"churchhub_backend/internals/features/members/dto"
	"churchhub_backend/internals/features/members/model"
	"churchhub_backend/internals/features/members/service"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// 🟢 GET /api/a/members?cell_id=&status=&q=&page=&per_page=
func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		// tenant not ready: empty list, not an error
		return helper.JsonList(c, "Members", []dto.MemberResponse{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MemberModel{}).Where("member_church_id = ?", churchID)
	if cellID := strings.TrimSpace(c.Query("cell_id")); cellID != "" {
		if cid, err := uuid.Parse(cellID); err == nil {
			q = q.Where("member_cell_id = ?", cid)
		}
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("member_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(member_full_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []model.MemberModel
	if err := q.Order("member_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&members).Error; err != nil {
		log.Printf("[ERROR] list members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	resp := dto.ToMemberResponseList(members)
	ctrl.attachCellNames(churchID, resp)

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Members", resp, &pg)
}

// shallow join: cell names in one extra query
func (ctrl *MemberController) attachCellNames(churchID uuid.UUID, members []dto.MemberResponse) {
	ids := make([]uuid.UUID, 0, len(members))
	for i := range members {
		if members[i].MemberCellID != nil {
			ids = append(ids, *members[i].MemberCellID)
		}
	}
	if len(ids) == 0 {
		return
	}
	var cells []cellModel.CellModel
	if err := ctrl.DB.
		Where("cell_id IN ? AND cell_church_id = ?", ids, churchID).
		Find(&cells).Error; err != nil {
		log.Printf("[WARN] attach cell names: %v", err)
		return
	}
	names := make(map[uuid.UUID]string, len(cells))
	for i := range cells {
		names[cells[i].CellID] = cells[i].CellName
	}
	for i := range members {
		if members[i].MemberCellID != nil {
			members[i].MemberCellName = names[*members[i].MemberCellID]
		}
	}
}

// 🟢 POST /api/a/members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel(churchID)
	m.MemberID = uuid.New()

	values := map[string]any{
		"member_id":         m.MemberID,
		"member_church_id":  m.MemberChurchID,
		"member_full_name":  m.MemberFullName,
		"member_email":      m.MemberEmail,
		"member_phone":      m.MemberPhone,
		"member_address":    m.MemberAddress,
		"member_status":     m.MemberStatus,
		"member_birth_date": m.MemberBirthDate,
		"member_cell_id":    m.MemberCellID,
		"member_created_at": time.Now().UTC(),
		"member_updated_at": time.Now().UTC(),
	}

	// schema may lag the app in some deployments: write only what exists
	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "members", values)
	if err := ctrl.DB.Model(&model.MemberModel{}).Create(kept).Error; err != nil {
		log.Printf("[ERROR] create member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save member")
	}

	var created model.MemberModel
	if err := ctrl.DB.Where("member_id = ?", m.MemberID).First(&created).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload member")
	}

	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Member saved",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToMemberResponse(&created))
	}
	return helper.JsonCreated(c, "Member saved", dto.ToMemberResponse(&created))
}

// 🟡 PATCH /api/a/members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var m model.MemberModel
	if err := ctrl.DB.
		Where("member_id = ? AND member_church_id = ?", memberID, churchID).
		First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	values := map[string]any{}
	if req.MemberFullName != nil {
		values["member_full_name"] = *req.MemberFullName
	}
	if req.MemberEmail != nil {
		values["member_email"] = *req.MemberEmail
	}
	if req.MemberPhone != nil {
		values["member_phone"] = *req.MemberPhone
	}
	if req.MemberAddress != nil {
		values["member_address"] = *req.MemberAddress
	}
	if req.MemberStatus != nil {
		values["member_status"] = *req.MemberStatus
	}
	if req.MemberBirthDate != nil {
		values["member_birth_date"] = *req.MemberBirthDate
	}
	if req.ClearCellID {
		values["member_cell_id"] = nil
	} else if req.MemberCellID != nil {
		values["member_cell_id"] = *req.MemberCellID
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "members", values)
	if len(kept) > 0 {
		if err := ctrl.DB.Model(&m).Updates(kept).Error; err != nil {
			log.Printf("[ERROR] update member: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
		}
	}

	if err := ctrl.DB.Where("member_id = ?", memberID).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload member")
	}

	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Member updated",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToMemberResponse(&m))
	}
	return helper.JsonUpdated(c, "Member updated", dto.ToMemberResponse(&m))
}

// 🔴 DELETE /api/a/members/:id
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	res := ctrl.DB.
		Where("member_id = ? AND member_church_id = ?", memberID, churchID).
		Delete(&model.MemberModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete member: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	return helper.JsonDeleted(c, "Member deleted", nil)
}

// 🟢 GET /api/a/members/birthdays?within=30
// Members with a birth date, sorted by proximity to their next birthday.
func (ctrl *MemberController) GetBirthdays(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		return helper.JsonList(c, "Birthdays", []dto.MemberBirthdayResponse{}, nil)
	}

	within := c.QueryInt("within", 366)

	var members []model.MemberModel
	if err := ctrl.DB.
		Where("member_church_id = ? AND member_birth_date IS NOT NULL AND member_status <> ?", churchID, "inactive").
		Find(&members).Error; err != nil {
		log.Printf("[ERROR] list birthdays: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch birthdays")
	}

	now := time.Now()
	out := make([]dto.MemberBirthdayResponse, 0, len(members))
	for i := range members {
		m := &members[i]
		days := service.DaysUntilBirthday(*m.MemberBirthDate, now)
		if days > within {
			continue
		}
		out = append(out, dto.MemberBirthdayResponse{
			MemberID:       m.MemberID,
			MemberFullName: m.MemberFullName,
			BirthDate:      *m.MemberBirthDate,
			DaysUntil:      days,
			Bucket:         service.BirthdayBucket(days),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysUntil < out[j].DaysUntil })

	return helper.JsonList(c, "Birthdays", out, nil)
}

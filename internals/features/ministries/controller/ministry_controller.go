package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "churchhub_backend/internals/features/members/model"
	"churchhub_backend/internals/features/ministries/dto"
	"churchhub_backend/internals/features/ministries/model"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

type MinistryController struct {
	DB *gorm.DB
}

func NewMinistryController(db *gorm.DB) *MinistryController {
	return &MinistryController{DB: db}
}

// 🟢 GET /api/a/ministries?q=&page=&per_page=
func (ctrl *MinistryController) GetMinistries(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		return helper.JsonList(c, "Ministries", []dto.MinistryResponse{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MinistryModel{}).Where("ministry_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(ministry_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count ministries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count ministries")
	}

	var ministries []model.MinistryModel
	if err := q.Order("ministry_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ministries).Error; err != nil {
		log.Printf("[ERROR] list ministries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ministries")
	}

	resp := make([]dto.MinistryResponse, len(ministries))
	for i := range ministries {
		resp[i] = dto.ToMinistryResponse(&ministries[i])
	}
	ctrl.attachLeaderNamesAndCounts(churchID, resp)

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Ministries", resp, &pg)
}

func (ctrl *MinistryController) attachLeaderNamesAndCounts(churchID uuid.UUID, ministries []dto.MinistryResponse) {
	if len(ministries) == 0 {
		return
	}

	leaderIDs := make([]uuid.UUID, 0, len(ministries))
	ministryIDs := make([]uuid.UUID, 0, len(ministries))
	for i := range ministries {
		ministryIDs = append(ministryIDs, ministries[i].MinistryID)
		if ministries[i].MinistryLeaderID != nil {
			leaderIDs = append(leaderIDs, *ministries[i].MinistryLeaderID)
		}
	}

	if len(leaderIDs) > 0 {
		var leaders []memberModel.MemberModel
		if err := ctrl.DB.
			Where("member_id IN ? AND member_church_id = ?", leaderIDs, churchID).
			Find(&leaders).Error; err != nil {
			log.Printf("[WARN] attach ministry leader names: %v", err)
		} else {
			names := make(map[uuid.UUID]string, len(leaders))
			for i := range leaders {
				names[leaders[i].MemberID] = leaders[i].MemberFullName
			}
			for i := range ministries {
				if ministries[i].MinistryLeaderID != nil {
					ministries[i].MinistryLeaderName = names[*ministries[i].MinistryLeaderID]
				}
			}
		}
	}

	type countRow struct {
		MinistryID uuid.UUID `gorm:"column:ministry_member_ministry_id"`
		Total      int64     `gorm:"column:total"`
	}
	var counts []countRow
	if err := ctrl.DB.Model(&model.MinistryMemberModel{}).
		Select("ministry_member_ministry_id, COUNT(*) AS total").
		Where("ministry_member_ministry_id IN ?", ministryIDs).
		Group("ministry_member_ministry_id").
		Scan(&counts).Error; err != nil {
		log.Printf("[WARN] attach ministry member counts: %v", err)
		return
	}
	byMinistry := make(map[uuid.UUID]int64, len(counts))
	for _, row := range counts {
		byMinistry[row.MinistryID] = row.Total
	}
	for i := range ministries {
		ministries[i].MinistryMemberCount = byMinistry[ministries[i].MinistryID]
	}
}

// 🟢 POST /api/a/ministries
func (ctrl *MinistryController) CreateMinistry(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.MinistryLeaderID != nil {
		if err := ctrl.memberExists(churchID, *req.MinistryLeaderID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Leader not found in this church")
		}
	}

	m := req.ToModel(churchID)
	m.MinistryID = uuid.New()

	values := map[string]any{
		"ministry_id":         m.MinistryID,
		"ministry_church_id":  m.MinistryChurchID,
		"ministry_name":       m.MinistryName,
		"ministry_color":      m.MinistryColor,
		"ministry_leader_id":  m.MinistryLeaderID,
		"ministry_created_at": time.Now().UTC(),
		"ministry_updated_at": time.Now().UTC(),
	}

	// schema may lag the app in some deployments: write only what exists
	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "ministries", values)
	if err := ctrl.DB.Model(&model.MinistryModel{}).Create(kept).Error; err != nil {
		log.Printf("[ERROR] create ministry: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save ministry")
	}

	var created model.MinistryModel
	if err := ctrl.DB.Where("ministry_id = ?", m.MinistryID).First(&created).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload ministry")
	}
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Ministry saved",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToMinistryResponse(&created))
	}
	return helper.JsonCreated(c, "Ministry saved", dto.ToMinistryResponse(&created))
}

// 🟡 PATCH /api/a/ministries/:id
func (ctrl *MinistryController) UpdateMinistry(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	ministryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ministry id")
	}

	var m model.MinistryModel
	if err := ctrl.DB.
		Where("ministry_id = ? AND ministry_church_id = ?", ministryID, churchID).
		First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
	}

	var req dto.MinistryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	values := map[string]any{}
	if req.MinistryName != nil {
		values["ministry_name"] = *req.MinistryName
	}
	if req.MinistryColor != nil {
		values["ministry_color"] = *req.MinistryColor
	}
	if req.ClearLeaderID {
		values["ministry_leader_id"] = nil
	} else if req.MinistryLeaderID != nil {
		if err := ctrl.memberExists(churchID, *req.MinistryLeaderID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Leader not found in this church")
		}
		values["ministry_leader_id"] = *req.MinistryLeaderID
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "ministries", values)
	if len(kept) > 0 {
		if err := ctrl.DB.Model(&m).Updates(kept).Error; err != nil {
			log.Printf("[ERROR] update ministry: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ministry")
		}
	}
	if err := ctrl.DB.Where("ministry_id = ?", ministryID).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload ministry")
	}
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Ministry updated",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToMinistryResponse(&m))
	}
	return helper.JsonUpdated(c, "Ministry updated", dto.ToMinistryResponse(&m))
}

// 🔴 DELETE /api/a/ministries/:id
// Join rows go with the ministry in the same transaction.
func (ctrl *MinistryController) DeleteMinistry(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	ministryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ministry id")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("ministry_id = ? AND ministry_church_id = ?", ministryID, churchID).
			Delete(&model.MinistryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.
			Where("ministry_member_ministry_id = ?", ministryID).
			Delete(&model.MinistryMemberModel{}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
		}
		log.Printf("[ERROR] delete ministry: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ministry")
	}
	return helper.JsonDeleted(c, "Ministry deleted", nil)
}

// 🟢 GET /api/a/ministries/:id/members
func (ctrl *MinistryController) GetMinistryMembers(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	ministryID, err := ctrl.findMinistryID(c, churchID)
	if err != nil {
		return err
	}

	type row struct {
		MemberID       uuid.UUID `gorm:"column:member_id"`
		MemberFullName string    `gorm:"column:member_full_name"`
		MemberStatus   string    `gorm:"column:member_status"`
		JoinedAt       time.Time `gorm:"column:ministry_member_created_at"`
	}
	var rows []row
	if err := ctrl.DB.Model(&model.MinistryMemberModel{}).
		Select("members.member_id, members.member_full_name, members.member_status, ministry_members.ministry_member_created_at").
		Joins("JOIN members ON members.member_id = ministry_members.ministry_member_member_id AND members.member_deleted_at IS NULL").
		Where("ministry_members.ministry_member_ministry_id = ?", ministryID).
		Order("members.member_full_name ASC").
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list ministry members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ministry members")
	}

	out := make([]dto.MinistryMemberResponse, len(rows))
	for i, r := range rows {
		out[i] = dto.MinistryMemberResponse{
			MemberID:       r.MemberID,
			MemberFullName: r.MemberFullName,
			MemberStatus:   r.MemberStatus,
			JoinedAt:       r.JoinedAt,
		}
	}
	return helper.JsonList(c, "Ministry members", out, nil)
}

// 🟢 POST /api/a/ministries/:id/members
func (ctrl *MinistryController) AddMinistryMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	ministryID, err := ctrl.findMinistryID(c, churchID)
	if err != nil {
		return err
	}

	var req dto.MinistryMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := ctrl.memberExists(churchID, req.MemberID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Member not found in this church")
	}

	var existing int64
	if err := ctrl.DB.Model(&model.MinistryMemberModel{}).
		Where("ministry_member_ministry_id = ? AND ministry_member_member_id = ?", ministryID, req.MemberID).
		Count(&existing).Error; err != nil {
		log.Printf("[ERROR] check ministry membership: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add member")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Member already in this ministry")
	}

	link := &model.MinistryMemberModel{
		MinistryMemberMinistryID: ministryID,
		MinistryMemberMemberID:   req.MemberID,
	}
	if err := ctrl.DB.Create(link).Error; err != nil {
		log.Printf("[ERROR] add ministry member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add member")
	}
	return helper.JsonCreated(c, "Member added to ministry", link)
}

// 🔴 DELETE /api/a/ministries/:id/members/:member_id
func (ctrl *MinistryController) RemoveMinistryMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	ministryID, err := ctrl.findMinistryID(c, churchID)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	res := ctrl.DB.
		Where("ministry_member_ministry_id = ? AND ministry_member_member_id = ?", ministryID, memberID).
		Delete(&model.MinistryMemberModel{})
	if res.Error != nil {
		log.Printf("[ERROR] remove ministry member: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not in this ministry")
	}
	return helper.JsonDeleted(c, "Member removed from ministry", nil)
}

// findMinistryID parses :id and confirms the ministry belongs to the tenant.
func (ctrl *MinistryController) findMinistryID(c *fiber.Ctx, churchID uuid.UUID) (uuid.UUID, error) {
	ministryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid ministry id")
	}
	var cnt int64
	if err := ctrl.DB.Model(&model.MinistryModel{}).
		Where("ministry_id = ? AND ministry_church_id = ?", ministryID, churchID).
		Count(&cnt).Error; err != nil {
		log.Printf("[ERROR] find ministry: %v", err)
		return uuid.Nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ministry")
	}
	if cnt == 0 {
		return uuid.Nil, helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
	}
	return ministryID, nil
}

func (ctrl *MinistryController) memberExists(churchID, memberID uuid.UUID) error {
	var cnt int64
	if err := ctrl.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ? AND member_church_id = ?", memberID, churchID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

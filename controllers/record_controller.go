package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"Inspection_Tracker_Backend/db"
	"Inspection_Tracker_Backend/models"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type RecordController struct{ Repo *db.Repo }

func NewRecordController(repo *db.Repo) *RecordController { return &RecordController{Repo: repo} }

// 接收为指针，便于判断“是否传了这个字段”；没出现在这里的键自动丢弃。
// updated_at 不收：每次写入由服务端覆盖。
type recordPayload struct {
	UnitName           *string `json:"unit_name"`
	EquipmentType      *string `json:"equipment_type"`
	EquipmentTagNumber *string `json:"equipment_tag_number"`
	InspectionType     *string `json:"inspection_type"`
	EquipmentName      *string `json:"equipment_name"`
	LastInspectionYear *string `json:"last_inspection_year"`
	InspectionPossible *string `json:"inspection_possible"`
	UpdateDate         *string `json:"update_date"`
	InspectionDate     *string `json:"inspection_date"`
	Status             *string `json:"status"`
	FinalStatus        *string `json:"final_status"`
	Remarks            *string `json:"remarks"`
	Observation        *string `json:"observation"`
	Recommendation     *string `json:"recommendation"`
	UpdatedBy          *string `json:"updated_by"`
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (p *recordPayload) toRecord() models.InspectionRecord {
	return models.InspectionRecord{
		UnitName:           deref(p.UnitName),
		EquipmentType:      deref(p.EquipmentType),
		EquipmentTagNumber: deref(p.EquipmentTagNumber),
		InspectionType:     deref(p.InspectionType),
		EquipmentName:      deref(p.EquipmentName),
		LastInspectionYear: deref(p.LastInspectionYear),
		InspectionPossible: deref(p.InspectionPossible),
		UpdateDate:         deref(p.UpdateDate),
		InspectionDate:     deref(p.InspectionDate),
		Status:             deref(p.Status),
		FinalStatus:        deref(p.FinalStatus),
		Remarks:            deref(p.Remarks),
		Observation:        deref(p.Observation),
		Recommendation:     deref(p.Recommendation),
		UpdatedBy:          deref(p.UpdatedBy),
	}
}

// changes 把非 nil 字段收成列名 -> 值，用于部分更新。
func (p *recordPayload) changes() map[string]any {
	out := map[string]any{}
	put := func(col string, v *string) {
		if v != nil {
			out[col] = *v
		}
	}
	put("unit_name", p.UnitName)
	put("equipment_type", p.EquipmentType)
	put("equipment_tag_number", p.EquipmentTagNumber)
	put("inspection_type", p.InspectionType)
	put("equipment_name", p.EquipmentName)
	put("last_inspection_year", p.LastInspectionYear)
	put("inspection_possible", p.InspectionPossible)
	put("update_date", p.UpdateDate)
	put("inspection_date", p.InspectionDate)
	put("status", p.Status)
	put("final_status", p.FinalStatus)
	put("remarks", p.Remarks)
	put("observation", p.Observation)
	put("recommendation", p.Recommendation)
	put("updated_by", p.UpdatedBy)
	return out
}

// bindLenient 宽松解析：空 body 当作 {}；坏 JSON 才算 400。
// 出错时已写响应，调用方直接 return。
func bindLenient(c *gin.Context, dst any) bool {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return false
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return true
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return false
	}
	return true
}

// parseID 路径里的 id 必须是非负整数，解析失败是调用方错误（400）。
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// GET /api/records
func (rc *RecordController) List(c *gin.Context) {
	recs, err := rc.Repo.ListRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GET /api/records/:id
func (rc *RecordController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := rc.Repo.GetRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/records
// final_status 到 Completed 且没给 inspection_date 时自动盖当前时间；
// update_date 空则补当前时间；updated_at 永远由服务端写。
func (rc *RecordController) Create(c *gin.Context) {
	var p recordPayload
	if !bindLenient(c, &p) {
		return
	}
	rec := p.toRecord()
	now := models.NowStamp()
	rec.UpdatedAt = now
	if rec.FinalStatus == "Completed" && rec.InspectionDate == "" {
		rec.InspectionDate = now
	}
	if rec.UpdateDate == "" {
		rec.UpdateDate = now
	}
	id, err := rc.Repo.CreateRecord(c.Request.Context(), &rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/records/:id
// 部分更新：只动 payload 里出现的字段；id 不存在时也是 200（零行更新）。
func (rc *RecordController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p recordPayload
	if !bindLenient(c, &p) {
		return
	}
	changes := p.changes()
	now := models.NowStamp()
	changes["updated_at"] = now
	if fs, ok := changes["final_status"]; ok && fs == "Completed" {
		if insp, ok := changes["inspection_date"]; !ok || insp == "" {
			changes["inspection_date"] = now
		}
	}
	if ud, ok := changes["update_date"]; !ok || ud == "" {
		changes["update_date"] = now
	}
	if err := rc.Repo.UpdateRecord(c.Request.Context(), id, changes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/records/:id （仅 admin，中间件拦）
func (rc *RecordController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.Repo.DeleteRecord(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

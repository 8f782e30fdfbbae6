package db

import (
	"context"

	"gorm.io/gorm"

	"Inspection_Tracker_Backend/models"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(conn *gorm.DB) *Repo { return &Repo{DB: conn} }

// 列表固定按 id 倒序（最新建的在前），不分页。
func (r *Repo) ListRecords(ctx context.Context) ([]models.InspectionRecord, error) {
	var recs []models.InspectionRecord
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&recs).Error
	return recs, err
}

func (r *Repo) GetRecord(ctx context.Context, id uint64) (*models.InspectionRecord, error) {
	var rec models.InspectionRecord
	if err := r.DB.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repo) CreateRecord(ctx context.Context, rec *models.InspectionRecord) (uint, error) {
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// UpdateRecord 只改 changes 里出现的白名单列，其余列保持原值。
// 空 changes 是 no-op；id 不存在时是零行更新，不报错 —— 需要确认存在性的
// 调用方自己先 GetRecord。
func (r *Repo) UpdateRecord(ctx context.Context, id uint64, changes map[string]any) error {
	allowed := map[string]any{}
	for _, col := range models.UpdatableColumns {
		if v, ok := changes[col]; ok {
			allowed[col] = v
		}
	}
	if len(allowed) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Model(&models.InspectionRecord{}).
		Where("id = ?", id).
		Updates(allowed).Error
}

// DeleteRecord 幂等：删不存在的 id 不是错误。
func (r *Repo) DeleteRecord(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&models.InspectionRecord{}, "id = ?", id).Error
}

// BulkUpdateStatus 批量流转：整批一个时间戳、一个事务。
// inspection_date 只在本次调用的 final_status == "Completed" 时统一写入；
// 非 Completed 的批量调用永远不碰 inspection_date，保留各行原值。
// ids 里不存在的记录被静默跳过。
func (r *Repo) BulkUpdateStatus(ctx context.Context, ids []uint64, status, finalStatus, actor string) error {
	now := models.NowStamp()
	changes := map[string]any{
		"status":       status,
		"final_status": finalStatus,
		"update_date":  now,
		"updated_by":   actor,
		"updated_at":   now,
	}
	if finalStatus == "Completed" {
		changes["inspection_date"] = now
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.InspectionRecord{}).
			Where("id IN ?", ids).
			Updates(changes).Error
	})
}

// BulkInsert 逐行插入，单行失败不回滚已插入的行，返回成功/失败计数。
func (r *Repo) BulkInsert(ctx context.Context, rows []map[string]string, actor string) (inserted, failed int) {
	for _, row := range rows {
		rec := models.FromCSVRow(row)
		rec.UpdatedBy = actor
		rec.UpdatedAt = models.NowStamp()
		if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
			failed++
			continue
		}
		inserted++
	}
	return inserted, failed
}

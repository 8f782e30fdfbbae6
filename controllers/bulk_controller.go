package controllers

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"Inspection_Tracker_Backend/db"
	"Inspection_Tracker_Backend/models"
)

type BulkController struct{ Repo *db.Repo }

func NewBulkController(repo *db.Repo) *BulkController { return &BulkController{Repo: repo} }

type bulkStatusPayload struct {
	IDs         []any  `json:"ids"`
	Status      string `json:"status"`
	FinalStatus string `json:"final_status"`
	UpdatedBy   string `json:"updated_by"`
}

// 前端有时传数字有时传字符串，这里统一收敛成整数 id。
func coerceIDs(raw []any) ([]uint64, bool) {
	ids := make([]uint64, 0, len(raw))
	for _, v := range raw {
		switch x := v.(type) {
		case float64:
			if x < 0 || x != float64(uint64(x)) {
				return nil, false
			}
			ids = append(ids, uint64(x))
		case string:
			n, err := strconv.ParseUint(strings.TrimSpace(x), 10, 64)
			if err != nil {
				return nil, false
			}
			ids = append(ids, n)
		default:
			return nil, false
		}
	}
	return ids, true
}

// POST /api/records/bulk-status
func (bc *BulkController) UpdateStatus(c *gin.Context) {
	var p bulkStatusPayload
	if !bindLenient(c, &p) {
		return
	}
	ids, ok := coerceIDs(p.IDs)
	if !ok || len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one item"})
		return
	}
	if err := bc.Repo.BulkUpdateStatus(c.Request.Context(), ids, p.Status, p.FinalStatus, p.UpdatedBy); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/records/bulk-upload （仅 admin，中间件拦；?user= 记录操作人）
func (bc *BulkController) Upload(c *gin.Context) {
	actor := c.Query("user")

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	defer f.Close()

	rows, err := readCSVRows(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid CSV"})
		return
	}

	inserted, failed := bc.Repo.BulkInsert(c.Request.Context(), rows, actor)
	c.JSON(http.StatusOK, gin.H{"inserted": inserted, "failed": failed})
}

// readCSVRows 第一行当表头，其余行映射成 表头->单元格。
// 行长不齐时短行缺的列当空串，多出来的列丢弃。
func readCSVRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	header := all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF") // Excel 导出的 BOM
	}

	rows := make([]map[string]string, 0, len(all)-1)
	for _, cells := range all[1:] {
		row := map[string]string{}
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GET /api/template.csv
func (bc *BulkController) DownloadTemplate(c *gin.Context) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(models.CSVHeaders)
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="inspection_bulk_template.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

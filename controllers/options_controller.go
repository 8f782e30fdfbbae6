package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 下拉选项是固定配置，前端靠它渲染表单。值列表不做服务端校验。
var OptionsCatalog = map[string][]string{
	"unit":                {"GCU-1", "GCU-2", "GPU-1", "GPU-2", "HDPE-1", "HDPE-2", "LLDPE-1", "LLDPE-2", "LPG", "PP-1", "PP-2", "SPHERE", "YARD", "FLAKER-1", "BOG", "IOP"},
	"equipment_type":      {"Vessel", "Exchanger", "Tank", "Steam Trap", "Pipeline"},
	"inspection_type":     {"Planned", "Opportunity Based"},
	"inspection_possible": {"Internal", "External", "Boroscopy", "Cold Work", "Hot Work", "UTG", "LRUT", "RFET"},
	"status":              {"Scaffolding Preparation", "Blinding", "Manhole Opening", "NDT in progress", "Deblending", "Handover"},
	"final_status":        {"Not Started", "In Progress", "Completed"},
}

// GET /api/options
func Options(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsCatalog)
}

package models

import "time"

const InspectionTable = "inspections"

// InspectionRecord 检验台账的唯一实体。除 ID 外全部按文本存储：
// 日期列是历史 Excel/CSV 导入留下的自由格式，不做服务端校验。
type InspectionRecord struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	UnitName           string `json:"unit_name"`
	EquipmentType      string `json:"equipment_type"`
	EquipmentTagNumber string `json:"equipment_tag_number"`
	InspectionType     string `json:"inspection_type"`
	EquipmentName      string `json:"equipment_name"`
	LastInspectionYear string `json:"last_inspection_year"`
	InspectionPossible string `json:"inspection_possible"`
	UpdateDate         string `json:"update_date"`
	InspectionDate     string `json:"inspection_date"`
	Status             string `json:"status"`
	FinalStatus        string `json:"final_status"`
	Remarks            string `json:"remarks"`
	Observation        string `json:"observation"`
	Recommendation     string `json:"recommendation"`
	UpdatedBy          string `json:"updated_by"`
	UpdatedAt          string `json:"updated_at"`
}

func (InspectionRecord) TableName() string { return InspectionTable }

// UpdatableColumns 是 update 白名单：payload 里出现的其他键一律丢弃。
var UpdatableColumns = []string{
	"unit_name", "equipment_type", "equipment_tag_number", "inspection_type",
	"equipment_name", "last_inspection_year", "inspection_possible",
	"update_date", "inspection_date", "status", "final_status",
	"remarks", "observation", "recommendation", "updated_by", "updated_at",
}

// CSVHeaders 批量导入模板的表头，顺序固定。
// 注意 "Recomendation" 的拼写要和既有模板/前端保持一致，不能改。
var CSVHeaders = []string{
	"Unit Name", "Equipment_type", "Equipment_Tag_Number", "Inspection Type",
	"Equipment Name", "Last Inspection Year", "Type of inspection possible",
	"Update Date", "Inspection Date", "Status", "Final status",
	"Remarks", "Observation", "Recomendation",
}

// FromCSVRow 把一行（表头 -> 单元格）映射成记录。
// Final status 为空时默认 Not Started。
func FromCSVRow(row map[string]string) InspectionRecord {
	rec := InspectionRecord{
		UnitName:           row["Unit Name"],
		EquipmentType:      row["Equipment_type"],
		EquipmentTagNumber: row["Equipment_Tag_Number"],
		InspectionType:     row["Inspection Type"],
		EquipmentName:      row["Equipment Name"],
		LastInspectionYear: row["Last Inspection Year"],
		InspectionPossible: row["Type of inspection possible"],
		UpdateDate:         row["Update Date"],
		InspectionDate:     row["Inspection Date"],
		Status:             row["Status"],
		FinalStatus:        row["Final status"],
		Remarks:            row["Remarks"],
		Observation:        row["Observation"],
		Recommendation:     row["Recomendation"],
	}
	if rec.FinalStatus == "" {
		rec.FinalStatus = "Not Started"
	}
	return rec
}

// NowStamp 统一的时间戳格式：UTC、秒精度、Z 结尾。
func NowStamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

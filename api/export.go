package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"costmanager/models"
	"costmanager/service"
	"costmanager/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	costs *service.ExpenseService
	log   *logrus.Logger
}

// NewExportHandler 创建导出处理器
func NewExportHandler(costs *service.ExpenseService, log *logrus.Logger) *ExportHandler {
	return &ExportHandler{costs: costs, log: log}
}

// 解析导出公共入参并查询数据
func (h *ExportHandler) queryRange(c *gin.Context) (int64, string, string, []models.Expense, bool) {
	userID, err := strconv.ParseInt(c.Query("userid"), 10, 64)
	if err != nil {
		BadRequest(c, "User id is required and must be a number.")
		return 0, "", "", nil, false
	}

	startStr := c.Query("start_time")
	endStr := c.Query("end_time")
	if startStr == "" || endStr == "" {
		BadRequest(c, "start_time and end_time are required.")
		return 0, "", "", nil, false
	}

	start, err := time.ParseInLocation(costDateLayout, startStr, time.Local)
	if err != nil {
		BadRequest(c, "start_time format is invalid. Expected: 2006-01-02")
		return 0, "", "", nil, false
	}
	end, err := time.ParseInLocation(costDateLayout, endStr, time.Local)
	if err != nil {
		BadRequest(c, "end_time format is invalid. Expected: 2006-01-02")
		return 0, "", "", nil, false
	}
	// 包含结束日期当天
	end = end.Add(24*time.Hour - time.Second)

	expenses, err := h.costs.List(userID, store.ListFilter{Start: &start, End: &end})
	if err != nil {
		h.log.WithError(err).Error("export query failed")
		InternalError(c, err.Error())
		return 0, "", "", nil, false
	}
	return userID, startStr, endStr, expenses, true
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录为 CSV
// @Tags 导出
// @Produce text/csv
// @Param userid query int true "用户编号"
// @Param start_time query string true "开始日期 (2024-01-01)"
// @Param end_time query string true "结束日期 (2024-12-31)，含当天"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	_, startStr, endStr, expenses, ok := h.queryRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM，便于 Excel 直接打开
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "User ID", "Sum", "Category", "Description", "Date", "Created At"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, err.Error())
		return
	}
	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			fmt.Sprintf("%d", expense.UserID),
			fmt.Sprintf("%.2f", expense.Sum),
			string(expense.Category),
			expense.Description,
			expense.Date.Format(costTimeLayout),
			expense.CreatedAt.Format(costTimeLayout),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, err.Error())
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, err.Error())
		return
	}

	filename := fmt.Sprintf("costs_%s_%s.csv", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param userid query int true "用户编号"
// @Param start_time query string true "开始日期 (2024-01-01)"
// @Param end_time query string true "结束日期 (2024-12-31)，含当天"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	_, startStr, endStr, expenses, ok := h.queryRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Costs"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "F", "F", 20)
	f.SetColWidth(sheetName, "G", "G", 20)

	headers := []string{"ID", "User ID", "Sum", "Category", "Description", "Date", "Created At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalSum float64
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.UserID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Sum)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(expense.Category))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.Date.Format(costTimeLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), expense.CreatedAt.Format(costTimeLayout))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
		totalSum += expense.Sum
	}

	// 汇总行
	summaryRow := len(expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), totalSum)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d records", len(expenses)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("costs_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, err.Error())
		return
	}
}

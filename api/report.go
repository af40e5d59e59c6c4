package api

import (
	"net/http"
	"strconv"
	"time"

	"costmanager/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 报表年份下界，上界为当前年份
const reportMinYear = 2000

// ReportHandler 报表处理器
type ReportHandler struct {
	reports *service.ReportAggregator
	log     *logrus.Logger
}

// NewReportHandler 创建报表处理器
func NewReportHandler(reports *service.ReportAggregator, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

// GetMonthly 获取月度分类报表
// @Summary 获取月度分类报表
// @Description 按固定顺序返回五个类别的消费明细，无记录的类别为空数组。月份从 1 开始，整月两端均为闭区间
// @Tags 报表
// @Produce json
// @Param userid query int true "用户编号"
// @Param year query int true "年份，范围 [2000, 当前年份]"
// @Param month query int true "月份，范围 [1, 12]"
// @Success 200 {object} service.MonthlyReport "报表"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/report [get]
func (h *ReportHandler) GetMonthly(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userid"), 10, 64)
	if err != nil {
		BadRequest(c, "User id is required and must be a number.")
		return
	}

	currentYear := time.Now().Year()
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < reportMinYear || year > currentYear {
		BadRequest(c, "Year is required and must be a number between "+
			strconv.Itoa(reportMinYear)+" and "+strconv.Itoa(currentYear)+".")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		BadRequest(c, "Month is required and must be a number between 1 and 12.")
		return
	}

	report, err := h.reports.Monthly(userID, year, month)
	if err != nil {
		h.log.WithError(err).Error("monthly report failed")
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

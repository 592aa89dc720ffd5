package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "halaqat_backend/internals/features/halaqat/students/model"
	studentRepo "halaqat_backend/internals/features/halaqat/students/repository"
	reportModel "halaqat_backend/internals/features/reports/reports/model"
	reportService "halaqat_backend/internals/features/reports/reports/service"
	helper "halaqat_backend/internals/helpers"
)

const recentStudents = 5

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /
func (ctl *DashboardController) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := reportService.LoadOverview(ctx, ctl.DB)
	if err != nil {
		log.Printf("[dashboard#index] reqid=%s err=%v", helper.ReqID(c), err)
		stats = reportModel.Overview{}
	}
	recent, err := studentRepo.Recent(ctx, ctl.DB, recentStudents)
	if err != nil {
		log.Printf("[dashboard#index] reqid=%s recent err=%v", helper.ReqID(c), err)
		recent = []studentModel.StudentWithHalaqa{}
	}

	return helper.Render(c, "dashboard/index", "لوحة التحكم", fiber.Map{
		"Stats":          stats,
		"RecentStudents": recent,
	})
}

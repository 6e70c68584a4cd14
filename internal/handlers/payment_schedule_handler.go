package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/internal/billing"
	"github.com/pedroloango/futboss/models"
)

// runYearlyGeneration builds the missing monthly obligations for every active
// student and persists them in one transaction. The caller supplies the
// already-loaded payment collection so the in-memory duplicate guard sees the
// same snapshot the caller does.
func runYearlyGeneration(existing []models.Payment) ([]models.Payment, error) {
	var students []models.Student
	if err := config.DB.Where("status = ?", models.StudentActive).Find(&students).Error; err != nil {
		return nil, err
	}

	var fees []models.FeeSetting
	if err := config.DB.Find(&fees).Error; err != nil {
		return nil, err
	}

	generated := billing.GenerateYearlySchedule(students, existing, fees, time.Now())
	if len(generated) == 0 {
		return nil, nil
	}

	var monthlyType models.PaymentType
	if err := config.DB.Where("name = ?", models.MonthlyFeeType).First(&monthlyType).Error; err == nil {
		for i := range generated {
			generated[i].PaymentTypeID = monthlyType.ID
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&generated).Error
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Yearly payment schedule generated",
		"students", len(students), "created", len(generated))
	return generated, nil
}

// GenerateScheduleHandler regenerates the yearly schedule on demand. Unlike
// the automatic run on page load it does not consult the regeneration gate:
// it always tops up whatever months are missing.
func GenerateScheduleHandler(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as mensalidades"})
		return
	}

	created, err := runYearlyGeneration(payments)
	if err != nil {
		slog.Error("Manual schedule generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível gerar as mensalidades"})
		return
	}

	data := make([]PaymentResponse, 0, len(created))
	for _, p := range created {
		data = append(data, toPaymentResponse(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"created": len(created),
		"data":    data,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

func ListAttendanceHandler(c *gin.Context) {
	query := config.DB.Preload("Details").Order("date DESC")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var records []models.AttendanceRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as chamadas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

type attendanceInput struct {
	Date     string `json:"date" binding:"required"`
	Category string `json:"category" binding:"required"`
	Records  []struct {
		StudentID uint `json:"studentId" binding:"required"`
		Present   bool `json:"present"`
	} `json:"records" binding:"required"`
}

// CreateAttendanceHandler stores one roll call with its per-student marks in
// a single transaction.
func CreateAttendanceHandler(c *gin.Context) {
	var input attendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria inválida"})
		return
	}

	date, err := parseDisplayDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
		return
	}

	record := models.AttendanceRecord{Date: date, Category: input.Category}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		for _, r := range input.Records {
			var student models.Student
			if err := tx.First(&student, r.StudentID).Error; err != nil {
				return err
			}
			detail := models.AttendanceDetail{
				AttendanceRecordID: record.ID,
				StudentID:          student.ID,
				StudentName:        student.Name,
				Present:            r.Present,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
			record.Details = append(record.Details, detail)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível salvar a chamada"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func DeleteAttendanceHandler(c *gin.Context) {
	var record models.AttendanceRecord
	if err := config.DB.First(&record, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chamada não encontrada"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_record_id = ?", record.ID).Delete(&models.AttendanceDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir a chamada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chamada excluída"})
}

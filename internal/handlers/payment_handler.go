package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/internal/billing"
	"github.com/pedroloango/futboss/models"
)

// PaymentResponse is the payment record as the dashboard consumes it: dates
// rendered as DD/MM/YYYY display strings.
type PaymentResponse struct {
	ID            uint   `json:"id"`
	StudentID     uint   `json:"studentId"`
	Student       string `json:"student"`
	Description   string `json:"description"`
	PaymentTypeID uint   `json:"paymentTypeId"`
	PaymentType   string `json:"paymentType"`
	Category      string `json:"category"`
	Value         string `json:"value"`
	DueDate       string `json:"dueDate"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	Month         string `json:"month"`
	Year          string `json:"year"`
	PaymentDate   string `json:"paymentDate,omitempty"`
}

func toPaymentResponse(p models.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:            p.ID,
		StudentID:     p.StudentID,
		Student:       p.StudentName,
		Description:   p.Description,
		PaymentTypeID: p.PaymentTypeID,
		PaymentType:   p.PaymentType,
		Category:      p.Category,
		Value:         p.Value,
		DueDate:       formatDisplayDate(p.DueDate),
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		Month:         p.Month,
		Year:          p.Year,
	}
	if p.PaymentDate != nil {
		resp.PaymentDate = formatDisplayDate(*p.PaymentDate)
	}
	return resp
}

// ListPaymentsHandler returns the filtered, paginated payment collection.
// On first access in a calendar year it tops the yearly schedule up before
// answering; afterwards the stored collection is served as-is.
func ListPaymentsHandler(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Order("year, due_date, student_name").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as mensalidades"})
		return
	}

	if billing.ShouldGenerateYearlySchedule(payments, time.Now()) {
		created, err := runYearlyGeneration(payments)
		if err != nil {
			slog.Error("Automatic schedule generation failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível gerar as mensalidades do ano"})
			return
		}
		payments = append(payments, created...)
	}

	if status := c.Query("status"); status != "" && !models.PaymentStatus(status).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status de pagamento inválido"})
		return
	}

	filtered := billing.ApplyFilters(payments, billing.Filters{
		Search:      c.Query("search"),
		Status:      c.Query("status"),
		Month:       c.Query("month"),
		Category:    c.Query("category"),
		PaymentType: c.Query("paymentType"),
	})

	page, pageSize := pageParams(c)
	window, page := billing.Page(filtered, page, pageSize)

	data := make([]PaymentResponse, 0, len(window))
	for _, p := range window {
		data = append(data, toPaymentResponse(p))
	}

	totalRows := int64(len(filtered))
	totalPages := int(totalRows+int64(pageSize)-1) / pageSize
	c.JSON(http.StatusOK, PaginatedResponse{
		Data:        data,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	})
}

// CreatePaymentInput is the body for manually registered one-off charges.
type CreatePaymentInput struct {
	StudentID     uint   `json:"studentId" binding:"required"`
	Description   string `json:"description"`
	PaymentTypeID uint   `json:"paymentTypeId" binding:"required"`
	Value         string `json:"value" binding:"required"`
	DueDate       string `json:"dueDate" binding:"required"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreatePaymentHandler registers a one-off charge (enrollment, uniform, ...)
// for a student. When the payment type carries a formula, the final amount is
// computed from the submitted base value.
func CreatePaymentHandler(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.Student
	if err := config.DB.First(&student, input.StudentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado"})
		return
	}

	var paymentType models.PaymentType
	if err := config.DB.First(&paymentType, input.PaymentTypeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de pagamento não encontrado"})
		return
	}

	amount, err := billing.ParseBRL(input.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valor inválido"})
		return
	}

	if paymentType.Formula != "" {
		amount, err = evaluateAmountFormula(paymentType.Formula, amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	dueDate, err := parseDisplayDate(input.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data de vencimento inválida"})
		return
	}

	status := models.PaymentStatus(input.Status)
	if input.Status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status de pagamento inválido"})
		return
	}

	method := input.PaymentMethod
	if method == "" {
		method = billing.DefaultPaymentMethod
	}

	monthIndex := int(dueDate.Month()) - 1
	payment := models.Payment{
		StudentID:     student.ID,
		StudentName:   student.Name,
		Description:   input.Description,
		PaymentTypeID: paymentType.ID,
		PaymentType:   paymentType.Name,
		Category:      student.Category,
		Value:         billing.FormatBRL(amount),
		DueDate:       dueDate,
		Status:        status,
		PaymentMethod: method,
		Month:         billing.Months[monthIndex],
		Year:          fmt.Sprintf("%d", dueDate.Year()),
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível salvar o pagamento"})
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// evaluateAmountFormula runs a payment-type formula with "Valor" bound to the
// submitted base amount.
func evaluateAmountFormula(formula string, baseValue float64) (float64, error) {
	expr, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return 0, fmt.Errorf("fórmula inválida: %s", formula)
	}

	result, err := expr.Evaluate(map[string]interface{}{"Valor": baseValue})
	if err != nil {
		return 0, fmt.Errorf("não foi possível calcular a fórmula: %s", formula)
	}

	amount, ok := result.(float64)
	if !ok {
		return 0, errors.New("o resultado da fórmula não é um número")
	}
	return amount, nil
}

// UpdatePaymentInput carries the mutable fields of an existing payment.
type UpdatePaymentInput struct {
	Description   *string `json:"description"`
	Value         *string `json:"value"`
	DueDate       *string `json:"dueDate"`
	Status        *string `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
}

func UpdatePaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pagamento não encontrado"})
		return
	}

	var input UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Description != nil {
		payment.Description = *input.Description
	}
	if input.Value != nil {
		amount, err := billing.ParseBRL(*input.Value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valor inválido"})
			return
		}
		payment.Value = billing.FormatBRL(amount)
	}
	if input.DueDate != nil {
		dueDate, err := parseDisplayDate(*input.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Data de vencimento inválida"})
			return
		}
		payment.DueDate = dueDate
		payment.Month = billing.Months[int(dueDate.Month())-1]
		payment.Year = fmt.Sprintf("%d", dueDate.Year())
	}
	if input.Status != nil {
		status := models.PaymentStatus(*input.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status de pagamento inválido"})
			return
		}
		payment.Status = status
	}
	if input.PaymentMethod != nil {
		payment.PaymentMethod = *input.PaymentMethod
	}

	if err := config.DB.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o pagamento"})
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

func DeletePaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pagamento não encontrado"})
		return
	}

	if err := config.DB.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o pagamento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pagamento excluído"})
}

// ConfirmPaymentHandler marks a pending or overdue obligation as paid and
// stamps the payment date. Already-paid obligations are rejected.
func ConfirmPaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pagamento não encontrado"})
		return
	}

	if payment.Status == models.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Pagamento já confirmado"})
		return
	}

	var input struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	// Body is optional; the existing method is kept when none is sent.
	_ = c.ShouldBindJSON(&input)
	if input.PaymentMethod != "" {
		payment.PaymentMethod = input.PaymentMethod
	}

	now := time.Now()
	payment.Status = models.StatusPaid
	payment.PaymentDate = &now

	if err := config.DB.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível confirmar o pagamento"})
		return
	}

	slog.Info("Payment confirmed", "payment_id", payment.ID, "student", payment.StudentName)
	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// RevertPaymentHandler moves a paid obligation back to pending and clears the
// payment date.
func RevertPaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pagamento não encontrado"})
		return
	}

	if payment.Status != models.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Somente pagamentos confirmados podem ser revertidos"})
		return
	}

	payment.Status = models.StatusPending
	payment.PaymentDate = nil

	if err := config.DB.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível reverter o pagamento"})
		return
	}

	slog.Info("Payment reverted to pending", "payment_id", payment.ID)
	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// ExportPaymentsHandler streams the filtered payment collection as an xlsx
// spreadsheet.
func ExportPaymentsHandler(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Order("year, due_date, student_name").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as mensalidades"})
		return
	}

	filtered := billing.ApplyFilters(payments, billing.Filters{
		Search:      c.Query("search"),
		Status:      c.Query("status"),
		Month:       c.Query("month"),
		Category:    c.Query("category"),
		PaymentType: c.Query("paymentType"),
	})

	f := excelize.NewFile()
	sheetName := "Mensalidades"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Aluno", "Categoria", "Tipo", "Valor", "Vencimento", "Status", "Forma de Pagamento", "Mês", "Ano", "Data de Pagamento"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, p := range filtered {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.StudentName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.PaymentType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Value)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), formatDisplayDate(p.DueDate))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), string(p.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), p.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), p.Year)
		if p.PaymentDate != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), formatDisplayDate(*p.PaymentDate))
		}
	}

	fileName := fmt.Sprintf("mensalidades_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível gerar a planilha"})
	}
}

// PaymentReceiptHandler builds a receipt document for a paid obligation,
// including the amount spelled out in words.
func PaymentReceiptHandler(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pagamento não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar o pagamento"})
		return
	}

	if payment.Status != models.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Recibo disponível apenas para pagamentos confirmados"})
		return
	}

	amount, err := billing.ParseBRL(payment.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Valor do pagamento inválido"})
		return
	}

	reais := int(amount)
	centavos := int((amount-float64(reais))*100 + 0.5)
	amountInWords := fmt.Sprintf("%s reais", num2words.Convert(reais))
	if centavos > 0 {
		amountInWords = fmt.Sprintf("%s e %s centavos", amountInWords, num2words.Convert(centavos))
	}

	paymentDate := ""
	if payment.PaymentDate != nil {
		paymentDate = formatDisplayDate(*payment.PaymentDate)
	}

	c.JSON(http.StatusOK, gin.H{
		"receiptNumber": uuid.NewString(),
		"student":       payment.StudentName,
		"description":   payment.Description,
		"paymentType":   payment.PaymentType,
		"value":         payment.Value,
		"valueInWords":  amountInWords,
		"month":         payment.Month,
		"year":          payment.Year,
		"paymentDate":   paymentDate,
		"issuedAt":      formatDisplayDate(time.Now()),
	})
}

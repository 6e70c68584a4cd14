package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/models"
)

// --- Matches ---

func ListMatchesHandler(c *gin.Context) {
	var matches []models.Match
	if err := config.DB.Order("date DESC").Find(&matches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as partidas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": matches})
}

type matchInput struct {
	Date       string `json:"date" binding:"required"`
	Opponent   string `json:"opponent"`
	IsTraining bool   `json:"isTraining"`
	Category   string `json:"category" binding:"required"`
}

func CreateMatchHandler(c *gin.Context) {
	var input matchInput
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

	match := models.Match{
		ID:         uuid.NewString(),
		Date:       date,
		Opponent:   input.Opponent,
		IsTraining: input.IsTraining,
		Category:   input.Category,
	}
	if err := config.DB.Create(&match).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar a partida"})
		return
	}
	c.JSON(http.StatusCreated, match)
}

func FinishMatchHandler(c *gin.Context) {
	var match models.Match
	if err := config.DB.First(&match, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partida não encontrada"})
		return
	}

	match.Finished = true
	if err := config.DB.Save(&match).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível encerrar a partida"})
		return
	}
	c.JSON(http.StatusOK, match)
}

// --- Players ---

func ListPlayersHandler(c *gin.Context) {
	var players []models.Player
	if err := config.DB.Order("number").Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os jogadores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": players})
}

type playerInput struct {
	Name      string `json:"name" binding:"required"`
	Position  string `json:"position"`
	Number    int    `json:"number"`
	IsReserve bool   `json:"isReserve"`
}

func CreatePlayerHandler(c *gin.Context) {
	var input playerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player := models.Player{
		Name:      input.Name,
		Position:  input.Position,
		Number:    input.Number,
		IsReserve: input.IsReserve,
	}
	if err := config.DB.Create(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível salvar o jogador"})
		return
	}
	c.JSON(http.StatusCreated, player)
}

func UpdatePlayerHandler(c *gin.Context) {
	var player models.Player
	if err := config.DB.First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jogador não encontrado"})
		return
	}

	var input playerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player.Name = input.Name
	player.Position = input.Position
	player.Number = input.Number
	player.IsReserve = input.IsReserve

	if err := config.DB.Save(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o jogador"})
		return
	}
	c.JSON(http.StatusOK, player)
}

func DeletePlayerHandler(c *gin.Context) {
	var player models.Player
	if err := config.DB.First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jogador não encontrado"})
		return
	}

	if err := config.DB.Delete(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o jogador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Jogador excluído"})
}

// --- Actions ---

func ListActionsHandler(c *gin.Context) {
	matchID := c.Param("id")
	var actions []models.ScoutAction
	if err := config.DB.Preload("Player").Where("match_id = ?", matchID).Order("timestamp").Find(&actions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as ações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": actions})
}

type actionInput struct {
	PlayerID   uint   `json:"playerId" binding:"required"`
	Type       string `json:"type" binding:"required"`
	AreaNumber *int   `json:"areaNumber"`
}

// CreateActionHandler records one in-match event and pushes it to the live
// feed.
func CreateActionHandler(c *gin.Context) {
	var match models.Match
	if err := config.DB.First(&match, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partida não encontrada"})
		return
	}
	if match.Finished {
		c.JSON(http.StatusConflict, gin.H{"error": "A partida já foi encerrada"})
		return
	}

	var input actionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidScoutAction(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de ação inválido"})
		return
	}

	var player models.Player
	if err := config.DB.First(&player, input.PlayerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jogador não encontrado"})
		return
	}

	action := models.ScoutAction{
		MatchID:    match.ID,
		PlayerID:   player.ID,
		Type:       input.Type,
		Timestamp:  time.Now(),
		AreaNumber: input.AreaNumber,
	}
	if err := config.DB.Create(&action).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível registrar a ação"})
		return
	}

	action.Player = player
	ScoutHub.Publish(ScoutEvent{Type: "action", MatchID: match.ID, Payload: action})
	c.JSON(http.StatusCreated, action)
}

func DeleteActionHandler(c *gin.Context) {
	var action models.ScoutAction
	if err := config.DB.First(&action, c.Param("actionId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ação não encontrada"})
		return
	}

	if err := config.DB.Delete(&action).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir a ação"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ação excluída"})
}

// --- Substitutions ---

type substitutionInput struct {
	ActivePlayerID  uint `json:"activePlayerId" binding:"required"`
	ReservePlayerID uint `json:"reservePlayerId" binding:"required"`
}

// SubstitutionHandler swaps an active player with a reserve in one
// transaction and broadcasts the swap to the live feed.
func SubstitutionHandler(c *gin.Context) {
	var input substitutionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var active, reserve models.Player
	if err := config.DB.First(&active, input.ActivePlayerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jogador titular não encontrado"})
		return
	}
	if err := config.DB.First(&reserve, input.ReservePlayerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jogador reserva não encontrado"})
		return
	}

	if active.IsReserve || !reserve.IsReserve {
		c.JSON(http.StatusConflict, gin.H{"error": "A substituição exige um titular e um reserva"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		active.IsReserve = true
		reserve.IsReserve = false
		if err := tx.Save(&active).Error; err != nil {
			return err
		}
		return tx.Save(&reserve).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível realizar a substituição"})
		return
	}

	ScoutHub.Publish(ScoutEvent{
		Type:    "substitution",
		MatchID: c.Param("id"),
		Payload: gin.H{"out": active, "in": reserve},
	})
	c.JSON(http.StatusOK, gin.H{"out": active, "in": reserve})
}

// --- Match report ---

// MatchReportHandler tallies the recorded actions per player and per type
// for one match.
func MatchReportHandler(c *gin.Context) {
	matchID := c.Param("id")

	var match models.Match
	if err := config.DB.First(&match, "id = ?", matchID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partida não encontrada"})
		return
	}

	var actions []models.ScoutAction
	if err := config.DB.Preload("Player").Where("match_id = ?", matchID).Find(&actions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as ações"})
		return
	}

	totals := make(map[string]int)
	perPlayer := make(map[uint]map[string]int)
	playerNames := make(map[uint]string)
	for _, a := range actions {
		totals[a.Type]++
		if perPlayer[a.PlayerID] == nil {
			perPlayer[a.PlayerID] = make(map[string]int)
		}
		perPlayer[a.PlayerID][a.Type]++
		playerNames[a.PlayerID] = a.Player.Name
	}

	type playerStats struct {
		PlayerID uint           `json:"playerId"`
		Name     string         `json:"name"`
		Actions  map[string]int `json:"actions"`
	}
	players := make([]playerStats, 0, len(perPlayer))
	for id, stats := range perPlayer {
		players = append(players, playerStats{PlayerID: id, Name: playerNames[id], Actions: stats})
	}

	c.JSON(http.StatusOK, gin.H{
		"match":   match,
		"totals":  totals,
		"players": players,
	})
}

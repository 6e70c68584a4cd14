package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/internal/handlers"
	"github.com/pedroloango/futboss/internal/routes"
	"github.com/pedroloango/futboss/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	config.LoadAuthConfig()
	config.ConnectDB()
	config.ConnectRedis()

	if err := migrate(); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	if err := seedDefaults(); err != nil {
		slog.Error("seeding defaults failed", "error", err)
		os.Exit(1)
	}

	go handlers.ScoutHub.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func corsOrigins() []string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return []string{origin}
	}
	return []string{"http://localhost:5173"}
}

func migrate() error {
	return config.DB.AutoMigrate(
		&models.Student{},
		&models.Payment{},
		&models.PaymentType{},
		&models.FeeSetting{},
		&models.Revenue{},
		&models.Evaluation{},
		&models.AttendanceRecord{},
		&models.AttendanceDetail{},
		&models.Match{},
		&models.Player{},
		&models.ScoutAction{},
		&models.User{},
		&models.Role{},
		&models.Permission{},
	)
}

// seedDefaults creates the records the application expects to exist:
// the built-in payment types, the permission catalog, the admin role
// and an initial admin user when the user table is empty.
func seedDefaults() error {
	for _, name := range []string{models.MonthlyFeeType, "Matrícula", "Uniforme"} {
		var pt models.PaymentType
		if err := config.DB.Where("name = ?", name).FirstOrCreate(&pt, models.PaymentType{Name: name}).Error; err != nil {
			return err
		}
	}

	permissions := []models.Permission{
		{Name: "students_view", Description: "Ver alunos", Category: "Alunos"},
		{Name: "students_create", Description: "Cadastrar alunos", Category: "Alunos"},
		{Name: "students_edit", Description: "Editar alunos", Category: "Alunos"},
		{Name: "students_delete", Description: "Excluir alunos", Category: "Alunos"},
		{Name: "payments_view", Description: "Ver mensalidades", Category: "Financeiro"},
		{Name: "payments_create", Description: "Criar cobranças", Category: "Financeiro"},
		{Name: "payments_edit", Description: "Confirmar e editar pagamentos", Category: "Financeiro"},
		{Name: "payments_delete", Description: "Excluir cobranças", Category: "Financeiro"},
		{Name: "revenues_view", Description: "Ver receitas", Category: "Financeiro"},
		{Name: "revenues_edit", Description: "Gerenciar receitas", Category: "Financeiro"},
		{Name: "settings_view", Description: "Ver configurações financeiras", Category: "Configurações"},
		{Name: "settings_edit", Description: "Editar configurações financeiras", Category: "Configurações"},
		{Name: "evaluations_view", Description: "Ver avaliações", Category: "Desempenho"},
		{Name: "evaluations_edit", Description: "Gerenciar avaliações", Category: "Desempenho"},
		{Name: "attendance_view", Description: "Ver presenças", Category: "Desempenho"},
		{Name: "attendance_edit", Description: "Registrar presenças", Category: "Desempenho"},
		{Name: "scout_view", Description: "Ver scout de jogos", Category: "Scout"},
		{Name: "scout_edit", Description: "Registrar ações de scout", Category: "Scout"},
		{Name: "users_view", Description: "Ver usuários", Category: "Administração"},
		{Name: "users_create", Description: "Cadastrar usuários", Category: "Administração"},
		{Name: "users_edit", Description: "Editar usuários", Category: "Administração"},
		{Name: "users_delete", Description: "Excluir usuários", Category: "Administração"},
		{Name: "roles_view", Description: "Ver perfis de acesso", Category: "Administração"},
		{Name: "roles_create", Description: "Criar perfis de acesso", Category: "Administração"},
		{Name: "roles_edit", Description: "Editar perfis de acesso", Category: "Administração"},
		{Name: "roles_delete", Description: "Excluir perfis de acesso", Category: "Administração"},
	}
	for _, p := range permissions {
		var existing models.Permission
		if err := config.DB.Where("name = ?", p.Name).FirstOrCreate(&existing, p).Error; err != nil {
			return err
		}
	}

	var admin models.Role
	if err := config.DB.Where("name = ?", "admin").FirstOrCreate(&admin, models.Role{
		Name:        "admin",
		Description: "Acesso total ao sistema",
	}).Error; err != nil {
		return err
	}
	var all []models.Permission
	if err := config.DB.Find(&all).Error; err != nil {
		return err
	}
	if err := config.DB.Model(&admin).Association("Permissions").Replace(all); err != nil {
		return err
	}

	var userCount int64
	if err := config.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		password := os.Getenv("ADMIN_INITIAL_PASSWORD")
		if password == "" {
			password = "admin123"
			slog.Warn("ADMIN_INITIAL_PASSWORD not set, using default password for initial admin")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Login:        "admin",
			FullName:     "Administrador",
			PasswordHash: string(hash),
			Roles:        []models.Role{admin},
		}
		if err := config.DB.Create(&user).Error; err != nil {
			return err
		}
		slog.Info("initial admin user created", "login", user.Login)
	}

	return nil
}

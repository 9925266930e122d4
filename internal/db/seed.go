package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wferreiracoriolano/barbearia-api/internal/config"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
	"github.com/wferreiracoriolano/barbearia-api/internal/validators"
)

// Seed roda o provisionamento idempotente de boot: garante o admin
// informado pelo operador e o catálogo padrão de serviços. Pode rodar
// em todo start sem efeito colateral.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := EnsureAdmin(db, cfg); err != nil {
		return err
	}
	return EnsureDefaultServices(db)
}

// EnsureAdmin cria o usuário admin a partir das credenciais de ambiente.
// Sem SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD nada é criado — nunca existe
// credencial padrão embutida no código.
func EnsureAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		log.Println("seed: SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD ausentes, nenhum admin criado")
		return nil
	}

	// O login compara o email normalizado; guardar o valor cru do
	// ambiente criaria um admin que nunca autentica.
	email := validators.NormalizeEmail(cfg.SeedAdminEmail)

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         cfg.SeedAdminName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		Active:       true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seed: admin %s criado", email)
	return nil
}

// EnsureDefaultServices garante as cinco ofertas fixas da casa.
// Upsert declarativo por nome: reexecutar não duplica nem altera
// ajustes feitos depois pelo admin.
func EnsureDefaultServices(db *gorm.DB) error {
	defaults := []models.Service{
		{Name: "Corte", DurationMin: 30, Active: true},
		{Name: "Barba", DurationMin: 20, Active: true},
		{Name: "Corte e Barba", DurationMin: 50, Active: true},
		{Name: "Sobrancelha", DurationMin: 10, Active: true},
		{Name: "Pezinho", DurationMin: 15, Active: true},
	}

	for _, svc := range defaults {
		var out models.Service
		if err := db.
			Where(models.Service{Name: svc.Name}).
			Attrs(models.Service{DurationMin: svc.DurationMin, Active: svc.Active}).
			FirstOrCreate(&out).Error; err != nil {
			return err
		}
	}

	return nil
}

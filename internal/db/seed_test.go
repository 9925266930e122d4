package db

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wferreiracoriolano/barbearia-api/internal/config"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{
		SeedAdminName:     "Admin",
		SeedAdminEmail:    "admin@example.com",
		SeedAdminPassword: "s3nh4forte",
	}

	require.NoError(t, Seed(db, cfg))
	require.NoError(t, Seed(db, cfg))

	var admins int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", "admin").Count(&admins).Error)
	assert.Equal(t, int64(1), admins)

	var services int64
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	assert.Equal(t, int64(5), services)
}

func TestEnsureAdminStoresHashNotPlaintext(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{
		SeedAdminName:     "Admin",
		SeedAdminEmail:    "admin@example.com",
		SeedAdminPassword: "s3nh4forte",
	}

	require.NoError(t, EnsureAdmin(db, cfg))

	var admin models.User
	require.NoError(t, db.Where("email = ?", cfg.SeedAdminEmail).First(&admin).Error)

	assert.NotEqual(t, cfg.SeedAdminPassword, admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(cfg.SeedAdminPassword)))
	assert.True(t, admin.Active)
}

func TestEnsureAdminNormalizesEmail(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{
		SeedAdminName:     "Admin",
		SeedAdminEmail:    "  Admin@Example.COM ",
		SeedAdminPassword: "s3nh4forte",
	}

	require.NoError(t, EnsureAdmin(db, cfg))

	// Guardado já normalizado, como o login compara.
	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.Equal(t, "admin@example.com", admin.Email)

	// Reexecutar com outra caixa não duplica.
	cfg.SeedAdminEmail = "ADMIN@EXAMPLE.COM"
	require.NoError(t, EnsureAdmin(db, cfg))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestEnsureAdminSkipsWithoutCredentials(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{}

	require.NoError(t, EnsureAdmin(db, cfg))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestEnsureDefaultServicesKeepsAdminEdits(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, EnsureDefaultServices(db))

	// Admin ajusta a duração; o próximo boot não pode desfazer.
	require.NoError(t, db.Model(&models.Service{}).
		Where("name = ?", "Corte").
		Update("duration_min", 45).Error)

	require.NoError(t, EnsureDefaultServices(db))

	var corte models.Service
	require.NoError(t, db.Where("name = ?", "Corte").First(&corte).Error)
	assert.Equal(t, 45, corte.DurationMin)
}

package app

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/absencetype"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

var defaultAbsenceTypes = []absencetype.AbsenceType{
	{Name: "Vacation", ColorHex: "#34D399", DeductsBalance: true, Description: "Annual paid vacation", Active: true},
	{Name: "Sick Leave", ColorHex: "#F87171", DeductsBalance: false, Description: "Medical absence", Active: true},
	{Name: "Maternity Leave", ColorHex: "#A78BFA", DeductsBalance: false, Description: "Maternity absence", Active: true},
	{Name: "Paternity Leave", ColorHex: "#60A5FA", DeductsBalance: false, Description: "Paternity absence", Active: true},
	{Name: "Day Off", ColorHex: "#FBBF24", DeductsBalance: true, Description: "Single day off", Active: true},
	{Name: "Remote Work", ColorHex: "#818CF8", DeductsBalance: false, Description: "Working away from the office", Active: true},
}

func seed(db *gorm.DB, logger *zap.Logger) error {
	if err := seedAbsenceTypes(db, logger); err != nil {
		return err
	}
	return seedAdminUser(db, logger)
}

func seedAbsenceTypes(db *gorm.DB, logger *zap.Logger) error {
	for _, t := range defaultAbsenceTypes {
		var existing absencetype.AbsenceType
		err := db.First(&existing, "name = ?", t.Name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		seedType := t
		if err := db.Create(&seedType).Error; err != nil {
			return err
		}
		logger.Info("seeded absence type", zap.String("name", t.Name))
	}
	return nil
}

// seedAdminUser creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user holds that email yet.
func seedAdminUser(db *gorm.DB, logger *zap.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing user.User
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := user.User{
		FullName:     "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("seeded admin user", zap.String("email", email))
	return nil
}

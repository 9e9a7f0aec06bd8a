package services

import (
	"context"
	"os"
	"testing"

	"github.com/gcgpws/backend-portal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL and
// migrates a clean schema. Tests that need Postgres are skipped when the
// variable is unset.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	models := []interface{}{
		&model.User{},
		&model.Admission{},
		&model.Notification{},
	}

	if err := db.Migrator().DropTable(models...); err != nil {
		t.Fatalf("failed to drop tables: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

// stubMailer records calls and returns a configurable result, standing in
// for the SMTP transport in workflow tests.
type stubMailer struct {
	succeed bool

	acknowledgments []EmailData
	approvals       []EmailData
	rejections      []EmailData
	recipients      []string
}

func (m *stubMailer) SendAcknowledgment(ctx context.Context, to string, data EmailData) bool {
	m.acknowledgments = append(m.acknowledgments, data)
	m.recipients = append(m.recipients, to)
	return m.succeed
}

func (m *stubMailer) SendApproval(ctx context.Context, to string, data EmailData) bool {
	m.approvals = append(m.approvals, data)
	m.recipients = append(m.recipients, to)
	return m.succeed
}

func (m *stubMailer) SendRejection(ctx context.Context, to string, data EmailData) bool {
	m.rejections = append(m.rejections, data)
	m.recipients = append(m.recipients, to)
	return m.succeed
}

func validSubmitRequest() SubmitRequest {
	return SubmitRequest{
		FirstName:          "Ayesha",
		LastName:           "Khan",
		Email:              "ayesha.khan@example.com",
		Phone:              "+923001234567",
		DOB:                "2004-03-15",
		Address:            "House 12, Street 4",
		City:               "Peshawar",
		State:              "Khyber Pakhtunkhwa",
		ZipCode:            "25000",
		Course:             "bsc",
		AdmissionYear:      2026,
		MatricSchool:       "Govt High School No 1",
		MatricBoard:        "BISE Peshawar",
		MatricPassingYear:  2022,
		MatricPercentage:   88.5,
		InterCollege:       "Govt Girls College",
		InterBoard:         "BISE Peshawar",
		InterPassingYear:   2024,
		InterPercentage:    84.0,
		PhotoURL:           "https://cdn.example.com/admissions/photo.jpg",
		IDProofURL:         "https://cdn.example.com/admissions/idproof.pdf",
		MatricMarksheetURL: "https://cdn.example.com/admissions/matric.pdf",
		InterMarksheetURL:  "https://cdn.example.com/admissions/inter.pdf",
	}
}

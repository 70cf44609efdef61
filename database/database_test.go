package database

import (
	"path/filepath"
	"testing"

	"gorm.io/datatypes"
)

func TestOpenMigratesAndStores(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "contact.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer Close(db)

	sub := ContactSubmission{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Message:   "hello",
		Payload:   datatypes.JSON([]byte(`{"firstName":"A"}`)),
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got ContactSubmission
	if err := db.First(&got, sub.ID).Error; err != nil {
		t.Fatalf("First: %v", err)
	}
	if got.Email != "a@b.com" || got.Message != "hello" {
		t.Errorf("stored submission = %+v", got)
	}
}

func TestCloseNilIsNoop(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Errorf("Close(nil) = %v", err)
	}
}

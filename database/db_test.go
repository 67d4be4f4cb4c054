package database

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestFromRequestCarriesRequestDeadline(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:fromrequest?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatal(err)
	}
	prev := DB
	DB = db
	t.Cleanup(func() { DB = prev })

	deadline := time.Now().Add(30 * time.Second)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	r := httptest.NewRequest("GET", "/v1/admin/accounts", nil).WithContext(ctx)

	got, ok := FromRequest(r).Statement.Context.Deadline()
	if !ok {
		t.Fatal("request-bound handle has no deadline")
	}
	if !got.Equal(deadline) {
		t.Fatalf("deadline = %v, want %v", got, deadline)
	}
}
